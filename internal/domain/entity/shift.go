package entity

import "time"

// Shift representa un turno de trabajo del personal interno.
// AccountID debe referir a una cuenta con cargo distinto de CLIENTE.
type Shift struct {
	ID        string
	AccountID string
	Date      time.Time // solo fecha
	StartTime string    // HH:MM
	EndTime   string    // HH:MM
	CreatedAt time.Time
}
