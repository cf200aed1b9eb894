package entity

import "time"

// Customer representa un cliente al que se le despachan pedidos.
type Customer struct {
	ID        string
	Name      string
	Email     string // único
	Phone     string
	CreatedAt time.Time
}
