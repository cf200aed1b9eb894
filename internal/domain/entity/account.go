package entity

import "time"

// Cargos válidos para Account. La jerarquía se expresa por enumeración
// explícita en cada pantalla, no por herencia.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleOperador   = "OPERADOR"
	RoleCliente    = "CLIENTE"
)

// Estados de cuenta.
const (
	StatusActivo    = "ACTIVO"
	StatusInactivo  = "INACTIVO"
	StatusBloqueado = "BLOQUEADO"
)

// Account representa una cuenta de usuario del sistema.
// LastAccess y SessionCount los muta únicamente el flujo de login,
// con un UPDATE atómico en el repositorio (SessionCount nunca decrece).
type Account struct {
	ID           string
	Handle       string // nombre de usuario, único global
	Email        string // único global
	PasswordHash string // bcrypt, nunca en claro después de persistir
	FirstName    string
	LastName     string
	Phone        string
	Role         string // ADMIN, SUPERVISOR, OPERADOR, CLIENTE
	Status       string // ACTIVO, INACTIVO, BLOQUEADO
	MFAEnabled   bool
	LastAccess   *time.Time
	SessionCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
