package entity

import "time"

// Estados de proveedor.
const (
	SupplierStatusActivo    = "ACTIVO"
	SupplierStatusBloqueado = "BLOQUEADO"
)

// Supplier representa un proveedor.
type Supplier struct {
	ID        string
	TaxID     string // RUT/NIF, único
	LegalName string // razón social
	TradeName string // nombre de fantasía
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	Status    string // ACTIVO, BLOQUEADO
	CreatedAt time.Time
	UpdatedAt time.Time
}
