package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIngreso    = "INGRESO"    // entrada de proveedor
	MovementTypeSalida     = "SALIDA"     // salida / venta
	MovementTypeAjuste     = "AJUSTE"     // corrección con signo propio
	MovementTypeDevolucion = "DEVOLUCION" // devolución de cliente
)

// InventoryMovement es un evento inmutable del libro mayor de inventario.
// Quantity se guarda positiva para INGRESO/SALIDA/DEVOLUCION (el tipo define
// la dirección) y con signo propio para AJUSTE. Una vez creado nunca se edita:
// el stock se deriva agregando, no corrigiendo registros.
type InventoryMovement struct {
	ID          string
	ProductID   string
	SupplierID  *string
	WarehouseID *string
	Type        string
	Quantity    int64
	Lot         string
	Serial      string
	ExpiryDate  *time.Time
	Notes       string
	CreatedBy   string // AccountID
	CreatedAt   time.Time
}

// ValidMovementType reporta si t es uno de los cuatro tipos conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIngreso, MovementTypeSalida, MovementTypeAjuste, MovementTypeDevolucion:
		return true
	}
	return false
}
