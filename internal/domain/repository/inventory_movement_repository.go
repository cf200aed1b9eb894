package repository

import (
	"time"

	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para el libro
// mayor de movimientos. Los movimientos son inmutables: solo Create y lecturas.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	// ListAllByProduct devuelve todos los movimientos de un producto, en
	// cualquier orden: la proyección de stock es una suma conmutativa.
	ListAllByProduct(productID string) ([]entity.InventoryMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
}
