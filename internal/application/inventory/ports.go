package inventory

import (
	"context"

	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de movimientos atado a esa tx. Garantiza que la escritura al
// libro mayor sea atómica: un movimiento se persiste completo o no se
// persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.InventoryMovementRepository) error) error
}
