package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// RegisterMovementUseCase registra eventos inmutables en el libro mayor de
// inventario. No mantiene ningún contador: el stock vigente lo deriva el
// proyector sumando el ledger.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
	}
}

// RegisterMovement valida tipo, signo y referencias, y persiste el movimiento
// dentro de una transacción. Reglas de cantidad: INGRESO/SALIDA/DEVOLUCION
// exigen cantidad positiva (el tipo define la dirección); AJUSTE exige
// cantidad distinta de cero y conserva su signo.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, createdBy string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeAjuste:
		if in.Quantity == 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		if supplier.Status == entity.SupplierStatusBloqueado {
			return nil, domain.ErrForbidden
		}
	}
	if in.WarehouseID != nil {
		warehouse, err := uc.warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
	}

	movement := &entity.InventoryMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Lot:         in.Lot,
		Serial:      in.Serial,
		ExpiryDate:  in.ExpiryDate,
		Notes:       in.Notes,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.InventoryMovementRepository) error {
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		SupplierID:  m.SupplierID,
		WarehouseID: m.WarehouseID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Lot:         m.Lot,
		Serial:      m.Serial,
		ExpiryDate:  m.ExpiryDate,
		Notes:       m.Notes,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
