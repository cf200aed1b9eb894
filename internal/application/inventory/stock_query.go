package inventory

import (
	"time"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
	"github.com/lilis-erp/gestion-api/internal/domain/stock"
)

// StockQueryUseCase proyecta el estado de inventario de un producto leyendo
// el libro de movimientos completo. La suma viva es la única fuente de
// verdad: no hay contador materializado del cual desconfiar.
type StockQueryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(productRepo repository.ProductRepository, movementRepo repository.InventoryMovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetStatus devuelve el stock actual y las alertas derivadas de un producto.
func (uc *StockQueryUseCase) GetStatus(productID string) (*dto.StockStatusResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListAllByProduct(productID)
	if err != nil {
		return nil, err
	}
	current := stock.CurrentStock(movements)
	return &dto.StockStatusResponse{
		ProductID:     product.ID,
		SKU:           product.SKU,
		CurrentStock:  current,
		DisplayStock:  stock.DisplayStock(current),
		LowStockAlert: stock.LowStockAlert(product, current),
		NearExpiry:    stock.NearExpiryAlert(product, time.Now()),
		StockMinimum:  product.StockMinimum,
		ReorderPoint:  product.ReorderPoint,
	}, nil
}

// ListMovements lista los movimientos de un producto en un rango de fechas.
func (uc *StockQueryUseCase) ListMovements(productID string, from, to *time.Time, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	movements, err := uc.movementRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// LowStockReportUseCase arma el reporte de productos en o bajo su mínimo
// para los dashboards de operador y supervisor.
type LowStockReportUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(productRepo repository.ProductRepository, movementRepo repository.InventoryMovementRepository) *LowStockReportUseCase {
	return &LowStockReportUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// reportScanLimit acota el recorrido del catálogo para el reporte.
const reportScanLimit = 500

// Report proyecta cada producto del catálogo y devuelve los que tienen la
// alerta de stock bajo encendida.
func (uc *LowStockReportUseCase) Report() (*dto.LowStockReportResponse, error) {
	products, err := uc.productRepo.List(repository.ProductFilter{}, reportScanLimit, 0)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.LowStockItem, 0)
	for _, p := range products {
		movements, err := uc.movementRepo.ListAllByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		current := stock.CurrentStock(movements)
		if !stock.LowStockAlert(p, current) {
			continue
		}
		items = append(items, dto.LowStockItem{
			ProductID:    p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			CurrentStock: current,
			StockMinimum: p.StockMinimum,
			ReorderPoint: p.ReorderPoint,
			NearExpiry:   stock.NearExpiryAlert(p, now),
		})
	}
	return &dto.LowStockReportResponse{Items: items}, nil
}
