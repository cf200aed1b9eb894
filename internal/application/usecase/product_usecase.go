package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El stock no se escribe aquí: solo los
// umbrales; la cantidad vigente se deriva del libro de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto nuevo. SKU único global.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if existing, _ := uc.repo.GetBySKU(in.SKU); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	purchaseUOM := in.PurchaseUOM
	if purchaseUOM == "" {
		purchaseUOM = entity.UOMUnidad
	}
	saleUOM := in.SaleUOM
	if saleUOM == "" {
		saleUOM = entity.UOMUnidad
	}
	factor := in.ConversionFactor
	if factor <= 0 {
		factor = 1
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		SKU:              in.SKU,
		EAN:              in.EAN,
		Name:             in.Name,
		Description:      in.Description,
		CategoryID:       in.CategoryID,
		Brand:            in.Brand,
		Model:            in.Model,
		PurchaseUOM:      purchaseUOM,
		SaleUOM:          saleUOM,
		ConversionFactor: factor,
		StandardCost:     in.StandardCost,
		SalePrice:        in.SalePrice,
		IVAApplies:       in.IVAApplies,
		StockMinimum:     in.StockMinimum,
		StockMaximum:     in.StockMaximum,
		ReorderPoint:     in.ReorderPoint,
		IsPerishable:     in.IsPerishable,
		ExpiryDate:       in.ExpiryDate,
		LotControlled:    in.LotControlled,
		SerialControlled: in.SerialControlled,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. SKU y EAN no se cambian después de creado.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = in.CategoryID
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.StandardCost != nil {
		product.StandardCost = *in.StandardCost
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.IVAApplies != nil {
		product.IVAApplies = *in.IVAApplies
	}
	if in.StockMinimum != nil {
		product.StockMinimum = *in.StockMinimum
	}
	if in.StockMaximum != nil {
		product.StockMaximum = in.StockMaximum
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.IsPerishable != nil {
		product.IsPerishable = *in.IsPerishable
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtro de búsqueda y categoría.
func (uc *ProductUseCase) List(filter repository.ProductFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		SKU:              p.SKU,
		EAN:              p.EAN,
		Name:             p.Name,
		Description:      p.Description,
		CategoryID:       p.CategoryID,
		Brand:            p.Brand,
		Model:            p.Model,
		PurchaseUOM:      p.PurchaseUOM,
		SaleUOM:          p.SaleUOM,
		ConversionFactor: p.ConversionFactor,
		StandardCost:     p.StandardCost,
		SalePrice:        p.SalePrice,
		IVAApplies:       p.IVAApplies,
		StockMinimum:     p.StockMinimum,
		StockMaximum:     p.StockMaximum,
		ReorderPoint:     p.ReorderPoint,
		IsPerishable:     p.IsPerishable,
		ExpiryDate:       p.ExpiryDate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
