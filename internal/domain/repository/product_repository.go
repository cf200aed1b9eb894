package repository

import "github.com/lilis-erp/gestion-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Search     string // nombre, sku o ean
	CategoryID string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// No hay método para escribir stock: el stock vive en el libro de movimientos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
