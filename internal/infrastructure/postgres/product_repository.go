package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, ean, name, description, category_id, brand, model,
	purchase_uom, sale_uom, conversion_factor, standard_cost, sale_price, iva_applies,
	stock_minimum, stock_maximum, reorder_point, is_perishable, expiry_date,
	lot_controlled, serial_controlled, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// La tabla products no tiene columna de stock: el stock se deriva del libro
// de movimientos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. SKU y EAN duplicados se traducen a
// ErrDuplicate.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.EAN, p.Name, p.Description, p.CategoryID, p.Brand, p.Model,
		p.PurchaseUOM, p.SaleUOM, p.ConversionFactor, p.StandardCost, p.SalePrice, p.IVAApplies,
		p.StockMinimum, p.StockMaximum, p.ReorderPoint, p.IsPerishable, p.ExpiryDate,
		p.LotControlled, p.SerialControlled, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.EAN, &p.Name, &p.Description, &p.CategoryID, &p.Brand, &p.Model,
		&p.PurchaseUOM, &p.SaleUOM, &p.ConversionFactor, &p.StandardCost, &p.SalePrice, &p.IVAApplies,
		&p.StockMinimum, &p.StockMaximum, &p.ReorderPoint, &p.IsPerishable, &p.ExpiryDate,
		&p.LotControlled, &p.SerialControlled, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, ean = $3, name = $4, description = $5, category_id = $6,
		    brand = $7, model = $8, purchase_uom = $9, sale_uom = $10,
		    conversion_factor = $11, standard_cost = $12, sale_price = $13,
		    iva_applies = $14, stock_minimum = $15, stock_maximum = $16,
		    reorder_point = $17, is_perishable = $18, expiry_date = $19,
		    lot_controlled = $20, serial_controlled = $21, updated_at = $22
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.EAN, p.Name, p.Description, p.CategoryID,
		p.Brand, p.Model, p.PurchaseUOM, p.SaleUOM,
		p.ConversionFactor, p.StandardCost, p.SalePrice,
		p.IVAApplies, p.StockMinimum, p.StockMaximum,
		p.ReorderPoint, p.IsPerishable, p.ExpiryDate,
		p.LotControlled, p.SerialControlled, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con búsqueda por nombre/sku/ean y filtro de categoría.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d OR ean ILIKE $%d)", pos, pos, pos)
		args = append(args, searchPattern(filter.Search))
		pos++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.EAN, &p.Name, &p.Description, &p.CategoryID, &p.Brand, &p.Model,
			&p.PurchaseUOM, &p.SaleUOM, &p.ConversionFactor, &p.StandardCost, &p.SalePrice, &p.IVAApplies,
			&p.StockMinimum, &p.StockMaximum, &p.ReorderPoint, &p.IsPerishable, &p.ExpiryDate,
			&p.LotControlled, &p.SerialControlled, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
