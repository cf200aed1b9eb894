package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU              string          `json:"sku" validate:"required,min=1,max=50"`
	EAN              string          `json:"ean" validate:"omitempty,max=50"`
	Name             string          `json:"name" validate:"required,min=1,max=100"`
	Description      string          `json:"description"`
	CategoryID       *string         `json:"category_id" validate:"omitempty,uuid"`
	Brand            string          `json:"brand" validate:"omitempty,max=50"`
	Model            string          `json:"model" validate:"omitempty,max=50"`
	PurchaseUOM      string          `json:"purchase_uom" validate:"omitempty,oneof=kg caja uni"`
	SaleUOM          string          `json:"sale_uom" validate:"omitempty,oneof=kg caja uni"`
	ConversionFactor int64           `json:"conversion_factor" validate:"omitempty,min=1"`
	StandardCost     decimal.Decimal `json:"standard_cost"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	IVAApplies       bool            `json:"iva_applies"`
	StockMinimum     int64           `json:"stock_minimum" validate:"min=0"`
	StockMaximum     *int64          `json:"stock_maximum" validate:"omitempty,min=0"`
	ReorderPoint     int64           `json:"reorder_point" validate:"min=0"`
	IsPerishable     bool            `json:"is_perishable"`
	ExpiryDate       *time.Time      `json:"expiry_date"`
	LotControlled    bool            `json:"lot_controlled"`
	SerialControlled bool            `json:"serial_controlled"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// toca aquí: se mueve únicamente registrando movimientos.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id" validate:"omitempty,uuid"`
	Brand        *string          `json:"brand" validate:"omitempty,max=50"`
	Model        *string          `json:"model" validate:"omitempty,max=50"`
	StandardCost *decimal.Decimal `json:"standard_cost"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
	IVAApplies   *bool            `json:"iva_applies"`
	StockMinimum *int64           `json:"stock_minimum" validate:"omitempty,min=0"`
	StockMaximum *int64           `json:"stock_maximum" validate:"omitempty,min=0"`
	ReorderPoint *int64           `json:"reorder_point" validate:"omitempty,min=0"`
	IsPerishable *bool            `json:"is_perishable"`
	ExpiryDate   *time.Time       `json:"expiry_date"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	EAN              string          `json:"ean"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	CategoryID       *string         `json:"category_id"`
	Brand            string          `json:"brand"`
	Model            string          `json:"model"`
	PurchaseUOM      string          `json:"purchase_uom"`
	SaleUOM          string          `json:"sale_uom"`
	ConversionFactor int64           `json:"conversion_factor"`
	StandardCost     decimal.Decimal `json:"standard_cost"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	IVAApplies       bool            `json:"iva_applies"`
	StockMinimum     int64           `json:"stock_minimum"`
	StockMaximum     *int64          `json:"stock_maximum"`
	ReorderPoint     int64           `json:"reorder_point"`
	IsPerishable     bool            `json:"is_perishable"`
	ExpiryDate       *time.Time      `json:"expiry_date"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockStatusResponse proyección de inventario de un producto: la suma viva
// del libro de movimientos más las alertas derivadas.
type StockStatusResponse struct {
	ProductID      string `json:"product_id"`
	SKU            string `json:"sku"`
	CurrentStock   int64  `json:"current_stock"`   // suma real con signo
	DisplayStock   int64  `json:"display_stock"`   // acotada a cero
	LowStockAlert  bool   `json:"low_stock_alert"`
	NearExpiry     bool   `json:"near_expiry_alert"`
	StockMinimum   int64  `json:"stock_minimum"`
	ReorderPoint   int64  `json:"reorder_point"`
}
