package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity debe ser positiva para INGRESO/SALIDA/DEVOLUCION (el tipo fija la
// dirección) y distinta de cero con signo libre para AJUSTE.
type RegisterMovementRequest struct {
	ProductID   string     `json:"product_id" validate:"required,uuid"`
	SupplierID  *string    `json:"supplier_id" validate:"omitempty,uuid"`
	WarehouseID *string    `json:"warehouse_id" validate:"omitempty,uuid"`
	Type        string     `json:"type" validate:"required,oneof=INGRESO SALIDA AJUSTE DEVOLUCION"`
	Quantity    int64      `json:"quantity" validate:"required"`
	Lot         string     `json:"lot" validate:"omitempty,max=50"`
	Serial      string     `json:"serial" validate:"omitempty,max=50"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	Notes       string     `json:"notes"`
}

// MovementResponse salida de un movimiento del libro mayor.
type MovementResponse struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"product_id"`
	SupplierID  *string    `json:"supplier_id"`
	WarehouseID *string    `json:"warehouse_id"`
	Type        string     `json:"type"`
	Quantity    int64      `json:"quantity"`
	Lot         string     `json:"lot,omitempty"`
	Serial      string     `json:"serial,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LowStockItem una fila del reporte de stock bajo.
type LowStockItem struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	CurrentStock int64  `json:"current_stock"`
	StockMinimum int64  `json:"stock_minimum"`
	ReorderPoint int64  `json:"reorder_point"`
	NearExpiry   bool   `json:"near_expiry_alert"`
}

// LowStockReportResponse reporte de productos en o bajo su mínimo.
type LowStockReportResponse struct {
	Items []LowStockItem `json:"items"`
}
