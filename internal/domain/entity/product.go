package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida soportadas (compra y venta).
const (
	UOMKilogramo = "kg"
	UOMCaja      = "caja"
	UOMUnidad    = "uni"
)

// Product representa un producto del catálogo con sus umbrales de inventario.
// El stock actual NO se almacena: se deriva siempre de la suma de movimientos
// (ver domain/stock), evitando la deriva entre un contador y el libro mayor.
type Product struct {
	ID               string
	SKU              string // único global
	EAN              string // código de barras, único global
	Name             string
	Description      string
	CategoryID       *string
	Brand            string
	Model            string
	PurchaseUOM      string // kg, caja, uni
	SaleUOM          string
	ConversionFactor int64 // unidades de venta por unidad de compra
	StandardCost     decimal.Decimal
	SalePrice        decimal.Decimal
	IVAApplies       bool // IVA 19%
	StockMinimum     int64
	StockMaximum     *int64
	ReorderPoint     int64
	IsPerishable     bool
	ExpiryDate       *time.Time
	LotControlled    bool
	SerialControlled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
