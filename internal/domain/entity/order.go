package entity

import "time"

// Estados de pedido. Progresión lineal estricta:
// PENDIENTE → EN_PROCESO → ENVIADO → ENTREGADO.
const (
	OrderStatusPendiente = "PENDIENTE"
	OrderStatusEnProceso = "EN_PROCESO"
	OrderStatusEnviado   = "ENVIADO"
	OrderStatusEntregado = "ENTREGADO"
)

// nextOrderStatus define el único sucesor válido de cada estado.
// ENTREGADO es terminal.
var nextOrderStatus = map[string]string{
	OrderStatusPendiente: OrderStatusEnProceso,
	OrderStatusEnProceso: OrderStatusEnviado,
	OrderStatusEnviado:   OrderStatusEntregado,
}

// OrderItem es una línea de pedido.
type OrderItem struct {
	ProductID string
	Quantity  int64
}

// Order representa un pedido de un cliente.
type Order struct {
	ID              string
	CustomerID      string
	Items           []OrderItem
	Status          string
	ShippingAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanTransition reporta si el pedido puede pasar de su estado actual a target.
// Solo se acepta el sucesor inmediato: no hay saltos ni retrocesos.
func (o *Order) CanTransition(target string) bool {
	return nextOrderStatus[o.Status] == target
}

// ValidOrderStatus reporta si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPendiente, OrderStatusEnProceso, OrderStatusEnviado, OrderStatusEntregado:
		return true
	}
	return false
}
