package dto

import "time"

// OrderItemDTO una línea de pedido.
type OrderItemDTO struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear un pedido. Nace siempre PENDIENTE.
type CreateOrderRequest struct {
	CustomerID      string         `json:"customer_id" validate:"required,uuid"`
	Items           []OrderItemDTO `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string         `json:"shipping_address" validate:"required"`
}

// UpdateOrderStatusRequest entrada para avanzar el estado de un pedido.
// Solo se acepta el sucesor inmediato del estado actual.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDIENTE EN_PROCESO ENVIADO ENTREGADO"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	Items           []OrderItemDTO `json:"items"`
	Status          string         `json:"status"`
	ShippingAddress string         `json:"shipping_address"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
