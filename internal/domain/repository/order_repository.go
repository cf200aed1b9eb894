package repository

import "github.com/lilis-erp/gestion-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
// UpdateStatus solo escribe el campo de estado: la validación de la
// transición es responsabilidad del caso de uso.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(order *entity.Order) error
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Order, error)
	List(status string, limit, offset int) ([]*entity.Order, error)
}
