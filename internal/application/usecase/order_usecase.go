package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos. El estado avanza solo hacia adelante
// y de a un paso: PENDIENTE → EN_PROCESO → ENVIADO → ENTREGADO.
type OrderUseCase struct {
	repo         repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, customerRepo: customerRepo, productRepo: productRepo}
}

// Create crea un pedido en estado PENDIENTE, validando cliente y productos.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		CustomerID:      in.CustomerID,
		Items:           items,
		Status:          entity.OrderStatusPendiente,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// UpdateStatus avanza el estado del pedido. Solo acepta el sucesor inmediato
// del estado actual; cualquier salto, retroceso o repetición devuelve
// ErrInvalidTransition.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !order.CanTransition(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	if err := uc.repo.UpdateStatus(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos, opcionalmente filtrados por estado.
func (uc *OrderUseCase) List(status string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	orders, err := uc.repo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, page), nil
}

// ListByCustomer lista los pedidos de un cliente.
func (uc *OrderUseCase) ListByCustomer(customerID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.repo.ListByCustomer(customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, page), nil
}

func toOrderListResponse(orders []*entity.Order, page dto.PageRequest) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Items:           items,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
