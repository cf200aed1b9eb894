package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/application/usecase"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(o *entity.Order) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = o.Status
	stored.UpdatedAt = o.UpdatedAt
	return nil
}

func (r *fakeOrderRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) List(search string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Delete(id string) error { delete(r.customers, id); return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

const (
	testCustomerID = "11111111-1111-1111-1111-111111111111"
	testProductID  = "22222222-2222-2222-2222-222222222222"
)

func buildOrderUseCase(t *testing.T) (*usecase.OrderUseCase, *fakeOrderRepo) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		testCustomerID: {ID: testCustomerID, Name: "Comercial Sur", Email: "contacto@comercialsur.cl"},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, SKU: "AZ-001", Name: "Azúcar 1kg"},
	}}
	return usecase.NewOrderUseCase(orderRepo, customerRepo, productRepo), orderRepo
}

func createOrder(t *testing.T, uc *usecase.OrderUseCase) *dto.OrderResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateOrderRequest{
		CustomerID:      testCustomerID,
		Items:           []dto.OrderItemDTO{{ProductID: testProductID, Quantity: 3}},
		ShippingAddress: "Av. Matta 1234, Santiago",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_NacePendiente(t *testing.T) {
	uc, _ := buildOrderUseCase(t)
	out := createOrder(t, uc)

	assert.Equal(t, entity.OrderStatusPendiente, out.Status,
		"todo pedido nuevo nace PENDIENTE, sin importar lo que pida el cliente")
	assert.Len(t, out.Items, 1)
}

func TestOrderCreate_ClienteInexistente(t *testing.T) {
	uc, _ := buildOrderUseCase(t)
	_, err := uc.Create(dto.CreateOrderRequest{
		CustomerID:      "33333333-3333-3333-3333-333333333333",
		Items:           []dto.OrderItemDTO{{ProductID: testProductID, Quantity: 1}},
		ShippingAddress: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUpdateStatus_ProgresionCompleta(t *testing.T) {
	uc, _ := buildOrderUseCase(t)
	out := createOrder(t, uc)

	for _, next := range []string{
		entity.OrderStatusEnProceso,
		entity.OrderStatusEnviado,
		entity.OrderStatusEntregado,
	} {
		updated, err := uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: next})
		require.NoError(t, err, "el sucesor inmediato siempre debe aceptarse")
		assert.Equal(t, next, updated.Status)
	}
}

func TestOrderUpdateStatus_SaltoRechazado(t *testing.T) {
	uc, repo := buildOrderUseCase(t)
	out := createOrder(t, uc)

	_, err := uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusEnviado})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"PENDIENTE no puede saltar directo a ENVIADO")

	stored, _ := repo.GetByID(out.ID)
	assert.Equal(t, entity.OrderStatusPendiente, stored.Status,
		"un intento rechazado no debe tocar el estado almacenado")
}

func TestOrderUpdateStatus_RetrocesoRechazado(t *testing.T) {
	uc, _ := buildOrderUseCase(t)
	out := createOrder(t, uc)

	_, err := uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusEnProceso})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusPendiente})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderUpdateStatus_EntregadoEsTerminal(t *testing.T) {
	uc, _ := buildOrderUseCase(t)
	out := createOrder(t, uc)

	for _, next := range []string{
		entity.OrderStatusEnProceso,
		entity.OrderStatusEnviado,
		entity.OrderStatusEntregado,
	} {
		_, err := uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: next})
		require.NoError(t, err)
	}
	_, err := uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusEntregado})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _ := buildOrderUseCase(t)
	out := createOrder(t, uc)

	_, err := uc.UpdateStatus(out.ID, dto.UpdateOrderStatusRequest{Status: "CANCELADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateStatus_PedidoInexistente(t *testing.T) {
	uc, _ := buildOrderUseCase(t)
	out, err := uc.UpdateStatus("99999999-9999-9999-9999-999999999999",
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusEnProceso})
	require.NoError(t, err)
	assert.Nil(t, out)
}
