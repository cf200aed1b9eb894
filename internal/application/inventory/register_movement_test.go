package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/application/inventory"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListAllByProduct(productID string) ([]entity.InventoryMovement, error) {
	var out []entity.InventoryMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el fn directamente contra el repo en memoria.
type fakeTxRunner struct {
	repo *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(movRepo repository.InventoryMovementRepository) error) error {
	return fn(r.repo)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error              { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)  { return r.products[id], nil }
func (r *fakeProductRepo) GetBySKU(s string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error              { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error                      { delete(r.products, id); return nil }
func (r *fakeProductRepo) List(f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error              { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error)  { return r.suppliers[id], nil }
func (r *fakeSupplierRepo) GetByTaxID(t string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error              { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) Delete(id string) error                       { delete(r.suppliers, id); return nil }
func (r *fakeSupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error             { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.warehouses[id], nil }
func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error)           { return nil, nil }
func (r *fakeWarehouseRepo) Delete(id string) error                       { delete(r.warehouses, id); return nil }

const (
	productoAzucar     = "22222222-2222-2222-2222-222222222222"
	proveedorActivo    = "44444444-4444-4444-4444-444444444444"
	proveedorBloqueado = "55555555-5555-5555-5555-555555555555"
	bodegaCentral      = "66666666-6666-6666-6666-666666666666"
	operadorID         = "77777777-7777-7777-7777-777777777777"
)

func buildRegisterUseCase(t *testing.T) (*inventory.RegisterMovementUseCase, *fakeMovementRepo) {
	t.Helper()
	movRepo := &fakeMovementRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		productoAzucar: {ID: productoAzucar, SKU: "AZ-001", Name: "Azúcar 1kg", StockMinimum: 10},
	}}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		proveedorActivo:    {ID: proveedorActivo, TaxID: "76.111.222-3", Status: entity.SupplierStatusActivo},
		proveedorBloqueado: {ID: proveedorBloqueado, TaxID: "76.444.555-6", Status: entity.SupplierStatusBloqueado},
	}}
	warehouseRepo := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		bodegaCentral: {ID: bodegaCentral, Name: "Bodega Central"},
	}}
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{repo: movRepo}, productRepo, supplierRepo, warehouseRepo)
	return uc, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_IngresoValido(t *testing.T) {
	uc, movRepo := buildRegisterUseCase(t)
	supplierID := proveedorActivo
	warehouseID := bodegaCentral

	out, err := uc.RegisterMovement(context.Background(), operadorID, dto.RegisterMovementRequest{
		ProductID:   productoAzucar,
		SupplierID:  &supplierID,
		WarehouseID: &warehouseID,
		Type:        entity.MovementTypeIngreso,
		Quantity:    50,
		Lot:         "L-2026-031",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeIngreso, out.Type)
	assert.Equal(t, int64(50), out.Quantity)
	assert.Equal(t, operadorID, out.CreatedBy)
	assert.Len(t, movRepo.movements, 1, "el movimiento debe quedar en el ledger")
}

func TestRegisterMovement_TipoDesconocido(t *testing.T) {
	uc, _ := buildRegisterUseCase(t)
	_, err := uc.RegisterMovement(context.Background(), operadorID, dto.RegisterMovementRequest{
		ProductID: productoAzucar,
		Type:      "MERMA",
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_SalidaNegativaRechazada(t *testing.T) {
	uc, movRepo := buildRegisterUseCase(t)
	_, err := uc.RegisterMovement(context.Background(), operadorID, dto.RegisterMovementRequest{
		ProductID: productoAzucar,
		Type:      entity.MovementTypeSalida,
		Quantity:  -5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la dirección la define el tipo, no el signo: SALIDA exige cantidad positiva")
	assert.Empty(t, movRepo.movements)
}

func TestRegisterMovement_AjusteConservaSigno(t *testing.T) {
	uc, _ := buildRegisterUseCase(t)
	out, err := uc.RegisterMovement(context.Background(), operadorID, dto.RegisterMovementRequest{
		ProductID: productoAzucar,
		Type:      entity.MovementTypeAjuste,
		Quantity:  -7,
		Notes:     "merma por conteo físico",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-7), out.Quantity)
}

func TestRegisterMovement_AjusteCeroRechazado(t *testing.T) {
	uc, _ := buildRegisterUseCase(t)
	_, err := uc.RegisterMovement(context.Background(), operadorID, dto.RegisterMovementRequest{
		ProductID: productoAzucar,
		Type:      entity.MovementTypeAjuste,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_ProveedorBloqueado(t *testing.T) {
	uc, movRepo := buildRegisterUseCase(t)
	supplierID := proveedorBloqueado
	_, err := uc.RegisterMovement(context.Background(), operadorID, dto.RegisterMovementRequest{
		ProductID:  productoAzucar,
		SupplierID: &supplierID,
		Type:       entity.MovementTypeIngreso,
		Quantity:   20,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un proveedor BLOQUEADO no puede originar ingresos")
	assert.Empty(t, movRepo.movements)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, _ := buildRegisterUseCase(t)
	_, err := uc.RegisterMovement(context.Background(), operadorID, dto.RegisterMovementRequest{
		ProductID: "88888888-8888-8888-8888-888888888888",
		Type:      entity.MovementTypeIngreso,
		Quantity:  10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockQuery_GetStatus_ProyectaDesdeLedger(t *testing.T) {
	uc, movRepo := buildRegisterUseCase(t)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, operadorID, dto.RegisterMovementRequest{
		ProductID: productoAzucar, Type: entity.MovementTypeIngreso, Quantity: 50,
	})
	require.NoError(t, err)
	_, err = uc.RegisterMovement(ctx, operadorID, dto.RegisterMovementRequest{
		ProductID: productoAzucar, Type: entity.MovementTypeSalida, Quantity: 45,
	})
	require.NoError(t, err)

	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		productoAzucar: {ID: productoAzucar, SKU: "AZ-001", Name: "Azúcar 1kg", StockMinimum: 10},
	}}
	query := inventory.NewStockQueryUseCase(productRepo, movRepo)
	status, err := query.GetStatus(productoAzucar)
	require.NoError(t, err)

	assert.Equal(t, int64(5), status.CurrentStock)
	assert.True(t, status.LowStockAlert, "5 <= mínimo 10 debe encender la alerta")
}
