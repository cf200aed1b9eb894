package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/stock"
)

func mov(tipo string, qty int64) entity.InventoryMovement {
	return entity.InventoryMovement{ProductID: "prod-1", Type: tipo, Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentStock — fold con signo sobre el ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentStock_EscenarioIngresoYSalida(t *testing.T) {
	// INGRESO +50, SALIDA -45 con mínimo 10 ⇒ stock 5 y alerta encendida.
	movs := []entity.InventoryMovement{
		mov(entity.MovementTypeIngreso, 50),
		mov(entity.MovementTypeSalida, 45),
	}
	current := stock.CurrentStock(movs)
	assert.Equal(t, int64(5), current)

	p := &entity.Product{StockMinimum: 10}
	assert.True(t, stock.LowStockAlert(p, current))
}

func TestCurrentStock_SignosPorTipo(t *testing.T) {
	movs := []entity.InventoryMovement{
		mov(entity.MovementTypeIngreso, 100),
		mov(entity.MovementTypeSalida, 30),
		mov(entity.MovementTypeDevolucion, 5),
		mov(entity.MovementTypeAjuste, -10), // corrección hacia abajo
		mov(entity.MovementTypeAjuste, 2),   // corrección hacia arriba
	}
	assert.Equal(t, int64(67), stock.CurrentStock(movs))
}

func TestCurrentStock_InvarianteBajoReordenamiento(t *testing.T) {
	movs := []entity.InventoryMovement{
		mov(entity.MovementTypeIngreso, 20),
		mov(entity.MovementTypeSalida, 7),
		mov(entity.MovementTypeAjuste, -3),
		mov(entity.MovementTypeDevolucion, 1),
		mov(entity.MovementTypeSalida, 4),
	}
	want := stock.CurrentStock(movs)

	// Rotaciones del slice: la suma es conmutativa y asociativa.
	for i := range movs {
		rotated := append(append([]entity.InventoryMovement{}, movs[i:]...), movs[:i]...)
		assert.Equal(t, want, stock.CurrentStock(rotated),
			"la suma no debe depender del orden de los movimientos")
	}
}

func TestCurrentStock_NegativoNoRompeElProyector(t *testing.T) {
	movs := []entity.InventoryMovement{
		mov(entity.MovementTypeSalida, 12),
		mov(entity.MovementTypeIngreso, 4),
	}
	current := stock.CurrentStock(movs)
	assert.Equal(t, int64(-8), current, "la suma real con signo se preserva")
	assert.Equal(t, int64(0), stock.DisplayStock(current), "la presentación se acota a cero")

	// Con mínimo 0 la alerta solo dispara en cero o negativo.
	p := &entity.Product{StockMinimum: 0}
	assert.True(t, stock.LowStockAlert(p, current))
	assert.False(t, stock.LowStockAlert(p, 1))
	assert.True(t, stock.LowStockAlert(p, 0))
}

func TestCurrentStock_TipoDesconocidoNoAporta(t *testing.T) {
	movs := []entity.InventoryMovement{
		mov(entity.MovementTypeIngreso, 10),
		mov("TRASLADO", 99),
	}
	assert.Equal(t, int64(10), stock.CurrentStock(movs))
}

// ──────────────────────────────────────────────────────────────────────────────
// NearExpiryAlert — horizonte de 7 días para perecederos
// ──────────────────────────────────────────────────────────────────────────────

func TestNearExpiryAlert_Horizonte(t *testing.T) {
	hoy := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	en3dias := hoy.AddDate(0, 0, 3)
	en10dias := hoy.AddDate(0, 0, 10)
	vencidoAyer := hoy.AddDate(0, 0, -1)

	perecedero := func(fecha time.Time) *entity.Product {
		return &entity.Product{IsPerishable: true, ExpiryDate: &fecha}
	}

	assert.True(t, stock.NearExpiryAlert(perecedero(en3dias), hoy), "vence en 3 días")
	assert.False(t, stock.NearExpiryAlert(perecedero(en10dias), hoy), "vence en 10 días")
	assert.True(t, stock.NearExpiryAlert(perecedero(vencidoAyer), hoy), "ya vencido cuenta como alerta")
}

func TestNearExpiryAlert_NoPerecederoNuncaAlerta(t *testing.T) {
	hoy := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	manana := hoy.AddDate(0, 0, 1)

	noPerecedero := &entity.Product{IsPerishable: false, ExpiryDate: &manana}
	assert.False(t, stock.NearExpiryAlert(noPerecedero, hoy))

	sinFecha := &entity.Product{IsPerishable: true, ExpiryDate: nil}
	assert.False(t, stock.NearExpiryAlert(sinFecha, hoy))
}

func TestNearExpiryAlert_BordeExactoDeSieteDias(t *testing.T) {
	hoy := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	en7 := time.Date(2026, 3, 17, 0, 1, 0, 0, time.UTC)
	en8 := time.Date(2026, 3, 18, 0, 1, 0, 0, time.UTC)

	assert.True(t, stock.NearExpiryAlert(&entity.Product{IsPerishable: true, ExpiryDate: &en7}, hoy),
		"exactamente 7 días calendario está dentro del horizonte")
	assert.False(t, stock.NearExpiryAlert(&entity.Product{IsPerishable: true, ExpiryDate: &en8}, hoy))
}
