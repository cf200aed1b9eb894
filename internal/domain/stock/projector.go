// Package stock deriva el estado de inventario de un producto a partir de su
// libro mayor de movimientos. Es un fold puro recalculado en cada lectura: no
// existe un contador almacenado que pueda desalinearse del ledger.
package stock

import (
	"time"

	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

// NearExpiryHorizonDays es el horizonte de alerta de vencimiento.
const NearExpiryHorizonDays = 7

// SignedQuantity devuelve la cantidad con signo de un movimiento:
// INGRESO y DEVOLUCION suman, SALIDA resta, AJUSTE aporta su propio signo
// (positivo corrige hacia arriba, negativo hacia abajo).
func SignedQuantity(m entity.InventoryMovement) int64 {
	switch m.Type {
	case entity.MovementTypeIngreso, entity.MovementTypeDevolucion:
		return m.Quantity
	case entity.MovementTypeSalida:
		return -m.Quantity
	case entity.MovementTypeAjuste:
		return m.Quantity
	}
	// Tipo desconocido: no aporta. El proyector nunca debe caerse por datos
	// inconsistentes en el ledger.
	return 0
}

// CurrentStock suma las cantidades con signo de todos los movimientos.
// La suma es conmutativa: el orden del slice no afecta el resultado.
// Un total negativo es entrada legal (ledger inconsistente) y se preserva.
func CurrentStock(movements []entity.InventoryMovement) int64 {
	var total int64
	for _, m := range movements {
		total += SignedQuantity(m)
	}
	return total
}

// DisplayStock acota el stock a cero para presentación. La comparación de
// alertas usa siempre la suma real con signo, no este valor.
func DisplayStock(current int64) int64 {
	if current < 0 {
		return 0
	}
	return current
}

// LowStockAlert reporta si el stock actual está en o bajo el mínimo
// configurado. Con mínimo 0 la alerta solo dispara en stock cero o negativo.
func LowStockAlert(p *entity.Product, current int64) bool {
	return current <= p.StockMinimum
}

// NearExpiryAlert reporta si un producto perecedero vence dentro del
// horizonte de 7 días contado desde today. Incluye productos ya vencidos
// (días restantes negativos). Falso si no es perecedero o no tiene fecha.
func NearExpiryAlert(p *entity.Product, today time.Time) bool {
	if !p.IsPerishable || p.ExpiryDate == nil {
		return false
	}
	days := daysBetween(today, *p.ExpiryDate)
	return days <= NearExpiryHorizonDays
}

// daysBetween cuenta días calendario entre from y to (negativo si to es
// anterior), ignorando la hora del día.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
