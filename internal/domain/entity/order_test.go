package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

// La progresión de estados es lineal y de a un paso:
// PENDIENTE → EN_PROCESO → ENVIADO → ENTREGADO.
func TestOrder_CanTransition_SoloSucesorInmediato(t *testing.T) {
	cases := []struct {
		name   string
		from   string
		to     string
		wantOK bool
	}{
		{"pendiente a en_proceso", entity.OrderStatusPendiente, entity.OrderStatusEnProceso, true},
		{"en_proceso a enviado", entity.OrderStatusEnProceso, entity.OrderStatusEnviado, true},
		{"enviado a entregado", entity.OrderStatusEnviado, entity.OrderStatusEntregado, true},

		// Saltos hacia adelante
		{"pendiente a enviado", entity.OrderStatusPendiente, entity.OrderStatusEnviado, false},
		{"pendiente a entregado", entity.OrderStatusPendiente, entity.OrderStatusEntregado, false},
		{"en_proceso a entregado", entity.OrderStatusEnProceso, entity.OrderStatusEntregado, false},

		// Retrocesos
		{"en_proceso a pendiente", entity.OrderStatusEnProceso, entity.OrderStatusPendiente, false},
		{"entregado a enviado", entity.OrderStatusEntregado, entity.OrderStatusEnviado, false},

		// Repetición y estado terminal
		{"pendiente a pendiente", entity.OrderStatusPendiente, entity.OrderStatusPendiente, false},
		{"entregado es terminal", entity.OrderStatusEntregado, entity.OrderStatusEntregado, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := &entity.Order{Status: tc.from}
			assert.Equal(t, tc.wantOK, o.CanTransition(tc.to))
		})
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusPendiente))
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusEntregado))
	assert.False(t, entity.ValidOrderStatus("CANCELADO"))
	assert.False(t, entity.ValidOrderStatus(""))
	assert.False(t, entity.ValidOrderStatus("pendiente"))
}
