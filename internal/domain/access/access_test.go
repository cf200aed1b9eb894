package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/access"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

func cuentaConCargo(role string) *entity.Account {
	return &entity.Account{ID: "acc-1", Handle: "jperez", Role: role, Status: entity.StatusActivo}
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveLanding
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveLanding_CadaCargoTieneSuDashboard(t *testing.T) {
	cases := []struct {
		role  string
		route access.DashboardRoute
	}{
		{entity.RoleAdmin, access.RouteAdmin},
		{entity.RoleSupervisor, access.RouteSupervisor},
		{entity.RoleOperador, access.RouteOperador},
		{entity.RoleCliente, access.RouteCliente},
	}
	for _, tc := range cases {
		route, err := access.ResolveLanding(cuentaConCargo(tc.role))
		require.NoError(t, err, "cargo %s debe resolver sin error", tc.role)
		assert.Equal(t, tc.route, route)
	}
}

func TestResolveLanding_CargoDesconocido_NoHayDefault(t *testing.T) {
	for _, role := range []string{"", "GERENTE", "admin", "SUPER"} {
		route, err := access.ResolveLanding(cuentaConCargo(role))
		assert.ErrorIs(t, err, domain.ErrRoleUndetermined,
			"cargo %q debe producir ErrRoleUndetermined, nunca un dashboard por defecto", role)
		assert.Empty(t, route)
	}
}

func TestResolveLanding_CuentaNil(t *testing.T) {
	_, err := access.ResolveLanding(nil)
	assert.ErrorIs(t, err, domain.ErrRoleUndetermined)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authorize — jerarquía por enumeración, no por herencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_OperadorNoEntraAPantallaDeSupervisor(t *testing.T) {
	ok := access.Authorize(cuentaConCargo(entity.RoleOperador),
		entity.RoleSupervisor, entity.RoleAdmin)
	assert.False(t, ok, "OPERADOR no pertenece a {SUPERVISOR, ADMIN}")
}

func TestAuthorize_SupervisorEntraAPantallaDeOperador(t *testing.T) {
	ok := access.Authorize(cuentaConCargo(entity.RoleSupervisor),
		entity.RoleOperador, entity.RoleSupervisor, entity.RoleAdmin)
	assert.True(t, ok, "SUPERVISOR pertenece a {OPERADOR, SUPERVISOR, ADMIN}")
}

func TestAuthorize_PantallaDeCliente(t *testing.T) {
	assert.True(t, access.Authorize(cuentaConCargo(entity.RoleCliente), entity.RoleCliente, entity.RoleAdmin))
	assert.True(t, access.Authorize(cuentaConCargo(entity.RoleAdmin), entity.RoleCliente, entity.RoleAdmin))
	assert.False(t, access.Authorize(cuentaConCargo(entity.RoleOperador), entity.RoleCliente, entity.RoleAdmin))
}

func TestAuthorize_SinCuentaOSinCargo(t *testing.T) {
	assert.False(t, access.Authorize(nil, entity.RoleAdmin), "cuenta nil no está autenticada")
	assert.False(t, access.Authorize(cuentaConCargo(""), entity.RoleAdmin))
	assert.False(t, access.RoleAllowed("", entity.RoleAdmin))
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleSupervisor, entity.RoleOperador, entity.RoleCliente} {
		assert.True(t, access.ValidRole(role))
	}
	assert.False(t, access.ValidRole("ADMINISTRADOR"))
	assert.False(t, access.ValidRole(""))
}
