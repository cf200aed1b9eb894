// Package access resuelve el dashboard de aterrizaje y la autorización por
// cargo. Es un servicio de dominio puro: sin HTTP, sin persistencia.
package access

import (
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

// DashboardRoute es la ruta de aterrizaje resuelta para una cuenta.
type DashboardRoute string

// Rutas de dashboard, una por cargo.
const (
	RouteAdmin      DashboardRoute = "/dashboard/admin"
	RouteSupervisor DashboardRoute = "/dashboard/supervisor"
	RouteOperador   DashboardRoute = "/dashboard/operador"
	RouteCliente    DashboardRoute = "/dashboard/cliente"
)

var landingByRole = map[string]DashboardRoute{
	entity.RoleAdmin:      RouteAdmin,
	entity.RoleSupervisor: RouteSupervisor,
	entity.RoleOperador:   RouteOperador,
	entity.RoleCliente:    RouteCliente,
}

// ResolveLanding mapea el cargo de la cuenta a exactamente una de las cuatro
// rutas de dashboard. Un cargo vacío o desconocido produce
// ErrRoleUndetermined: nunca se asume un dashboard por defecto.
func ResolveLanding(account *entity.Account) (DashboardRoute, error) {
	if account == nil {
		return "", domain.ErrRoleUndetermined
	}
	route, ok := landingByRole[account.Role]
	if !ok {
		return "", domain.ErrRoleUndetermined
	}
	return route, nil
}

// Authorize reporta si la cuenta está autenticada y su cargo pertenece al
// conjunto permitido. La jerarquía se codifica enumerando: las pantallas de
// operador permiten {OPERADOR, SUPERVISOR, ADMIN}, las de cliente
// {CLIENTE, ADMIN}.
func Authorize(account *entity.Account, allowed ...string) bool {
	if account == nil {
		return false
	}
	return RoleAllowed(account.Role, allowed...)
}

// RoleAllowed reporta si role pertenece al conjunto permitido. Útil cuando
// solo se dispone del claim de cargo (por ejemplo en middleware JWT) y no de
// la entidad completa.
func RoleAllowed(role string, allowed ...string) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// ValidRole reporta si role es uno de los cuatro cargos conocidos.
func ValidRole(role string) bool {
	_, ok := landingByRole[role]
	return ok
}

// ValidStatus reporta si status es un estado de cuenta conocido.
func ValidStatus(status string) bool {
	switch status {
	case entity.StatusActivo, entity.StatusInactivo, entity.StatusBloqueado:
		return true
	}
	return false
}
