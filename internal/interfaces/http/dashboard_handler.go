package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/application/inventory"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/access"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

// DashboardHandler resuelve el panel de cada cargo. Los paneles de operación
// y supervisión incluyen el reporte de stock bajo.
type DashboardHandler struct {
	lowStockUC *inventory.LowStockReportUseCase
}

// NewDashboardHandler construye el handler de dashboards.
func NewDashboardHandler(lowStockUC *inventory.LowStockReportUseCase) *DashboardHandler {
	return &DashboardHandler{lowStockUC: lowStockUC}
}

// Landing godoc
// @Summary      Ruta de panel resuelta para la cuenta autenticada
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Landing(c *fiber.Ctx) error {
	role := GetRole(c)
	route, err := access.ResolveLanding(&entity.Account{Role: role})
	if err != nil {
		if errors.Is(err, domain.ErrRoleUndetermined) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROLE_UNDETERMINED", Message: "la cuenta no tiene un cargo válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DashboardResponse{Role: role, Landing: string(route)})
}

// Admin godoc
// @Summary      Panel de administración
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/admin [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{Role: GetRole(c), Landing: string(access.RouteAdmin)})
}

// Supervisor godoc
// @Summary      Panel de supervisión, con reporte de stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/supervisor [get]
func (h *DashboardHandler) Supervisor(c *fiber.Ctx) error {
	report, err := h.lowStockUC.Report()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DashboardResponse{Role: GetRole(c), Landing: string(access.RouteSupervisor), LowStock: report})
}

// Operador godoc
// @Summary      Panel de operación, con reporte de stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/operador [get]
func (h *DashboardHandler) Operador(c *fiber.Ctx) error {
	report, err := h.lowStockUC.Report()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DashboardResponse{Role: GetRole(c), Landing: string(access.RouteOperador), LowStock: report})
}

// Cliente godoc
// @Summary      Panel de cliente
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/cliente [get]
func (h *DashboardHandler) Cliente(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{Role: GetRole(c), Landing: string(access.RouteCliente)})
}
