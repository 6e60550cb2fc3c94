package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/usecase"
)

// DashboardHandler expone los indicadores agregados de la plataforma.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard de indicadores
// @Description  Ocupación por casa, ingresos por período, facturas pendientes y valor de bodega.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Meses de histórico de ingresos"  default(6)
// @Success      200  {object}  dto.Envelope{data=dto.DashboardDTO}
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	months := c.QueryInt("months", 6)
	out, err := h.uc.GetDashboard(c.Context(), months)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}
