package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/usecase"
	"github.com/tu-usuario/hostal-pro/internal/domain"
)

// HouseHandler maneja las peticiones HTTP para House (protegido).
type HouseHandler struct {
	uc *usecase.HouseUseCase
}

// NewHouseHandler construye el handler.
func NewHouseHandler(uc *usecase.HouseUseCase) *HouseHandler {
	return &HouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear casa
// @Tags         houses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHouseRequest  true  "Datos de la casa"
// @Success      201   {object}  dto.Envelope{data=dto.HouseResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/houses [post]
func (h *HouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "name y address son requeridos"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener casa por ID
// @Tags         houses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la casa"
// @Success      200  {object}  dto.Envelope{data=dto.HouseResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/houses/{id} [get]
func (h *HouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "casa no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar casas
// @Tags         houses
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre/dirección (insensible a acentos)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.Envelope{data=dto.HouseListResponse}
// @Router       /api/v1/houses [get]
func (h *HouseHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Query("q"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar casa
// @Tags         houses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la casa"
// @Param        body  body  dto.UpdateHouseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.HouseResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/houses/{id} [put]
func (h *HouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "casa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar casa
// @Tags         houses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la casa"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/houses/{id} [delete]
func (h *HouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "casa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(nil))
}

// pagination lee limit/offset con los mismos topes en todos los listados.
func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
