package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/usecase"
	"github.com/tu-usuario/hostal-pro/internal/domain"
)

// RoomHandler maneja las peticiones HTTP para habitaciones.
type RoomHandler struct {
	uc *usecase.RoomUseCase
}

func NewRoomHandler(uc *usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

// Create godoc
// @Summary      Crear habitación
// @Tags         rooms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoomRequest  true  "Datos de la habitación"
// @Success      201   {object}  dto.Envelope{data=dto.RoomResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/rooms [post]
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "house_id y number son requeridos"))
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "casa no encontrada"))
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE", "ya existe una habitación con ese número en la casa"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener habitación por ID
// @Description  Con ?include=house incluye los datos de la casa a la que pertenece.
// @Tags         rooms
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID de la habitación"
// @Param        include  query  string  false  "house para incluir la casa"
// @Success      200  {object}  dto.Envelope{data=dto.RoomResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	includeHouse := c.Query("include") == "house"
	out, err := h.uc.GetByID(c.Params("id"), includeHouse)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "habitación no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// ListByHouse godoc
// @Summary      Listar habitaciones de una casa
// @Tags         rooms
// @Security     Bearer
// @Produce      json
// @Param        house_id  query  string  true  "ID de la casa"
// @Param        limit     query  int     false  "Límite"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  dto.Envelope{data=dto.RoomListResponse}
// @Router       /api/v1/rooms [get]
func (h *RoomHandler) ListByHouse(c *fiber.Ctx) error {
	houseID := c.Query("house_id")
	if houseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "house_id es requerido"))
	}
	limit, offset := pagination(c)
	out, err := h.uc.ListByHouse(houseID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar habitación
// @Tags         rooms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la habitación"
// @Param        body  body  dto.UpdateRoomRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.RoomResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/rooms/{id} [put]
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "habitación no encontrada"))
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "estado de habitación inválido"))
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", "la habitación tiene un contrato activo"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar habitación
// @Tags         rooms
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la habitación"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "habitación no encontrada"))
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", "no se puede eliminar una habitación ocupada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(nil))
}
