package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/usecase"
	"github.com/tu-usuario/hostal-pro/internal/domain"
)

// InventoryHandler expone el catálogo de equipos, la bodega por casa y las
// asignaciones a habitaciones. Son los endpoints que consume el coordinador
// de la consola paso a paso.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ── Equipos ───────────────────────────────────────────────────────────────────

// CreateEquipment godoc
// @Summary      Crear equipo en el catálogo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipmentRequest  true  "Nombre del equipo"
// @Success      201   {object}  dto.Envelope{data=dto.EquipmentResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/equipments [post]
func (h *InventoryHandler) CreateEquipment(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.CreateEquipment(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "name es requerido"))
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE", "ya existe un equipo con ese nombre"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListEquipment godoc
// @Summary      Listar catálogo de equipos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  dto.Envelope{data=[]dto.EquipmentResponse}
// @Router       /api/v1/equipments [get]
func (h *InventoryHandler) ListEquipment(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListEquipment(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// ── Bodega ────────────────────────────────────────────────────────────────────

// CreateStorage godoc
// @Summary      Crear fila de bodega
// @Description  A lo sumo una fila activa por par (equipment, house).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStorageRequest  true  "Datos de la fila de bodega"
// @Success      201   {object}  dto.Envelope{data=dto.StorageResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/storages [post]
func (h *InventoryHandler) CreateStorage(c *fiber.Ctx) error {
	var in dto.CreateStorageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.CreateStorage(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "equipment_id, house_id y quantity >= 0 son requeridos"))
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE", "ya existe bodega para ese equipo en esa casa"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListStorage godoc
// @Summary      Buscar o listar bodega
// @Description  Con equipment_id y house_id devuelve la fila para ese par (lista de 0 o 1 elementos).
// @Description  Con solo house_id lista el libro de bodega de la casa.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        equipment_id  query  string  false  "ID del equipo"
// @Param        house_id      query  string  true   "ID de la casa"
// @Param        limit         query  int     false  "Límite"
// @Param        offset        query  int     false  "Offset"
// @Success      200  {object}  dto.Envelope{data=[]dto.StorageResponse}
// @Router       /api/v1/storages [get]
func (h *InventoryHandler) ListStorage(c *fiber.Ctx) error {
	houseID := c.Query("house_id")
	if houseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "house_id es requerido"))
	}
	if equipmentID := c.Query("equipment_id"); equipmentID != "" {
		// Búsqueda puntual: el coordinador espera una lista vacía cuando
		// no hay fila, nunca un 404.
		row, err := h.uc.FindStorage(equipmentID, houseID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
		}
		items := []dto.StorageResponse{}
		if row != nil {
			items = append(items, *row)
		}
		return c.JSON(dto.OK(items))
	}
	limit, offset := pagination(c)
	out, err := h.uc.ListStorageByHouse(houseID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// UpdateStorage godoc
// @Summary      Actualizar fila de bodega (PUT parcial)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la fila de bodega"
// @Param        body  body  dto.UpdateStorageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.StorageResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/storages/{id} [put]
func (h *InventoryHandler) UpdateStorage(c *fiber.Ctx) error {
	var in dto.UpdateStorageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.UpdateStorage(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "fila de bodega no encontrada"))
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "quantity no puede ser negativa"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// ── Asignaciones a habitaciones ───────────────────────────────────────────────

// CreateRoomEquipment godoc
// @Summary      Asignar equipo a una habitación
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoomEquipmentRequest  true  "Datos de la asignación"
// @Success      201   {object}  dto.Envelope{data=dto.RoomEquipmentResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/room-equipments [post]
func (h *InventoryHandler) CreateRoomEquipment(c *fiber.Ctx) error {
	var in dto.CreateRoomEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.CreateRoomEquipment(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "room_id, equipment_id, quantity > 0 y source storage|custom son requeridos"))
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "habitación no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetRoomEquipment godoc
// @Summary      Obtener asignación por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.Envelope{data=dto.RoomEquipmentResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/room-equipments/{id} [get]
func (h *InventoryHandler) GetRoomEquipment(c *fiber.Ctx) error {
	out, err := h.uc.GetRoomEquipment(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "asignación no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// ListRoomEquipment godoc
// @Summary      Listar asignaciones de una habitación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        room_id  query  string  true   "ID de la habitación"
// @Param        limit    query  int     false  "Límite"
// @Param        offset   query  int     false  "Offset"
// @Success      200  {object}  dto.Envelope{data=[]dto.RoomEquipmentResponse}
// @Router       /api/v1/room-equipments [get]
func (h *InventoryHandler) ListRoomEquipment(c *fiber.Ctx) error {
	roomID := c.Query("room_id")
	if roomID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "room_id es requerido"))
	}
	limit, offset := pagination(c)
	out, err := h.uc.ListRoomEquipment(roomID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// UpdateRoomEquipment godoc
// @Summary      Actualizar asignación (PUT parcial)
// @Description  quantity, price y description. El source no cambia después de creada.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la asignación"
// @Param        body  body  dto.UpdateRoomEquipmentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.RoomEquipmentResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/room-equipments/{id} [put]
func (h *InventoryHandler) UpdateRoomEquipment(c *fiber.Ctx) error {
	var in dto.UpdateRoomEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.UpdateRoomEquipment(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "asignación no encontrada"))
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "quantity no puede ser negativa"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// DeleteRoomEquipment godoc
// @Summary      Eliminar asignación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/room-equipments/{id} [delete]
func (h *InventoryHandler) DeleteRoomEquipment(c *fiber.Ctx) error {
	if err := h.uc.DeleteRoomEquipment(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "asignación no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(nil))
}
