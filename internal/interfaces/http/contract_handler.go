package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/usecase"
	"github.com/tu-usuario/hostal-pro/internal/domain"
)

// ContractHandler maneja el ciclo de vida de contratos de arriendo.
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir contrato
// @Description  Crea el contrato y marca la habitación como ocupada en una sola transacción.
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.Envelope{data=dto.ContractResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/contracts [post]
func (h *ContractHandler) Open(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Open(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "room_id y tenant_id son requeridos"))
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "habitación o inquilino no encontrado"))
		case domain.ErrRoomOccupied:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("ROOM_OCCUPIED", "la habitación ya está ocupada"))
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", "la habitación ya tiene un contrato activo"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Finish godoc
// @Summary      Finalizar o cancelar contrato
// @Description  Cierra el contrato y libera la habitación en una sola transacción.
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.FinishContractRequest  true  "Fecha de fin y bandera cancelled"
// @Success      200   {object}  dto.Envelope{data=dto.ContractResponse}
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/contracts/{id}/finish [put]
func (h *ContractHandler) Finish(c *fiber.Ctx) error {
	var in dto.FinishContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Finish(c.Context(), c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "contrato no encontrado"))
		case domain.ErrContractNotActive:
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONTRACT_NOT_ACTIVE", "el contrato no está activo"))
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "end_date no puede ser anterior a start_date"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener contrato por ID
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.Envelope{data=dto.ContractResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "contrato no encontrado"))
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar contratos
// @Description  Con ?tenant_id= lista solo los contratos de ese inquilino.
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        tenant_id  query  string  false  "Filtrar por inquilino"
// @Param        limit      query  int     false  "Límite"
// @Param        offset     query  int     false  "Offset"
// @Success      200  {object}  dto.Envelope{data=dto.ContractListResponse}
// @Router       /api/v1/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		out, err := h.uc.ListByTenant(tenantID, limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
		}
		return c.JSON(dto.OK(out))
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}
