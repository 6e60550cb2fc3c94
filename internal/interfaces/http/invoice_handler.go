package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/hostal-pro/internal/application/billing"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
)

// InvoiceHandler maneja facturas de arriendo y sus documentos (PDF y XML).
type InvoiceHandler struct {
	uc   *billing.InvoiceUseCase
	docs *billing.DocumentUseCase
}

func NewInvoiceHandler(uc *billing.InvoiceUseCase, docs *billing.DocumentUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, docs: docs}
}

// Generate godoc
// @Summary      Generar factura mensual
// @Description  Genera la factura de un contrato activo para un período YYYY-MM. El período no se puede facturar dos veces.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateInvoiceRequest  true  "contract_id y period"
// @Success      201   {object}  dto.Envelope{data=dto.InvoiceResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/invoices [post]
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Generate(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "contrato no encontrado"))
		case errors.Is(err, domain.ErrContractNotActive):
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONTRACT_NOT_ACTIVE", "el contrato no está activo"))
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE", "el período ya fue facturado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// MarkPaid godoc
// @Summary      Marcar factura como pagada
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.Envelope{data=dto.InvoiceResponse}
// @Failure      409  {object}  dto.Envelope
// @Router       /api/v1/invoices/{id}/pay [put]
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.Params("id"))
	if err != nil {
		return h.invoiceError(c, err, "solo una factura pendiente se puede pagar")
	}
	return c.JSON(dto.OK(out))
}

// Cancel godoc
// @Summary      Anular factura
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.Envelope{data=dto.InvoiceResponse}
// @Failure      409  {object}  dto.Envelope
// @Router       /api/v1/invoices/{id}/cancel [put]
func (h *InvoiceHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return h.invoiceError(c, err, "solo una factura pendiente se puede anular")
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.Envelope{data=dto.InvoiceResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "factura no encontrada"))
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar facturas
// @Description  Filtros opcionales: ?status=pending|paid|cancelled y ?contract_id=.
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Estado"
// @Param        contract_id  query  string  false  "Filtrar por contrato"
// @Param        limit        query  int     false  "Límite"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {object}  dto.Envelope{data=dto.InvoiceListResponse}
// @Router       /api/v1/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	if contractID := c.Query("contract_id"); contractID != "" {
		out, err := h.uc.ListByContract(contractID, limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
		}
		return c.JSON(dto.OK(out))
	}
	out, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK(out))
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.docs.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "factura no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ExportXML godoc
// @Summary      Exportar factura en XML
// @Tags         invoices
// @Security     Bearer
// @Produce      application/xml
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/invoices/{id}/xml [get]
func (h *InvoiceHandler) ExportXML(c *fiber.Ctx) error {
	xmlBytes, filename, err := h.docs.ExportInvoiceXML(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "factura no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xmlBytes)
}

// invoiceError mapea los errores comunes de cambio de estado de factura.
func (h *InvoiceHandler) invoiceError(c *fiber.Ctx, err error, conflictMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "factura no encontrada"))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", conflictMsg))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
}
