package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
	"github.com/tu-usuario/hostal-pro/pkg/logger"
)

// InvoiceUseCase genera y gestiona las facturas mensuales de arriendo.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	contractRepo repository.ContractRepository
	tenantRepo   repository.TenantRepository
	notifier     Notifier
	log          *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso. notifier y log pueden ser nil.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	contractRepo repository.ContractRepository,
	tenantRepo repository.TenantRepository,
	notifier Notifier,
	log *logger.Logger,
) *InvoiceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		contractRepo: contractRepo,
		tenantRepo:   tenantRepo,
		notifier:     notifier,
		log:          log,
	}
}

// Generate emite la factura de un contrato para un período YYYY-MM.
// Devuelve ErrDuplicate si el período ya fue facturado.
func (uc *InvoiceUseCase) Generate(in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ContractID == "" {
		return nil, domain.ErrInvalidInput
	}
	periodStart, err := time.Parse("2006-01", in.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: período inválido %q, se espera YYYY-MM", domain.ErrInvalidInput, in.Period)
	}

	contract, err := uc.contractRepo.GetByID(in.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.Status != entity.ContractStatusActive {
		return nil, domain.ErrContractNotActive
	}

	existing, err := uc.invoiceRepo.GetByContractAndPeriod(in.ContractID, in.Period)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	number, err := uc.invoiceRepo.NextNumber(periodStart.Year())
	if err != nil {
		return nil, fmt.Errorf("facturación: consecutivo: %w", err)
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		ContractID: contract.ID,
		Number:     number,
		Period:     in.Period,
		Amount:     contract.MonthlyRent,
		Status:     entity.InvoiceStatusPending,
		IssuedAt:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", invoice.ID).
		Str("number", invoice.Number).
		Str("contract_id", contract.ID).
		Str("period", in.Period).
		Msg("factura generada")

	uc.notifyTenant(contract, invoice)

	return invoiceToResponse(invoice), nil
}

// notifyTenant avisa al inquilino si tiene usuario asociado. El aviso es best
// effort: un fallo se registra pero no revierte la factura.
func (uc *InvoiceUseCase) notifyTenant(contract *entity.Contract, invoice *entity.Invoice) {
	if uc.notifier == nil {
		return
	}
	tenant, err := uc.tenantRepo.GetByID(contract.TenantID)
	if err != nil || tenant == nil || tenant.UserID == "" {
		return
	}
	title := "Nueva factura de arriendo"
	body := fmt.Sprintf("Factura %s del período %s por $%s.", invoice.Number, invoice.Period, invoice.Amount.StringFixed(0))
	if err := uc.notifier.Notify(tenant.UserID, title, body); err != nil {
		uc.log.Warn().Err(err).Str("invoice_id", invoice.ID).Msg("no se pudo notificar la factura")
	}
}

// MarkPaid registra el pago de una factura pendiente.
func (uc *InvoiceUseCase) MarkPaid(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status != entity.InvoiceStatusPending {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaidAt = &now
	invoice.UpdatedAt = now
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

// Cancel anula una factura pendiente (una pagada no se anula).
func (uc *InvoiceUseCase) Cancel(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status != entity.InvoiceStatusPending {
		return nil, domain.ErrConflict
	}
	invoice.Status = entity.InvoiceStatusCancelled
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

// GetByID obtiene una factura por ID (nil si no existe).
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil || invoice == nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

// List lista facturas, opcionalmente filtradas por estado.
func (uc *InvoiceUseCase) List(status string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	return invoiceListResponse(list, limit, offset), nil
}

// ListByContract lista las facturas de un contrato.
func (uc *InvoiceUseCase) ListByContract(contractID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.ListByContract(contractID, limit, offset)
	if err != nil {
		return nil, err
	}
	return invoiceListResponse(list, limit, offset), nil
}

func invoiceListResponse(list []*entity.Invoice, limit, offset int) *dto.InvoiceListResponse {
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *invoiceToResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		ContractID: inv.ContractID,
		Number:     inv.Number,
		Period:     inv.Period,
		Amount:     inv.Amount,
		Status:     inv.Status,
		IssuedAt:   inv.IssuedAt,
		PaidAt:     inv.PaidAt,
	}
}
