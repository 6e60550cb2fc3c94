package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

// DocumentUseCase produce los documentos descargables de una factura:
// la representación gráfica en PDF y el XML para exportar a contabilidad.
type DocumentUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	contractRepo repository.ContractRepository
	tenantRepo   repository.TenantRepository
	roomRepo     repository.RoomRepository
	generator    InvoicePDFGenerator
	exporter     InvoiceXMLExporter
}

// NewDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	contractRepo repository.ContractRepository,
	tenantRepo repository.TenantRepository,
	roomRepo repository.RoomRepository,
	generator InvoicePDFGenerator,
	exporter InvoiceXMLExporter,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo:  invoiceRepo,
		contractRepo: contractRepo,
		tenantRepo:   tenantRepo,
		roomRepo:     roomRepo,
		generator:    generator,
		exporter:     exporter,
	}
}

// DownloadInvoicePDF arma los datos de la factura y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *DocumentUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	data, err := uc.loadDocData(invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("factura_%s.pdf", data.Invoice.Number)
	return pdfBytes, filename, nil
}

// ExportInvoiceXML arma los datos de la factura y la serializa a XML.
func (uc *DocumentUseCase) ExportInvoiceXML(invoiceID string) (xmlBytes []byte, filename string, err error) {
	data, err := uc.loadDocData(invoiceID)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, err = uc.exporter.ExportInvoiceXML(data)
	if err != nil {
		return nil, "", fmt.Errorf("xml: exportación fallida: %w", err)
	}
	filename = fmt.Sprintf("factura_%s.xml", data.Invoice.Number)
	return xmlBytes, filename, nil
}

// loadDocData carga factura, contrato, inquilino, habitación y casa.
func (uc *DocumentUseCase) loadDocData(invoiceID string) (InvoiceDocData, error) {
	var data InvoiceDocData

	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return data, fmt.Errorf("documento: obtener factura: %w", err)
	}
	if inv == nil {
		return data, domain.ErrNotFound
	}
	contract, err := uc.contractRepo.GetByID(inv.ContractID)
	if err != nil || contract == nil {
		return data, fmt.Errorf("documento: obtener contrato: %w", orNotFound(err))
	}
	tenant, err := uc.tenantRepo.GetByID(contract.TenantID)
	if err != nil || tenant == nil {
		return data, fmt.Errorf("documento: obtener inquilino: %w", orNotFound(err))
	}
	room, err := uc.roomRepo.GetByID(contract.RoomID, true)
	if err != nil || room == nil {
		return data, fmt.Errorf("documento: obtener habitación: %w", orNotFound(err))
	}

	data = InvoiceDocData{
		Invoice:  inv,
		Contract: contract,
		Tenant:   tenant,
		Room:     room,
		House:    room.House,
	}
	return data, nil
}

func orNotFound(err error) error {
	if err != nil {
		return err
	}
	return domain.ErrNotFound
}
