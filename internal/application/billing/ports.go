package billing

import (
	"context"

	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
)

// InvoiceDocData reúne todo lo que necesita un documento de factura:
// la factura, su contrato y el inquilino, la habitación y la casa arrendadas.
type InvoiceDocData struct {
	Invoice  *entity.Invoice
	Contract *entity.Contract
	Tenant   *entity.Tenant
	Room     *entity.Room
	House    *entity.House
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoiceDocData) ([]byte, error)
}

// InvoiceXMLExporter serializa una factura a XML para exportar a contabilidad.
type InvoiceXMLExporter interface {
	ExportInvoiceXML(data InvoiceDocData) ([]byte, error)
}

// Notifier emite notificaciones dentro de la plataforma. nil deshabilita el envío.
type Notifier interface {
	Notify(userID, title, body string) error
}
