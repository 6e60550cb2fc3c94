// Package xmlexport serializa facturas de arriendo a XML para exportarlas a
// sistemas contables externos.
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/tu-usuario/hostal-pro/internal/application/billing"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
)

var _ billing.InvoiceXMLExporter = (*InvoiceXMLExporter)(nil)

// InvoiceXMLExporter implementa billing.InvoiceXMLExporter usando etree.
type InvoiceXMLExporter struct{}

// NewInvoiceXMLExporter construye el exportador.
func NewInvoiceXMLExporter() *InvoiceXMLExporter { return &InvoiceXMLExporter{} }

// ExportInvoiceXML genera el documento RentInvoice y devuelve sus bytes indentados.
func (e *InvoiceXMLExporter) ExportInvoiceXML(data billing.InvoiceDocData) ([]byte, error) {
	if data.Invoice == nil || data.Contract == nil || data.Tenant == nil {
		return nil, fmt.Errorf("xml: faltan invoice, contract o tenant en los datos")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("RentInvoice")
	root.CreateAttr("number", data.Invoice.Number)
	root.CreateAttr("period", data.Invoice.Period)
	root.CreateAttr("status", data.Invoice.Status)

	if data.House != nil {
		house := root.CreateElement("House")
		house.CreateAttr("id", data.House.ID)
		house.CreateElement("Name").SetText(data.House.Name)
		house.CreateElement("Address").SetText(data.House.Address)
	}
	if data.Room != nil {
		room := root.CreateElement("Room")
		room.CreateAttr("id", data.Room.ID)
		room.CreateElement("Number").SetText(data.Room.Number)
	}

	tenant := root.CreateElement("Tenant")
	tenant.CreateAttr("document", data.Tenant.Document)
	tenant.CreateElement("FullName").SetText(data.Tenant.FullName)
	if data.Tenant.Email != "" {
		tenant.CreateElement("Email").SetText(data.Tenant.Email)
	}
	if data.Tenant.Phone != "" {
		tenant.CreateElement("Phone").SetText(data.Tenant.Phone)
	}

	contract := root.CreateElement("Contract")
	contract.CreateAttr("id", data.Contract.ID)
	contract.CreateElement("StartDate").SetText(data.Contract.StartDate.Format("2006-01-02"))
	if data.Contract.EndDate != nil {
		contract.CreateElement("EndDate").SetText(data.Contract.EndDate.Format("2006-01-02"))
	}

	amount := root.CreateElement("Amount")
	amount.CreateAttr("currency", "COP")
	amount.SetText(data.Invoice.Amount.StringFixed(2))

	root.CreateElement("IssuedAt").SetText(data.Invoice.IssuedAt.Format("2006-01-02T15:04:05-07:00"))
	if data.Invoice.Status == entity.InvoiceStatusPaid && data.Invoice.PaidAt != nil {
		root.CreateElement("PaidAt").SetText(data.Invoice.PaidAt.Format("2006-01-02T15:04:05-07:00"))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar factura: %w", err)
	}
	return out, nil
}
