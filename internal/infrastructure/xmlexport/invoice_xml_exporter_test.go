package xmlexport

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/hostal-pro/internal/application/billing"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
)

func sampleDocData() billing.InvoiceDocData {
	paidAt := time.Date(2026, 8, 10, 15, 0, 0, 0, time.UTC)
	return billing.InvoiceDocData{
		Invoice: &entity.Invoice{
			ID:         "inv-1",
			ContractID: "ct-1",
			Number:     "F-2026-000001",
			Period:     "2026-08",
			Amount:     decimal.NewFromInt(500000),
			Status:     entity.InvoiceStatusPaid,
			IssuedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			PaidAt:     &paidAt,
		},
		Contract: &entity.Contract{
			ID:        "ct-1",
			StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Tenant: &entity.Tenant{FullName: "Ana Peñalosa", Document: "123", Email: "ana@example.com"},
		Room:   &entity.Room{ID: "room-1", Number: "201"},
		House:  &entity.House{ID: "house-1", Name: "Casa Centro", Address: "Calle 10 #5-23"},
	}
}

func TestExportInvoiceXML_DocumentoCompleto(t *testing.T) {
	out, err := NewInvoiceXMLExporter().ExportInvoiceXML(sampleDocData())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("RentInvoice")
	require.NotNil(t, root)
	assert.Equal(t, "F-2026-000001", root.SelectAttrValue("number", ""))
	assert.Equal(t, "2026-08", root.SelectAttrValue("period", ""))
	assert.Equal(t, "paid", root.SelectAttrValue("status", ""))

	house := root.SelectElement("House")
	require.NotNil(t, house)
	assert.Equal(t, "Casa Centro", house.SelectElement("Name").Text())

	tenant := root.SelectElement("Tenant")
	require.NotNil(t, tenant)
	assert.Equal(t, "Ana Peñalosa", tenant.SelectElement("FullName").Text())

	amount := root.SelectElement("Amount")
	require.NotNil(t, amount)
	assert.Equal(t, "COP", amount.SelectAttrValue("currency", ""))
	assert.Equal(t, "500000.00", amount.Text())

	assert.NotNil(t, root.SelectElement("PaidAt"), "la factura pagada lleva PaidAt")
}

func TestExportInvoiceXML_DatosIncompletos(t *testing.T) {
	_, err := NewInvoiceXMLExporter().ExportInvoiceXML(billing.InvoiceDocData{})
	assert.Error(t, err)
}
