package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest genera la factura de un contrato para un período.
type GenerateInvoiceRequest struct {
	ContractID string `json:"contract_id"`
	Period     string `json:"period"` // YYYY-MM
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	ContractID string          `json:"contract_id"`
	Number     string          `json:"number"`
	Period     string          `json:"period"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	IssuedAt   time.Time       `json:"issued_at"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
