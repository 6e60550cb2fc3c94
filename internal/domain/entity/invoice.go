package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de arriendo.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa la factura mensual de arriendo de un contrato.
type Invoice struct {
	ID         string
	ContractID string
	Number     string // consecutivo legible, ej. "F-2026-000123"
	Period     string // período facturado, formato YYYY-MM
	Amount     decimal.Decimal
	Status     string // pending, paid, cancelled
	IssuedAt   time.Time
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
