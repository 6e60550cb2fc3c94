package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest apertura de contrato de arriendo.
type CreateContractRequest struct {
	RoomID      string          `json:"room_id"`
	TenantID    string          `json:"tenant_id"`
	StartDate   time.Time       `json:"start_date"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Deposit     decimal.Decimal `json:"deposit"`
}

// FinishContractRequest cierre de contrato.
type FinishContractRequest struct {
	EndDate   time.Time `json:"end_date"`
	Cancelled bool      `json:"cancelled"` // true: cancelado anticipadamente en vez de finished
}

// ContractResponse contrato en respuestas.
type ContractResponse struct {
	ID          string          `json:"id"`
	RoomID      string          `json:"room_id"`
	TenantID    string          `json:"tenant_id"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Deposit     decimal.Decimal `json:"deposit"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ContractListResponse listado paginado de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
