package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un contrato de arriendo.
const (
	ContractStatusActive    = "active"
	ContractStatusFinished  = "finished"
	ContractStatusCancelled = "cancelled"
)

// Contract representa un contrato de arriendo de una habitación por un inquilino.
// Abrir un contrato marca la habitación como ocupada; cerrarlo la libera
// (ambas cosas en la misma transacción de BD).
type Contract struct {
	ID          string
	RoomID      string
	TenantID    string
	StartDate   time.Time
	EndDate     *time.Time // nil mientras el contrato sigue abierto
	MonthlyRent decimal.Decimal
	Deposit     decimal.Decimal
	Status      string // active, finished, cancelled
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
