package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// InvoiceRepository puerto de persistencia para facturas de arriendo.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// GetByContractAndPeriod evita facturar dos veces el mismo período.
	GetByContractAndPeriod(contractID, period string) (*entity.Invoice, error)
	ListByContract(contractID string, limit, offset int) ([]*entity.Invoice, error)
	List(status string, limit, offset int) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	// NextNumber devuelve el siguiente consecutivo de factura para el año dado.
	NextNumber(year int) (string, error)
}
