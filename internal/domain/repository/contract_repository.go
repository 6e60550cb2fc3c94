package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// ContractRepository puerto de persistencia para contratos de arriendo.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	// GetActiveByRoom devuelve el contrato activo de una habitación, o nil si no hay.
	GetActiveByRoom(roomID string) (*entity.Contract, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Contract, error)
	List(limit, offset int) ([]*entity.Contract, error)
	Update(contract *entity.Contract) error
}
