package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// TenantRepository puerto de persistencia para inquilinos.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	GetByDocument(document string) (*entity.Tenant, error)
	List(limit, offset int) ([]*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	Delete(id string) error
}
