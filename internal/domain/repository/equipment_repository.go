package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// EquipmentRepository puerto de persistencia para el catálogo de equipos.
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	List(limit, offset int) ([]*entity.Equipment, error)
}
