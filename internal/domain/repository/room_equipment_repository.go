package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// RoomEquipmentRepository puerto de persistencia para asignaciones de equipo a habitaciones.
type RoomEquipmentRepository interface {
	Create(re *entity.RoomEquipment) error
	// GetByID devuelve la asignación con el equipo joineado.
	GetByID(id string) (*entity.RoomEquipment, error)
	ListByRoom(roomID string, limit, offset int) ([]*entity.RoomEquipment, error)
	Update(re *entity.RoomEquipment) error
	Delete(id string) error
}
