package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// RoomRepository puerto de persistencia para habitaciones.
type RoomRepository interface {
	Create(room *entity.Room) error
	// GetByID devuelve la habitación; con includeHouse carga también la casa (para resolver house_id en inventario).
	GetByID(id string, includeHouse bool) (*entity.Room, error)
	ListByHouse(houseID string, limit, offset int) ([]*entity.Room, error)
	Update(room *entity.Room) error
	// UpdateStatus cambia solo el estado (free/occupied/maintenance).
	UpdateStatus(id, status string) error
	Delete(id string) error
}
