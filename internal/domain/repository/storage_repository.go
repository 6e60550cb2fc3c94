package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// StorageRepository puerto de persistencia para el libro de bodega por casa.
type StorageRepository interface {
	Create(storage *entity.Storage) error
	GetByID(id string) (*entity.Storage, error)
	// FindByEquipmentAndHouse devuelve la fila para el par (equipment, house), o nil si no existe.
	// En la práctica hay a lo sumo una fila activa por par.
	FindByEquipmentAndHouse(equipmentID, houseID string) (*entity.Storage, error)
	ListByHouse(houseID string, limit, offset int) ([]*entity.Storage, error)
	Update(storage *entity.Storage) error
	// UpdateQuantity actualiza solo la cantidad (PUT parcial del API).
	UpdateQuantity(id string, quantity int) error
	Delete(id string) error
}
