package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// HouseRepository puerto de persistencia para casas.
type HouseRepository interface {
	Create(house *entity.House) error
	GetByID(id string) (*entity.House, error)
	List(limit, offset int) ([]*entity.House, error)
	Update(house *entity.House) error
	Delete(id string) error
}
