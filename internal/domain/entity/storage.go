package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Storage es la fila del libro de bodega: cuánto hay disponible de un equipo
// en la bodega de una casa. Identidad lógica compuesta (equipment_id, house_id);
// se asume a lo sumo una fila activa por par, sin enforcement del lado cliente.
// Se crea perezosamente la primera vez que un equipo entra o sale de una habitación.
type Storage struct {
	ID          string
	EquipmentID string
	HouseID     string
	Quantity    int // nunca debe quedar negativa al prestar a habitaciones
	Price       decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
