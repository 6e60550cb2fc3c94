package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen de la cantidad de un RoomEquipment.
const (
	SourceStorage = "storage" // tomado de la bodega de la casa; debe reconciliarse con Storage
	SourceCustom  = "custom"  // ingresado a mano, sin vínculo con bodega
)

// RoomEquipment es la asignación de una cantidad de un equipo a una habitación.
// Si Source es "storage", la cantidad salió de la fila Storage de la casa y
// los cambios posteriores (aumentos, devoluciones, borrado) pueden tocarla.
type RoomEquipment struct {
	ID          string
	RoomID      string
	EquipmentID string
	Quantity    int
	Price       decimal.Decimal
	Description string
	Source      string // storage | custom
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Equipment viene joineado en las lecturas del API.
	Equipment *Equipment
}
