package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una habitación.
const (
	RoomStatusFree        = "free"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// Room representa una habitación de una casa.
type Room struct {
	ID          string
	HouseID     string
	Number      string
	Floor       int
	Capacity    int
	MonthlyRent decimal.Decimal
	Status      string // free, occupied, maintenance
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// House se rellena solo cuando el listado/lectura pide ?include=house.
	House *House
}
