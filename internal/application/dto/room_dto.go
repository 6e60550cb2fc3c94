package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRoomRequest alta de habitación.
type CreateRoomRequest struct {
	HouseID     string          `json:"house_id"`
	Number      string          `json:"number"`
	Floor       int             `json:"floor"`
	Capacity    int             `json:"capacity"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

// UpdateRoomRequest edición de habitación.
type UpdateRoomRequest struct {
	Number      string          `json:"number"`
	Floor       int             `json:"floor"`
	Capacity    int             `json:"capacity"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Status      string          `json:"status"`
}

// RoomResponse habitación en respuestas; House solo con ?include=house.
type RoomResponse struct {
	ID          string          `json:"id"`
	HouseID     string          `json:"house_id"`
	Number      string          `json:"number"`
	Floor       int             `json:"floor"`
	Capacity    int             `json:"capacity"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	House       *HouseResponse  `json:"house,omitempty"`
}

// RoomListResponse listado paginado de habitaciones.
type RoomListResponse struct {
	Items []RoomResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
