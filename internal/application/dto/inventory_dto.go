package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEquipmentRequest alta de ítem del catálogo.
type CreateEquipmentRequest struct {
	Name string `json:"name"`
}

// EquipmentResponse ítem del catálogo en respuestas.
type EquipmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateStorageRequest alta de fila de bodega.
type CreateStorageRequest struct {
	EquipmentID string          `json:"equipment_id"`
	HouseID     string          `json:"house_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// UpdateStorageRequest PUT parcial de fila de bodega: campos nil no se tocan.
type UpdateStorageRequest struct {
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

// StorageResponse fila de bodega en respuestas.
type StorageResponse struct {
	ID          string          `json:"id"`
	EquipmentID string          `json:"equipment_id"`
	HouseID     string          `json:"house_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateRoomEquipmentRequest alta de asignación de equipo a habitación.
type CreateRoomEquipmentRequest struct {
	RoomID      string          `json:"room_id"`
	EquipmentID string          `json:"equipment_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Source      string          `json:"source"` // storage | custom
}

// UpdateRoomEquipmentRequest PUT parcial de asignación: campos nil no se tocan.
type UpdateRoomEquipmentRequest struct {
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

// RoomEquipmentResponse asignación en respuestas, con el equipo joineado.
type RoomEquipmentResponse struct {
	ID          string             `json:"id"`
	RoomID      string             `json:"room_id"`
	EquipmentID string             `json:"equipment_id"`
	Quantity    int                `json:"quantity"`
	Price       decimal.Decimal    `json:"price"`
	Description string             `json:"description"`
	Source      string             `json:"source"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Equipment   *EquipmentResponse `json:"equipment,omitempty"`
}
