package reconcile

import (
	"context"

	"github.com/shopspring/decimal"
)

// StorageRow es la vista del colaborador REST de una fila de bodega.
type StorageRow struct {
	ID          string
	EquipmentID string
	HouseID     string
	Quantity    int
	Price       decimal.Decimal
	Description string
}

// Assignment es la vista del colaborador REST de un room-equipment.
type Assignment struct {
	ID          string
	RoomID      string
	EquipmentID string
	Quantity    int
	Price       decimal.Decimal
	Description string
	Source      string // storage | custom
}

// AssignmentChanges cambios parciales sobre un room-equipment (PUT parcial).
type AssignmentChanges struct {
	Quantity    *int
	Price       *decimal.Decimal
	Description *string
}

// RoomInfo habitación con su casa resuelta (GET /rooms/{id}?include=house).
type RoomInfo struct {
	ID      string
	HouseID string
}

// Gateway es el puerto hacia el API REST de la plataforma. El coordinador solo
// conoce este contrato; la implementación HTTP vive en infrastructure/rest y
// los tests usan fakes en memoria.
type Gateway interface {
	// FindStorage devuelve la fila de bodega para (equipment, house), o nil si no existe.
	FindStorage(ctx context.Context, equipmentID, houseID string) (*StorageRow, error)
	CreateStorage(ctx context.Context, row StorageRow) (*StorageRow, error)
	UpdateStorageQuantity(ctx context.Context, storageID string, quantity int) error

	GetRoomWithHouse(ctx context.Context, roomID string) (*RoomInfo, error)

	GetRoomEquipment(ctx context.Context, id string) (*Assignment, error)
	CreateRoomEquipment(ctx context.Context, in Assignment) (*Assignment, error)
	UpdateRoomEquipment(ctx context.Context, id string, changes AssignmentChanges) error
	DeleteRoomEquipment(ctx context.Context, id string) error
}
