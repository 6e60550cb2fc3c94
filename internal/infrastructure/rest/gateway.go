package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/reconcile"
)

var _ reconcile.Gateway = (*Gateway)(nil)

// Gateway implementa reconcile.Gateway contra el API REST de la plataforma.
type Gateway struct {
	c *Client
}

// NewGateway construye el gateway sobre un cliente autenticado.
func NewGateway(c *Client) *Gateway {
	return &Gateway{c: c}
}

// FindStorage consulta el filtro GET /storages?equipment_id=&house_id=.
// Devuelve nil cuando la lista viene vacía (el par no tiene fila de bodega).
func (g *Gateway) FindStorage(ctx context.Context, equipmentID, houseID string) (*reconcile.StorageRow, error) {
	path := fmt.Sprintf("/api/v1/storages?equipment_id=%s&house_id=%s",
		url.QueryEscape(equipmentID), url.QueryEscape(houseID))
	var rows []dto.StorageResponse
	if err := g.c.do(ctx, "find storage", "GET", path, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := storageRowFromDTO(rows[0])
	return &row, nil
}

// CreateStorage da de alta una fila de bodega.
func (g *Gateway) CreateStorage(ctx context.Context, row reconcile.StorageRow) (*reconcile.StorageRow, error) {
	body := dto.CreateStorageRequest{
		EquipmentID: row.EquipmentID,
		HouseID:     row.HouseID,
		Quantity:    row.Quantity,
		Price:       row.Price,
		Description: row.Description,
	}
	var created dto.StorageResponse
	if err := g.c.do(ctx, "create storage", "POST", "/api/v1/storages", body, &created); err != nil {
		return nil, err
	}
	out := storageRowFromDTO(created)
	return &out, nil
}

// UpdateStorageQuantity PUT parcial con solo la cantidad.
func (g *Gateway) UpdateStorageQuantity(ctx context.Context, storageID string, quantity int) error {
	body := dto.UpdateStorageRequest{Quantity: &quantity}
	path := "/api/v1/storages/" + url.PathEscape(storageID)
	return g.c.do(ctx, "update storage", "PUT", path, body, nil)
}

// GetRoomWithHouse resuelve la casa de una habitación (GET /rooms/{id}?include=house).
func (g *Gateway) GetRoomWithHouse(ctx context.Context, roomID string) (*reconcile.RoomInfo, error) {
	path := "/api/v1/rooms/" + url.PathEscape(roomID) + "?include=house"
	var room dto.RoomResponse
	if err := g.c.do(ctx, "get room", "GET", path, nil, &room); err != nil {
		return nil, err
	}
	if room.ID == "" {
		return nil, nil
	}
	return &reconcile.RoomInfo{ID: room.ID, HouseID: room.HouseID}, nil
}

// GetRoomEquipment obtiene una asignación (nil si el servidor no la encontró).
func (g *Gateway) GetRoomEquipment(ctx context.Context, id string) (*reconcile.Assignment, error) {
	path := "/api/v1/room-equipments/" + url.PathEscape(id)
	var re dto.RoomEquipmentResponse
	if err := g.c.do(ctx, "get room-equipment", "GET", path, nil, &re); err != nil {
		return nil, err
	}
	if re.ID == "" {
		return nil, nil
	}
	asg := assignmentFromDTO(re)
	return &asg, nil
}

// CreateRoomEquipment da de alta una asignación.
func (g *Gateway) CreateRoomEquipment(ctx context.Context, in reconcile.Assignment) (*reconcile.Assignment, error) {
	body := dto.CreateRoomEquipmentRequest{
		RoomID:      in.RoomID,
		EquipmentID: in.EquipmentID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Description: in.Description,
		Source:      in.Source,
	}
	var created dto.RoomEquipmentResponse
	if err := g.c.do(ctx, "create room-equipment", "POST", "/api/v1/room-equipments", body, &created); err != nil {
		return nil, err
	}
	out := assignmentFromDTO(created)
	return &out, nil
}

// UpdateRoomEquipment PUT parcial de una asignación.
func (g *Gateway) UpdateRoomEquipment(ctx context.Context, id string, changes reconcile.AssignmentChanges) error {
	body := dto.UpdateRoomEquipmentRequest{
		Quantity:    changes.Quantity,
		Price:       changes.Price,
		Description: changes.Description,
	}
	path := "/api/v1/room-equipments/" + url.PathEscape(id)
	return g.c.do(ctx, "update room-equipment", "PUT", path, body, nil)
}

// DeleteRoomEquipment borra una asignación.
func (g *Gateway) DeleteRoomEquipment(ctx context.Context, id string) error {
	path := "/api/v1/room-equipments/" + url.PathEscape(id)
	return g.c.do(ctx, "delete room-equipment", "DELETE", path, nil, nil)
}

func storageRowFromDTO(s dto.StorageResponse) reconcile.StorageRow {
	return reconcile.StorageRow{
		ID:          s.ID,
		EquipmentID: s.EquipmentID,
		HouseID:     s.HouseID,
		Quantity:    s.Quantity,
		Price:       s.Price,
		Description: s.Description,
	}
}

func assignmentFromDTO(re dto.RoomEquipmentResponse) reconcile.Assignment {
	return reconcile.Assignment{
		ID:          re.ID,
		RoomID:      re.RoomID,
		EquipmentID: re.EquipmentID,
		Quantity:    re.Quantity,
		Price:       re.Price,
		Description: re.Description,
		Source:      re.Source,
	}
}
