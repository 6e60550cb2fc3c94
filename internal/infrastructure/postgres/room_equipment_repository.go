package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

var _ repository.RoomEquipmentRepository = (*RoomEquipmentRepo)(nil)

// RoomEquipmentRepo implementación del puerto RoomEquipmentRepository sobre PostgreSQL.
type RoomEquipmentRepo struct {
	q Querier
}

// NewRoomEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomEquipmentRepository(q Querier) *RoomEquipmentRepo {
	return &RoomEquipmentRepo{q: q}
}

// Create persiste una asignación nueva.
func (r *RoomEquipmentRepo) Create(re *entity.RoomEquipment) error {
	query := `
		INSERT INTO room_equipments (id, room_id, equipment_id, quantity, price, description, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		re.ID, re.RoomID, re.EquipmentID, re.Quantity, re.Price,
		re.Description, re.Source, re.CreatedAt, re.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room equipment: %w", err)
	}
	return nil
}

// GetByID devuelve la asignación con el equipo joineado (nil si no existe).
func (r *RoomEquipmentRepo) GetByID(id string) (*entity.RoomEquipment, error) {
	query := `
		SELECT re.id, re.room_id, re.equipment_id, re.quantity, re.price, re.description, re.source, re.created_at, re.updated_at,
		       e.id, e.name, e.created_at
		FROM room_equipments re
		JOIN equipments e ON e.id = re.equipment_id
		WHERE re.id = $1`
	var re entity.RoomEquipment
	var eq entity.Equipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&re.ID, &re.RoomID, &re.EquipmentID, &re.Quantity, &re.Price,
		&re.Description, &re.Source, &re.CreatedAt, &re.UpdatedAt,
		&eq.ID, &eq.Name, &eq.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room equipment: %w", err)
	}
	re.Equipment = &eq
	return &re, nil
}

// ListByRoom lista las asignaciones de una habitación, con el equipo joineado.
func (r *RoomEquipmentRepo) ListByRoom(roomID string, limit, offset int) ([]*entity.RoomEquipment, error) {
	query := `
		SELECT re.id, re.room_id, re.equipment_id, re.quantity, re.price, re.description, re.source, re.created_at, re.updated_at,
		       e.id, e.name, e.created_at
		FROM room_equipments re
		JOIN equipments e ON e.id = re.equipment_id
		WHERE re.room_id = $1
		ORDER BY re.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, roomID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list room equipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoomEquipment
	for rows.Next() {
		var re entity.RoomEquipment
		var eq entity.Equipment
		if err := rows.Scan(&re.ID, &re.RoomID, &re.EquipmentID, &re.Quantity, &re.Price,
			&re.Description, &re.Source, &re.CreatedAt, &re.UpdatedAt,
			&eq.ID, &eq.Name, &eq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room equipment: %w", err)
		}
		re.Equipment = &eq
		list = append(list, &re)
	}
	return list, rows.Err()
}

// Update actualiza cantidad, precio y descripción de una asignación.
// El origen (source) no cambia después de creada.
func (r *RoomEquipmentRepo) Update(re *entity.RoomEquipment) error {
	query := `
		UPDATE room_equipments SET quantity = $2, price = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		re.ID, re.Quantity, re.Price, re.Description, re.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update room equipment: %w", err)
	}
	return nil
}

// Delete elimina una asignación por ID.
func (r *RoomEquipmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM room_equipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room equipment: %w", err)
	}
	return nil
}
