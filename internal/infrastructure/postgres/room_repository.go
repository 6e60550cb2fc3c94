package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo implementación del puerto RoomRepository sobre PostgreSQL.
type RoomRepo struct {
	q Querier
}

// NewRoomRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// Create persiste una habitación nueva.
func (r *RoomRepo) Create(room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, house_id, number, floor, capacity, monthly_rent, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.HouseID, room.Number, room.Floor, room.Capacity,
		room.MonthlyRent, room.Status, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// GetByID obtiene una habitación; con includeHouse carga también la casa
// en la misma consulta (lo usa la consola para resolver house_id).
func (r *RoomRepo) GetByID(id string, includeHouse bool) (*entity.Room, error) {
	if !includeHouse {
		query := `
			SELECT id, house_id, number, floor, capacity, monthly_rent, status, created_at, updated_at
			FROM rooms WHERE id = $1`
		var rm entity.Room
		err := r.q.QueryRow(context.Background(), query, id).Scan(
			&rm.ID, &rm.HouseID, &rm.Number, &rm.Floor, &rm.Capacity,
			&rm.MonthlyRent, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, fmt.Errorf("get room: %w", err)
		}
		return &rm, nil
	}

	query := `
		SELECT r.id, r.house_id, r.number, r.floor, r.capacity, r.monthly_rent, r.status, r.created_at, r.updated_at,
		       h.id, h.name, h.address, COALESCE(h.manager_id, ''), h.created_at, h.updated_at
		FROM rooms r
		JOIN houses h ON h.id = r.house_id
		WHERE r.id = $1`
	var rm entity.Room
	var h entity.House
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rm.ID, &rm.HouseID, &rm.Number, &rm.Floor, &rm.Capacity,
		&rm.MonthlyRent, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
		&h.ID, &h.Name, &h.Address, &h.ManagerID, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room with house: %w", err)
	}
	rm.House = &h
	return &rm, nil
}

// ListByHouse lista habitaciones de una casa con paginación.
func (r *RoomRepo) ListByHouse(houseID string, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT id, house_id, number, floor, capacity, monthly_rent, status, created_at, updated_at
		FROM rooms WHERE house_id = $1 ORDER BY number LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, houseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Room
	for rows.Next() {
		var rm entity.Room
		if err := rows.Scan(&rm.ID, &rm.HouseID, &rm.Number, &rm.Floor, &rm.Capacity,
			&rm.MonthlyRent, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		list = append(list, &rm)
	}
	return list, rows.Err()
}

// Update actualiza una habitación existente.
func (r *RoomRepo) Update(room *entity.Room) error {
	query := `
		UPDATE rooms SET number = $2, floor = $3, capacity = $4, monthly_rent = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.Number, room.Floor, room.Capacity, room.MonthlyRent, room.Status, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado (free/occupied/maintenance).
func (r *RoomRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE rooms SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update room status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una habitación por ID.
func (r *RoomRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
