package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

var _ repository.HouseRepository = (*HouseRepo)(nil)

// HouseRepo implementación del puerto HouseRepository sobre PostgreSQL.
type HouseRepo struct {
	q Querier
}

// NewHouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHouseRepository(q Querier) *HouseRepo {
	return &HouseRepo{q: q}
}

// Create persiste una casa nueva.
func (r *HouseRepo) Create(house *entity.House) error {
	query := `
		INSERT INTO houses (id, name, address, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		house.ID, house.Name, house.Address, nullable(house.ManagerID), house.CreatedAt, house.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert house: %w", err)
	}
	return nil
}

// GetByID obtiene una casa por ID (nil si no existe).
func (r *HouseRepo) GetByID(id string) (*entity.House, error) {
	query := `
		SELECT id, name, address, COALESCE(manager_id, ''), created_at, updated_at
		FROM houses WHERE id = $1`
	var h entity.House
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&h.ID, &h.Name, &h.Address, &h.ManagerID, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get house: %w", err)
	}
	return &h, nil
}

// List lista casas con paginación.
func (r *HouseRepo) List(limit, offset int) ([]*entity.House, error) {
	query := `
		SELECT id, name, address, COALESCE(manager_id, ''), created_at, updated_at
		FROM houses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	defer rows.Close()
	var list []*entity.House
	for rows.Next() {
		var h entity.House
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.ManagerID, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan house: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update actualiza una casa existente.
func (r *HouseRepo) Update(house *entity.House) error {
	query := `
		UPDATE houses SET name = $2, address = $3, manager_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		house.ID, house.Name, house.Address, nullable(house.ManagerID), house.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update house: %w", err)
	}
	return nil
}

// Delete elimina una casa por ID.
func (r *HouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM houses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete house: %w", err)
	}
	return nil
}

// nullable convierte "" en NULL para columnas con FK opcional.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
