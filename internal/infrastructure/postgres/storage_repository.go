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

var _ repository.StorageRepository = (*StorageRepo)(nil)

// StorageRepo implementación del puerto StorageRepository sobre PostgreSQL.
type StorageRepo struct {
	q Querier
}

// NewStorageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStorageRepository(q Querier) *StorageRepo {
	return &StorageRepo{q: q}
}

const storageColumns = `id, equipment_id, house_id, quantity, price, description, created_at, updated_at`

// Create persiste una fila de bodega nueva.
func (r *StorageRepo) Create(storage *entity.Storage) error {
	query := `
		INSERT INTO storages (` + storageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		storage.ID, storage.EquipmentID, storage.HouseID, storage.Quantity,
		storage.Price, storage.Description, storage.CreatedAt, storage.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert storage: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de bodega por ID (nil si no existe).
func (r *StorageRepo) GetByID(id string) (*entity.Storage, error) {
	query := `SELECT ` + storageColumns + ` FROM storages WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByEquipmentAndHouse devuelve la fila para el par (equipment, house), o nil si no existe.
func (r *StorageRepo) FindByEquipmentAndHouse(equipmentID, houseID string) (*entity.Storage, error) {
	query := `SELECT ` + storageColumns + ` FROM storages WHERE equipment_id = $1 AND house_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, equipmentID, houseID))
}

func (r *StorageRepo) scanOne(row pgx.Row) (*entity.Storage, error) {
	var s entity.Storage
	err := row.Scan(
		&s.ID, &s.EquipmentID, &s.HouseID, &s.Quantity,
		&s.Price, &s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage: %w", err)
	}
	return &s, nil
}

// ListByHouse lista el libro de bodega de una casa con paginación.
func (r *StorageRepo) ListByHouse(houseID string, limit, offset int) ([]*entity.Storage, error) {
	query := `
		SELECT ` + storageColumns + ` FROM storages
		WHERE house_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, houseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list storages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Storage
	for rows.Next() {
		var s entity.Storage
		if err := rows.Scan(&s.ID, &s.EquipmentID, &s.HouseID, &s.Quantity,
			&s.Price, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan storage: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza cantidad, precio y descripción de una fila de bodega.
func (r *StorageRepo) Update(storage *entity.Storage) error {
	query := `
		UPDATE storages SET quantity = $2, price = $3, description = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		storage.ID, storage.Quantity, storage.Price, storage.Description, storage.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update storage: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad (PUT parcial del API).
func (r *StorageRepo) UpdateQuantity(id string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE storages SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update storage quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrStorageNotFound
	}
	return nil
}

// Delete elimina una fila de bodega por ID.
func (r *StorageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM storages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}
