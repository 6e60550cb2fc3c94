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

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación del puerto EquipmentRepository sobre PostgreSQL.
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un ítem nuevo del catálogo. El nombre es único.
func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	query := `INSERT INTO equipments (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, equipment.ID, equipment.Name, equipment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem del catálogo por ID (nil si no existe).
func (r *EquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	query := `SELECT id, name, created_at FROM equipments WHERE id = $1`
	var eq entity.Equipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(&eq.ID, &eq.Name, &eq.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &eq, nil
}

// List lista el catálogo con paginación.
func (r *EquipmentRepo) List(limit, offset int) ([]*entity.Equipment, error) {
	query := `SELECT id, name, created_at FROM equipments ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list equipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var eq entity.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &eq)
	}
	return list, rows.Err()
}
