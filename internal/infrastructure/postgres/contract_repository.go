package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, room_id, tenant_id, start_date, end_date, monthly_rent, deposit, status, created_at, updated_at`

// Create persiste un contrato nuevo.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.RoomID, contract.TenantID, contract.StartDate, contract.EndDate,
		contract.MonthlyRent, contract.Deposit, contract.Status, contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID (nil si no existe).
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetActiveByRoom devuelve el contrato activo de una habitación, o nil si no hay.
func (r *ContractRepo) GetActiveByRoom(roomID string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE room_id = $1 AND status = 'active'`
	return r.scanOne(r.q.QueryRow(context.Background(), query, roomID))
}

func (r *ContractRepo) scanOne(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	err := row.Scan(
		&c.ID, &c.RoomID, &c.TenantID, &c.StartDate, &c.EndDate,
		&c.MonthlyRent, &c.Deposit, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// ListByTenant lista los contratos de un inquilino con paginación.
func (r *ContractRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Contract, error) {
	query := `
		SELECT ` + contractColumns + ` FROM contracts
		WHERE tenant_id = $1 ORDER BY start_date DESC LIMIT $2 OFFSET $3`
	return r.list(query, tenantID, limit, offset)
}

// List lista contratos con paginación.
func (r *ContractRepo) List(limit, offset int) ([]*entity.Contract, error) {
	query := `
		SELECT ` + contractColumns + ` FROM contracts
		ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *ContractRepo) list(query string, args ...any) ([]*entity.Contract, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.RoomID, &c.TenantID, &c.StartDate, &c.EndDate,
			&c.MonthlyRent, &c.Deposit, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza fecha de cierre y estado de un contrato.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contracts SET end_date = $2, monthly_rent = $3, deposit = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.EndDate, contract.MonthlyRent, contract.Deposit, contract.Status, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}
