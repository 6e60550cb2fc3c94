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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, contract_id, number, period, amount, status, issued_at, paid_at, created_at, updated_at`

// Create persiste una factura nueva. El par (contract, period) es único.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ContractID, invoice.Number, invoice.Period, invoice.Amount,
		invoice.Status, invoice.IssuedAt, invoice.PaidAt, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID (nil si no existe).
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByContractAndPeriod evita facturar dos veces el mismo período.
func (r *InvoiceRepo) GetByContractAndPeriod(contractID, period string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE contract_id = $1 AND period = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, contractID, period))
}

func (r *InvoiceRepo) scanOne(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.ContractID, &inv.Number, &inv.Period, &inv.Amount,
		&inv.Status, &inv.IssuedAt, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListByContract lista las facturas de un contrato con paginación.
func (r *InvoiceRepo) ListByContract(contractID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + ` FROM invoices
		WHERE contract_id = $1 ORDER BY period DESC LIMIT $2 OFFSET $3`
	return r.list(query, contractID, limit, offset)
}

// List lista facturas, opcionalmente filtradas por estado.
func (r *InvoiceRepo) List(status string, limit, offset int) ([]*entity.Invoice, error) {
	if status != "" {
		query := `
			SELECT ` + invoiceColumns + ` FROM invoices
			WHERE status = $1 ORDER BY issued_at DESC LIMIT $2 OFFSET $3`
		return r.list(query, status, limit, offset)
	}
	query := `
		SELECT ` + invoiceColumns + ` FROM invoices
		ORDER BY issued_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *InvoiceRepo) list(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.ContractID, &inv.Number, &inv.Period, &inv.Amount,
			&inv.Status, &inv.IssuedAt, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update actualiza estado y fecha de pago de una factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET status = $2, paid_at = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Status, invoice.PaidAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// NextNumber devuelve el siguiente consecutivo de factura para el año dado,
// con formato F-YYYY-NNNNNN. Usa una secuencia por año en la tabla invoice_counters.
func (r *InvoiceRepo) NextNumber(year int) (string, error) {
	query := `
		INSERT INTO invoice_counters (year, counter) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET counter = invoice_counters.counter + 1
		RETURNING counter`
	var counter int
	if err := r.q.QueryRow(context.Background(), query, year).Scan(&counter); err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return fmt.Sprintf("F-%d-%06d", year, counter), nil
}
