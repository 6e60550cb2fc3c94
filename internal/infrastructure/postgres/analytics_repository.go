package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetOccupancy devuelve habitaciones totales y ocupadas por casa.
// Las habitaciones en mantenimiento cuentan en el total pero no como ocupadas.
func (r *AnalyticsRepo) GetOccupancy(ctx context.Context) ([]repository.OccupancyResult, error) {
	const query = `
	SELECT
	    h.id                                                      AS house_id,
	    h.name                                                    AS house_name,
	    COUNT(r.id)                                               AS total_rooms,
	    COUNT(r.id) FILTER (WHERE r.status = 'occupied')          AS occupied_rooms
	FROM houses h
	LEFT JOIN rooms r ON r.house_id = h.id
	GROUP BY h.id, h.name
	ORDER BY h.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetOccupancy: %w", err)
	}
	defer rows.Close()

	var results []repository.OccupancyResult
	for rows.Next() {
		var row repository.OccupancyResult
		if err := rows.Scan(&row.HouseID, &row.HouseName, &row.TotalRooms, &row.OccupiedRooms); err != nil {
			return nil, fmt.Errorf("analytics.GetOccupancy scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRevenueByPeriod devuelve lo facturado y lo cobrado por mes en el rango dado.
// Las facturas anuladas no cuentan en ninguna de las dos sumas.
func (r *AnalyticsRepo) GetRevenueByPeriod(ctx context.Context, start, end time.Time) ([]repository.RevenueResult, error) {
	const query = `
	SELECT
	    i.period,
	    COALESCE(SUM(i.amount) FILTER (WHERE i.status <> 'cancelled'), 0) AS invoiced,
	    COALESCE(SUM(i.amount) FILTER (WHERE i.status = 'paid'),      0) AS paid
	FROM invoices i
	WHERE i.issued_at BETWEEN $1 AND $2
	GROUP BY i.period
	ORDER BY i.period`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetRevenueByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.RevenueResult
	for rows.Next() {
		var row repository.RevenueResult
		if err := rows.Scan(&row.Period, &row.Invoiced, &row.Paid); err != nil {
			return nil, fmt.Errorf("analytics.GetRevenueByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountPendingInvoices devuelve cuántas facturas siguen pendientes de pago.
func (r *AnalyticsRepo) CountPendingInvoices(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE status = 'pending'`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountPendingInvoices: %w", err)
	}
	return count, nil
}

// GetStorageValue devuelve el valor del inventario en bodega por casa (sum(quantity*price)).
func (r *AnalyticsRepo) GetStorageValue(ctx context.Context) ([]repository.StorageValueResult, error) {
	const query = `
	SELECT
	    h.id                                         AS house_id,
	    h.name                                       AS house_name,
	    COALESCE(SUM(s.quantity), 0)                 AS items,
	    COALESCE(SUM(s.quantity * s.price), 0)       AS value
	FROM houses h
	LEFT JOIN storages s ON s.house_id = h.id
	GROUP BY h.id, h.name
	ORDER BY h.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetStorageValue: %w", err)
	}
	defer rows.Close()

	var results []repository.StorageValueResult
	for rows.Next() {
		var row repository.StorageValueResult
		if err := rows.Scan(&row.HouseID, &row.HouseName, &row.Items, &row.Value); err != nil {
			return nil, fmt.Errorf("analytics.GetStorageValue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
