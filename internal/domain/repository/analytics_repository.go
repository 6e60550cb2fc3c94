package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OccupancyResult resultado crudo de la consulta de ocupación por casa.
type OccupancyResult struct {
	HouseID       string
	HouseName     string
	TotalRooms    int
	OccupiedRooms int
}

// RevenueResult ingresos facturados vs cobrados en un período.
type RevenueResult struct {
	Period   string // YYYY-MM
	Invoiced decimal.Decimal
	Paid     decimal.Decimal
}

// StorageValueResult valor del inventario en bodega de una casa (sum(quantity*price)).
type StorageValueResult struct {
	HouseID   string
	HouseName string
	Items     int
	Value     decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetOccupancy devuelve habitaciones totales y ocupadas por casa.
	GetOccupancy(ctx context.Context) ([]OccupancyResult, error)

	// GetRevenueByPeriod devuelve lo facturado y lo cobrado por mes en el rango dado.
	GetRevenueByPeriod(ctx context.Context, start, end time.Time) ([]RevenueResult, error)

	// CountPendingInvoices devuelve cuántas facturas siguen pendientes de pago.
	CountPendingInvoices(ctx context.Context) (int, error)

	// GetStorageValue devuelve el valor del inventario en bodega por casa.
	GetStorageValue(ctx context.Context) ([]StorageValueResult, error)
}
