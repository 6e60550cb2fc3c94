package dto

import "github.com/shopspring/decimal"

// HouseOccupancyDTO ocupación de una casa.
type HouseOccupancyDTO struct {
	HouseID       string  `json:"house_id"`
	HouseName     string  `json:"house_name"`
	TotalRooms    int     `json:"total_rooms"`
	OccupiedRooms int     `json:"occupied_rooms"`
	OccupancyPct  float64 `json:"occupancy_pct"`
}

// RevenueDTO facturado vs cobrado en un mes.
type RevenueDTO struct {
	Period   string          `json:"period"`
	Invoiced decimal.Decimal `json:"invoiced"`
	Paid     decimal.Decimal `json:"paid"`
}

// StorageValueDTO valor del inventario en bodega de una casa.
type StorageValueDTO struct {
	HouseID   string          `json:"house_id"`
	HouseName string          `json:"house_name"`
	Items     int             `json:"items"`
	Value     decimal.Decimal `json:"value"`
}

// DashboardDTO resumen para la pantalla principal de la consola.
type DashboardDTO struct {
	Occupancy       []HouseOccupancyDTO `json:"occupancy"`
	Revenue         []RevenueDTO        `json:"revenue"`
	PendingInvoices int                 `json:"pending_invoices"`
	StorageValue    []StorageValueDTO   `json:"storage_value"`
}
