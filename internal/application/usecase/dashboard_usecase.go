package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

// DashboardUseCase arma el resumen de la pantalla principal: ocupación por
// casa, ingresos facturados vs cobrados, facturas pendientes y valor de bodega.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboard consulta las métricas de los últimos months meses (mínimo 1).
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, months int) (*dto.DashboardDTO, error) {
	if months <= 0 {
		months = 6
	}

	occupancy, err := uc.analyticsRepo.GetOccupancy(ctx)
	if err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.AddDate(0, -months, 0)
	revenue, err := uc.analyticsRepo.GetRevenueByPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	pending, err := uc.analyticsRepo.CountPendingInvoices(ctx)
	if err != nil {
		return nil, err
	}

	storageValue, err := uc.analyticsRepo.GetStorageValue(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardDTO{PendingInvoices: pending}
	for _, o := range occupancy {
		pct := 0.0
		if o.TotalRooms > 0 {
			pct = float64(o.OccupiedRooms) / float64(o.TotalRooms) * 100
		}
		out.Occupancy = append(out.Occupancy, dto.HouseOccupancyDTO{
			HouseID:       o.HouseID,
			HouseName:     o.HouseName,
			TotalRooms:    o.TotalRooms,
			OccupiedRooms: o.OccupiedRooms,
			OccupancyPct:  pct,
		})
	}
	for _, r := range revenue {
		out.Revenue = append(out.Revenue, dto.RevenueDTO{
			Period:   r.Period,
			Invoiced: r.Invoiced,
			Paid:     r.Paid,
		})
	}
	for _, s := range storageValue {
		out.StorageValue = append(out.StorageValue, dto.StorageValueDTO{
			HouseID:   s.HouseID,
			HouseName: s.HouseName,
			Items:     s.Items,
			Value:     s.Value,
		})
	}
	return out, nil
}
