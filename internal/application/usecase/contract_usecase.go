package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

// ContractUseCase abre y cierra contratos de arriendo. El alta del contrato y
// el cambio de estado de la habitación van en la misma transacción.
type ContractUseCase struct {
	contractRepo repository.ContractRepository
	roomRepo     repository.RoomRepository
	tenantRepo   repository.TenantRepository
	txRunner     repository.TxRunner
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	contractRepo repository.ContractRepository,
	roomRepo repository.RoomRepository,
	tenantRepo repository.TenantRepository,
	txRunner repository.TxRunner,
) *ContractUseCase {
	return &ContractUseCase{
		contractRepo: contractRepo,
		roomRepo:     roomRepo,
		tenantRepo:   tenantRepo,
		txRunner:     txRunner,
	}
}

// Open abre un contrato sobre una habitación libre y la marca ocupada.
func (uc *ContractUseCase) Open(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.RoomID == "" || in.TenantID == "" || in.StartDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.MonthlyRent.IsNegative() || in.Deposit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	room, err := uc.roomRepo.GetByID(in.RoomID, false)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if room.Status != entity.RoomStatusFree {
		return nil, domain.ErrRoomOccupied
	}
	tenant, err := uc.tenantRepo.GetByID(in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	active, err := uc.contractRepo.GetActiveByRoom(in.RoomID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrRoomOccupied
	}

	rent := in.MonthlyRent
	if rent.IsZero() {
		rent = room.MonthlyRent
	}
	now := time.Now()
	contract := &entity.Contract{
		ID:          uuid.New().String(),
		RoomID:      in.RoomID,
		TenantID:    in.TenantID,
		StartDate:   in.StartDate,
		MonthlyRent: rent,
		Deposit:     in.Deposit,
		Status:      entity.ContractStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.RunInTx(ctx, func(repos repository.TxRepos) error {
		if err := repos.Contracts.Create(contract); err != nil {
			return err
		}
		return repos.Rooms.UpdateStatus(in.RoomID, entity.RoomStatusOccupied)
	})
	if err != nil {
		return nil, err
	}
	return contractToResponse(contract), nil
}

// Finish cierra un contrato activo y libera la habitación. Con cancelled=true
// queda como cancelado anticipadamente en lugar de finalizado.
func (uc *ContractUseCase) Finish(ctx context.Context, id string, in dto.FinishContractRequest) (*dto.ContractResponse, error) {
	contract, err := uc.contractRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.Status != entity.ContractStatusActive {
		return nil, domain.ErrContractNotActive
	}

	endDate := in.EndDate
	if endDate.IsZero() {
		endDate = time.Now()
	}
	if endDate.Before(contract.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	contract.EndDate = &endDate
	contract.Status = entity.ContractStatusFinished
	if in.Cancelled {
		contract.Status = entity.ContractStatusCancelled
	}
	contract.UpdatedAt = time.Now()

	err = uc.txRunner.RunInTx(ctx, func(repos repository.TxRepos) error {
		if err := repos.Contracts.Update(contract); err != nil {
			return err
		}
		return repos.Rooms.UpdateStatus(contract.RoomID, entity.RoomStatusFree)
	})
	if err != nil {
		return nil, err
	}
	return contractToResponse(contract), nil
}

// GetByID obtiene un contrato por ID (nil si no existe).
func (uc *ContractUseCase) GetByID(id string) (*dto.ContractResponse, error) {
	contract, err := uc.contractRepo.GetByID(id)
	if err != nil || contract == nil {
		return nil, err
	}
	return contractToResponse(contract), nil
}

// List lista contratos con paginación.
func (uc *ContractUseCase) List(limit, offset int) (*dto.ContractListResponse, error) {
	list, err := uc.contractRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return contractListResponse(list, limit, offset), nil
}

// ListByTenant lista los contratos de un inquilino (la vista "mis contratos").
func (uc *ContractUseCase) ListByTenant(tenantID string, limit, offset int) (*dto.ContractListResponse, error) {
	list, err := uc.contractRepo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	return contractListResponse(list, limit, offset), nil
}

func contractListResponse(list []*entity.Contract, limit, offset int) *dto.ContractListResponse {
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *contractToResponse(c))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func contractToResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:          c.ID,
		RoomID:      c.RoomID,
		TenantID:    c.TenantID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		MonthlyRent: c.MonthlyRent,
		Deposit:     c.Deposit,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
