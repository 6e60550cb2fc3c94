package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

// RoomUseCase aplica reglas de negocio para habitaciones.
type RoomUseCase struct {
	repo      repository.RoomRepository
	houseRepo repository.HouseRepository
}

// NewRoomUseCase construye el caso de uso.
func NewRoomUseCase(repo repository.RoomRepository, houseRepo repository.HouseRepository) *RoomUseCase {
	return &RoomUseCase{repo: repo, houseRepo: houseRepo}
}

// Create crea una habitación; la casa debe existir.
func (uc *RoomUseCase) Create(in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if in.HouseID == "" || in.Number == "" {
		return nil, domain.ErrInvalidInput
	}
	house, err := uc.houseRepo.GetByID(in.HouseID)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	room := &entity.Room{
		ID:          uuid.New().String(),
		HouseID:     in.HouseID,
		Number:      in.Number,
		Floor:       in.Floor,
		Capacity:    in.Capacity,
		MonthlyRent: in.MonthlyRent,
		Status:      entity.RoomStatusFree,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(room); err != nil {
		return nil, err
	}
	return roomToResponse(room), nil
}

// GetByID obtiene una habitación; con includeHouse embebe la casa
// (lo usa la consola para resolver house_id en el flujo de inventario).
func (uc *RoomUseCase) GetByID(id string, includeHouse bool) (*dto.RoomResponse, error) {
	room, err := uc.repo.GetByID(id, includeHouse)
	if err != nil || room == nil {
		return nil, err
	}
	return roomToResponse(room), nil
}

// ListByHouse lista habitaciones de una casa con paginación.
func (uc *RoomUseCase) ListByHouse(houseID string, limit, offset int) (*dto.RoomListResponse, error) {
	list, err := uc.repo.ListByHouse(houseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoomResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *roomToResponse(r))
	}
	return &dto.RoomListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita una habitación existente.
func (uc *RoomUseCase) Update(id string, in dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := uc.repo.GetByID(id, false)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	if in.Number != "" {
		room.Number = in.Number
	}
	if in.Floor != 0 {
		room.Floor = in.Floor
	}
	if in.Capacity != 0 {
		room.Capacity = in.Capacity
	}
	if !in.MonthlyRent.IsZero() {
		room.MonthlyRent = in.MonthlyRent
	}
	if in.Status != "" {
		switch in.Status {
		case entity.RoomStatusFree, entity.RoomStatusOccupied, entity.RoomStatusMaintenance:
			room.Status = in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	room.UpdatedAt = time.Now()
	if err := uc.repo.Update(room); err != nil {
		return nil, err
	}
	return roomToResponse(room), nil
}

// Delete elimina una habitación libre; una ocupada no se puede borrar.
func (uc *RoomUseCase) Delete(id string) error {
	room, err := uc.repo.GetByID(id, false)
	if err != nil {
		return err
	}
	if room == nil {
		return domain.ErrNotFound
	}
	if room.Status == entity.RoomStatusOccupied {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func roomToResponse(r *entity.Room) *dto.RoomResponse {
	resp := &dto.RoomResponse{
		ID:          r.ID,
		HouseID:     r.HouseID,
		Number:      r.Number,
		Floor:       r.Floor,
		Capacity:    r.Capacity,
		MonthlyRent: r.MonthlyRent,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.House != nil {
		resp.House = houseToResponse(r.House)
	}
	return resp
}
