package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
	"github.com/tu-usuario/hostal-pro/pkg/search"
)

// HouseUseCase aplica reglas de negocio para casas.
type HouseUseCase struct {
	repo repository.HouseRepository
}

// NewHouseUseCase construye el caso de uso con el puerto de persistencia.
func NewHouseUseCase(repo repository.HouseRepository) *HouseUseCase {
	return &HouseUseCase{repo: repo}
}

// Create crea una casa nueva.
func (uc *HouseUseCase) Create(in dto.CreateHouseRequest) (*dto.HouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	house := &entity.House{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		ManagerID: in.ManagerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(house); err != nil {
		return nil, err
	}
	return houseToResponse(house), nil
}

// GetByID obtiene una casa por ID (nil si no existe).
func (uc *HouseUseCase) GetByID(id string) (*dto.HouseResponse, error) {
	house, err := uc.repo.GetByID(id)
	if err != nil || house == nil {
		return nil, err
	}
	return houseToResponse(house), nil
}

// List lista casas con paginación. q filtra por nombre/dirección sin distinguir acentos.
func (uc *HouseUseCase) List(q string, limit, offset int) (*dto.HouseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HouseResponse, 0, len(list))
	for _, h := range list {
		if q != "" && !search.Matches(h.Name+" "+h.Address, q) {
			continue
		}
		items = append(items, *houseToResponse(h))
	}
	return &dto.HouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita una casa existente.
func (uc *HouseUseCase) Update(id string, in dto.UpdateHouseRequest) (*dto.HouseResponse, error) {
	house, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if house == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		house.Name = in.Name
	}
	if in.Address != "" {
		house.Address = in.Address
	}
	if in.ManagerID != "" {
		house.ManagerID = in.ManagerID
	}
	house.UpdatedAt = time.Now()
	if err := uc.repo.Update(house); err != nil {
		return nil, err
	}
	return houseToResponse(house), nil
}

// Delete elimina una casa.
func (uc *HouseUseCase) Delete(id string) error {
	house, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if house == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func houseToResponse(h *entity.House) *dto.HouseResponse {
	return &dto.HouseResponse{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		ManagerID: h.ManagerID,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
