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

// TenantUseCase aplica reglas de negocio para inquilinos.
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// Create crea un inquilino. Devuelve ErrDuplicate si el documento ya existe.
func (uc *TenantUseCase) Create(in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if in.FullName == "" || in.Document == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByDocument(in.Document)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		FullName:  in.FullName,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(tenant); err != nil {
		return nil, err
	}
	return tenantToResponse(tenant), nil
}

// GetByID obtiene un inquilino por ID (nil si no existe).
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil || tenant == nil {
		return nil, err
	}
	return tenantToResponse(tenant), nil
}

// List lista inquilinos con paginación. q filtra por nombre/documento,
// insensible a acentos ("Peñalosa" aparece buscando "penalosa").
func (uc *TenantUseCase) List(q string, limit, offset int) (*dto.TenantListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		if q != "" && !search.Matches(t.FullName+" "+t.Document, q) {
			continue
		}
		items = append(items, *tenantToResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita un inquilino existente.
func (uc *TenantUseCase) Update(id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != "" {
		tenant.FullName = in.FullName
	}
	if in.Email != "" {
		tenant.Email = in.Email
	}
	if in.Phone != "" {
		tenant.Phone = in.Phone
	}
	tenant.UpdatedAt = time.Now()
	if err := uc.repo.Update(tenant); err != nil {
		return nil, err
	}
	return tenantToResponse(tenant), nil
}

// Delete elimina un inquilino.
func (uc *TenantUseCase) Delete(id string) error {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func tenantToResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		FullName:  t.FullName,
		Document:  t.Document,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
