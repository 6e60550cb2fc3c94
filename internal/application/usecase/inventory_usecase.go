package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

// InventoryUseCase expone el lado servidor del inventario: catálogo de equipos,
// libro de bodega por casa y asignaciones a habitaciones. Son los endpoints
// CRUD planos que consume el coordinador de la consola; la reconciliación
// entre bodega y asignaciones la secuencia el cliente, no el servidor.
type InventoryUseCase struct {
	equipmentRepo repository.EquipmentRepository
	storageRepo   repository.StorageRepository
	roomEquipRepo repository.RoomEquipmentRepository
	houseRepo     repository.HouseRepository
	roomRepo      repository.RoomRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	equipmentRepo repository.EquipmentRepository,
	storageRepo repository.StorageRepository,
	roomEquipRepo repository.RoomEquipmentRepository,
	houseRepo repository.HouseRepository,
	roomRepo repository.RoomRepository,
) *InventoryUseCase {
	return &InventoryUseCase{
		equipmentRepo: equipmentRepo,
		storageRepo:   storageRepo,
		roomEquipRepo: roomEquipRepo,
		houseRepo:     houseRepo,
		roomRepo:      roomRepo,
	}
}

// ── Catálogo de equipos ───────────────────────────────────────────────────────

// CreateEquipment alta en el catálogo.
func (uc *InventoryUseCase) CreateEquipment(in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	eq := &entity.Equipment{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.equipmentRepo.Create(eq); err != nil {
		return nil, err
	}
	return equipmentToResponse(eq), nil
}

// ListEquipment lista el catálogo con paginación.
func (uc *InventoryUseCase) ListEquipment(limit, offset int) ([]dto.EquipmentResponse, error) {
	list, err := uc.equipmentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, eq := range list {
		items = append(items, *equipmentToResponse(eq))
	}
	return items, nil
}

// ── Bodega ────────────────────────────────────────────────────────────────────

// CreateStorage crea una fila de bodega. Devuelve ErrDuplicate si ya existe
// fila para el par (equipment, house): el libro asume a lo sumo una activa.
func (uc *InventoryUseCase) CreateStorage(in dto.CreateStorageRequest) (*dto.StorageResponse, error) {
	if in.EquipmentID == "" || in.HouseID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.storageRepo.FindByEquipmentAndHouse(in.EquipmentID, in.HouseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	s := &entity.Storage{
		ID:          uuid.New().String(),
		EquipmentID: in.EquipmentID,
		HouseID:     in.HouseID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.storageRepo.Create(s); err != nil {
		return nil, err
	}
	return storageToResponse(s), nil
}

// FindStorage busca la fila para (equipment, house); nil si no existe.
func (uc *InventoryUseCase) FindStorage(equipmentID, houseID string) (*dto.StorageResponse, error) {
	s, err := uc.storageRepo.FindByEquipmentAndHouse(equipmentID, houseID)
	if err != nil || s == nil {
		return nil, err
	}
	return storageToResponse(s), nil
}

// ListStorageByHouse lista el libro de bodega de una casa.
func (uc *InventoryUseCase) ListStorageByHouse(houseID string, limit, offset int) ([]dto.StorageResponse, error) {
	list, err := uc.storageRepo.ListByHouse(houseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StorageResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *storageToResponse(s))
	}
	return items, nil
}

// UpdateStorage PUT parcial: solo los campos no nil. Cantidad negativa es inválida.
func (uc *InventoryUseCase) UpdateStorage(id string, in dto.UpdateStorageRequest) (*dto.StorageResponse, error) {
	s, err := uc.storageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		s.Quantity = *in.Quantity
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	s.UpdatedAt = time.Now()
	if err := uc.storageRepo.Update(s); err != nil {
		return nil, err
	}
	return storageToResponse(s), nil
}

// ── Asignaciones a habitaciones ───────────────────────────────────────────────

// CreateRoomEquipment crea una asignación (el coordinador ya descontó bodega si aplicaba).
func (uc *InventoryUseCase) CreateRoomEquipment(in dto.CreateRoomEquipmentRequest) (*dto.RoomEquipmentResponse, error) {
	if in.RoomID == "" || in.EquipmentID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Source != entity.SourceStorage && in.Source != entity.SourceCustom {
		return nil, domain.ErrInvalidInput
	}
	room, err := uc.roomRepo.GetByID(in.RoomID, false)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	re := &entity.RoomEquipment{
		ID:          uuid.New().String(),
		RoomID:      in.RoomID,
		EquipmentID: in.EquipmentID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Description: in.Description,
		Source:      in.Source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roomEquipRepo.Create(re); err != nil {
		return nil, err
	}
	return roomEquipmentToResponse(re), nil
}

// GetRoomEquipment obtiene una asignación con su equipo (nil si no existe).
func (uc *InventoryUseCase) GetRoomEquipment(id string) (*dto.RoomEquipmentResponse, error) {
	re, err := uc.roomEquipRepo.GetByID(id)
	if err != nil || re == nil {
		return nil, err
	}
	return roomEquipmentToResponse(re), nil
}

// ListRoomEquipment lista las asignaciones de una habitación.
func (uc *InventoryUseCase) ListRoomEquipment(roomID string, limit, offset int) ([]dto.RoomEquipmentResponse, error) {
	list, err := uc.roomEquipRepo.ListByRoom(roomID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoomEquipmentResponse, 0, len(list))
	for _, re := range list {
		items = append(items, *roomEquipmentToResponse(re))
	}
	return items, nil
}

// UpdateRoomEquipment PUT parcial de una asignación.
func (uc *InventoryUseCase) UpdateRoomEquipment(id string, in dto.UpdateRoomEquipmentRequest) (*dto.RoomEquipmentResponse, error) {
	re, err := uc.roomEquipRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if re == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		re.Quantity = *in.Quantity
	}
	if in.Price != nil {
		re.Price = *in.Price
	}
	if in.Description != nil {
		re.Description = *in.Description
	}
	re.UpdatedAt = time.Now()
	if err := uc.roomEquipRepo.Update(re); err != nil {
		return nil, err
	}
	return roomEquipmentToResponse(re), nil
}

// DeleteRoomEquipment borra una asignación (la devolución a bodega, si el
// usuario la eligió, ya la hizo el coordinador).
func (uc *InventoryUseCase) DeleteRoomEquipment(id string) error {
	re, err := uc.roomEquipRepo.GetByID(id)
	if err != nil {
		return err
	}
	if re == nil {
		return domain.ErrNotFound
	}
	return uc.roomEquipRepo.Delete(id)
}

// ── Conversión ────────────────────────────────────────────────────────────────

func equipmentToResponse(eq *entity.Equipment) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{ID: eq.ID, Name: eq.Name, CreatedAt: eq.CreatedAt}
}

func storageToResponse(s *entity.Storage) *dto.StorageResponse {
	return &dto.StorageResponse{
		ID:          s.ID,
		EquipmentID: s.EquipmentID,
		HouseID:     s.HouseID,
		Quantity:    s.Quantity,
		Price:       s.Price,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func roomEquipmentToResponse(re *entity.RoomEquipment) *dto.RoomEquipmentResponse {
	resp := &dto.RoomEquipmentResponse{
		ID:          re.ID,
		RoomID:      re.RoomID,
		EquipmentID: re.EquipmentID,
		Quantity:    re.Quantity,
		Price:       re.Price,
		Description: re.Description,
		Source:      re.Source,
		CreatedAt:   re.CreatedAt,
		UpdatedAt:   re.UpdatedAt,
	}
	if re.Equipment != nil {
		resp.Equipment = equipmentToResponse(re.Equipment)
	}
	return resp
}
