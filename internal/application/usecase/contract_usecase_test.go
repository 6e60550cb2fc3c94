package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeContractStore struct {
	contracts map[string]*entity.Contract
}

func (f *fakeContractStore) Create(c *entity.Contract) error {
	f.contracts[c.ID] = c
	return nil
}

func (f *fakeContractStore) GetByID(id string) (*entity.Contract, error) {
	return f.contracts[id], nil
}

func (f *fakeContractStore) GetActiveByRoom(roomID string) (*entity.Contract, error) {
	for _, c := range f.contracts {
		if c.RoomID == roomID && c.Status == entity.ContractStatusActive {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeContractStore) ListByTenant(tenantID string, limit, offset int) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range f.contracts {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContractStore) List(limit, offset int) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range f.contracts {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContractStore) Update(c *entity.Contract) error {
	f.contracts[c.ID] = c
	return nil
}

type fakeRoomStore struct {
	rooms map[string]*entity.Room
}

func (f *fakeRoomStore) Create(r *entity.Room) error {
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomStore) GetByID(id string, includeHouse bool) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomStore) ListByHouse(houseID string, limit, offset int) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		if r.HouseID == houseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomStore) Update(r *entity.Room) error {
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomStore) UpdateStatus(id, status string) error {
	r, ok := f.rooms[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRoomStore) Delete(id string) error {
	delete(f.rooms, id)
	return nil
}

type fakeTenantStore struct {
	tenants map[string]*entity.Tenant
}

func (f *fakeTenantStore) Create(t *entity.Tenant) error             { f.tenants[t.ID] = t; return nil }
func (f *fakeTenantStore) GetByID(id string) (*entity.Tenant, error) { return f.tenants[id], nil }
func (f *fakeTenantStore) GetByDocument(doc string) (*entity.Tenant, error) {
	for _, t := range f.tenants {
		if t.Document == doc {
			return t, nil
		}
	}
	return nil, nil
}
func (f *fakeTenantStore) List(limit, offset int) ([]*entity.Tenant, error) { return nil, nil }
func (f *fakeTenantStore) Update(t *entity.Tenant) error                    { f.tenants[t.ID] = t; return nil }
func (f *fakeTenantStore) Delete(id string) error                           { delete(f.tenants, id); return nil }

// fakeTxRunner ejecuta fn sobre los mismos stores, sin transacción real.
type fakeTxRunner struct {
	contracts *fakeContractStore
	rooms     *fakeRoomStore
	calls     int
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	f.calls++
	return fn(repository.TxRepos{Contracts: f.contracts, Rooms: f.rooms})
}

func setupContracts() (*ContractUseCase, *fakeContractStore, *fakeRoomStore, *fakeTxRunner) {
	contracts := &fakeContractStore{contracts: map[string]*entity.Contract{}}
	rooms := &fakeRoomStore{rooms: map[string]*entity.Room{
		"room-1": {
			ID: "room-1", HouseID: "house-1", Number: "101",
			MonthlyRent: decimal.NewFromInt(500000),
			Status:      entity.RoomStatusFree,
		},
	}}
	tenants := &fakeTenantStore{tenants: map[string]*entity.Tenant{
		"ten-1": {ID: "ten-1", FullName: "Ana Peñalosa", Document: "CC-1001"},
	}}
	tx := &fakeTxRunner{contracts: contracts, rooms: rooms}
	return NewContractUseCase(contracts, rooms, tenants, tx), contracts, rooms, tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Open
// ──────────────────────────────────────────────────────────────────────────────

func TestContractOpen_CreaContratoYOcupaHabitacion(t *testing.T) {
	uc, contracts, rooms, tx := setupContracts()

	out, err := uc.Open(context.Background(), dto.CreateContractRequest{
		RoomID:    "room-1",
		TenantID:  "ten-1",
		StartDate: time.Now(),
		Deposit:   decimal.NewFromInt(250000),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, entity.ContractStatusActive, out.Status)
	assert.True(t, out.MonthlyRent.Equal(decimal.NewFromInt(500000)),
		"sin rent explícita debe heredar la de la habitación")
	assert.Equal(t, entity.RoomStatusOccupied, rooms.rooms["room-1"].Status,
		"la habitación debe quedar ocupada")
	assert.Len(t, contracts.contracts, 1)
	assert.Equal(t, 1, tx.calls, "alta de contrato y cambio de estado van en una transacción")
}

func TestContractOpen_HabitacionOcupada(t *testing.T) {
	uc, _, rooms, _ := setupContracts()
	rooms.rooms["room-1"].Status = entity.RoomStatusOccupied

	_, err := uc.Open(context.Background(), dto.CreateContractRequest{
		RoomID: "room-1", TenantID: "ten-1", StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrRoomOccupied)
}

func TestContractOpen_ContratoActivoExistente(t *testing.T) {
	uc, contracts, _, _ := setupContracts()
	contracts.contracts["ct-0"] = &entity.Contract{
		ID: "ct-0", RoomID: "room-1", TenantID: "ten-9",
		Status: entity.ContractStatusActive,
	}

	_, err := uc.Open(context.Background(), dto.CreateContractRequest{
		RoomID: "room-1", TenantID: "ten-1", StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrRoomOccupied,
		"habitación con contrato activo no admite otro aunque figure libre")
}

func TestContractOpen_InquilinoInexistente(t *testing.T) {
	uc, _, _, _ := setupContracts()

	_, err := uc.Open(context.Background(), dto.CreateContractRequest{
		RoomID: "room-1", TenantID: "ten-999", StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractOpen_DatosInvalidos(t *testing.T) {
	uc, _, _, _ := setupContracts()

	_, err := uc.Open(context.Background(), dto.CreateContractRequest{RoomID: "room-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Finish
// ──────────────────────────────────────────────────────────────────────────────

func abrirContrato(t *testing.T, uc *ContractUseCase) string {
	t.Helper()
	out, err := uc.Open(context.Background(), dto.CreateContractRequest{
		RoomID:    "room-1",
		TenantID:  "ten-1",
		StartDate: time.Now().Add(-30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return out.ID
}

func TestContractFinish_CierraYLiberaHabitacion(t *testing.T) {
	uc, _, rooms, _ := setupContracts()
	id := abrirContrato(t, uc)

	out, err := uc.Finish(context.Background(), id, dto.FinishContractRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.ContractStatusFinished, out.Status)
	require.NotNil(t, out.EndDate, "sin end_date explícita debe usar la fecha actual")
	assert.Equal(t, entity.RoomStatusFree, rooms.rooms["room-1"].Status,
		"la habitación debe quedar libre al cerrar el contrato")
}

func TestContractFinish_Cancelado(t *testing.T) {
	uc, _, _, _ := setupContracts()
	id := abrirContrato(t, uc)

	out, err := uc.Finish(context.Background(), id, dto.FinishContractRequest{Cancelled: true})
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusCancelled, out.Status)
}

func TestContractFinish_NoActivo(t *testing.T) {
	uc, _, _, _ := setupContracts()
	id := abrirContrato(t, uc)

	_, err := uc.Finish(context.Background(), id, dto.FinishContractRequest{})
	require.NoError(t, err)

	_, err = uc.Finish(context.Background(), id, dto.FinishContractRequest{})
	assert.ErrorIs(t, err, domain.ErrContractNotActive, "un contrato cerrado no se cierra dos veces")
}

func TestContractFinish_FechaAnteriorAlInicio(t *testing.T) {
	uc, _, _, _ := setupContracts()
	id := abrirContrato(t, uc)

	_, err := uc.Finish(context.Background(), id, dto.FinishContractRequest{
		EndDate: time.Now().Add(-60 * 24 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
