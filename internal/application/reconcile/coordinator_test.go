package reconcile

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake Gateway en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway implementa Gateway en memoria, registra cada llamada y permite
// inyectar fallos por método para probar las rutas de compensación.
type fakeGateway struct {
	storages    map[string]*StorageRow // por ID
	assignments map[string]*Assignment // por ID
	rooms       map[string]*RoomInfo   // por ID

	calls  []string         // nombres de método en orden
	failOn map[string]error // método -> error a devolver
	seq    int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		storages:    map[string]*StorageRow{},
		assignments: map[string]*Assignment{},
		rooms:       map[string]*RoomInfo{},
		failOn:      map[string]error{},
	}
}

func (g *fakeGateway) nextID(prefix string) string {
	g.seq++
	return fmt.Sprintf("%s-%d", prefix, g.seq)
}

func (g *fakeGateway) record(method string) error {
	g.calls = append(g.calls, method)
	return g.failOn[method]
}

// storageCalls cuenta cuántas llamadas tocaron la bodega (lookup o mutación).
func (g *fakeGateway) storageCalls() int {
	n := 0
	for _, c := range g.calls {
		switch c {
		case "FindStorage", "CreateStorage", "UpdateStorageQuantity":
			n++
		}
	}
	return n
}

func (g *fakeGateway) FindStorage(_ context.Context, equipmentID, houseID string) (*StorageRow, error) {
	if err := g.record("FindStorage"); err != nil {
		return nil, err
	}
	for _, s := range g.storages {
		if s.EquipmentID == equipmentID && s.HouseID == houseID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (g *fakeGateway) CreateStorage(_ context.Context, row StorageRow) (*StorageRow, error) {
	if err := g.record("CreateStorage"); err != nil {
		return nil, err
	}
	row.ID = g.nextID("sto")
	g.storages[row.ID] = &row
	cp := row
	return &cp, nil
}

func (g *fakeGateway) UpdateStorageQuantity(_ context.Context, storageID string, quantity int) error {
	if err := g.record("UpdateStorageQuantity"); err != nil {
		return err
	}
	s, ok := g.storages[storageID]
	if !ok {
		return &RequestError{Op: "update storage", Message: "no existe"}
	}
	s.Quantity = quantity
	return nil
}

func (g *fakeGateway) GetRoomWithHouse(_ context.Context, roomID string) (*RoomInfo, error) {
	if err := g.record("GetRoomWithHouse"); err != nil {
		return nil, err
	}
	r, ok := g.rooms[roomID]
	if !ok {
		return nil, &RequestError{Op: "get room", Message: "no existe"}
	}
	cp := *r
	return &cp, nil
}

func (g *fakeGateway) GetRoomEquipment(_ context.Context, id string) (*Assignment, error) {
	if err := g.record("GetRoomEquipment"); err != nil {
		return nil, err
	}
	a, ok := g.assignments[id]
	if !ok {
		return nil, &RequestError{Op: "get room-equipment", Message: "no existe"}
	}
	cp := *a
	return &cp, nil
}

func (g *fakeGateway) CreateRoomEquipment(_ context.Context, in Assignment) (*Assignment, error) {
	if err := g.record("CreateRoomEquipment"); err != nil {
		return nil, err
	}
	in.ID = g.nextID("asg")
	g.assignments[in.ID] = &in
	cp := in
	return &cp, nil
}

func (g *fakeGateway) UpdateRoomEquipment(_ context.Context, id string, changes AssignmentChanges) error {
	if err := g.record("UpdateRoomEquipment"); err != nil {
		return err
	}
	a, ok := g.assignments[id]
	if !ok {
		return &RequestError{Op: "update room-equipment", Message: "no existe"}
	}
	if changes.Quantity != nil {
		a.Quantity = *changes.Quantity
	}
	if changes.Price != nil {
		a.Price = *changes.Price
	}
	if changes.Description != nil {
		a.Description = *changes.Description
	}
	return nil
}

func (g *fakeGateway) DeleteRoomEquipment(_ context.Context, id string) error {
	if err := g.record("DeleteRoomEquipment"); err != nil {
		return err
	}
	if _, ok := g.assignments[id]; !ok {
		return &RequestError{Op: "delete room-equipment", Message: "no existe"}
	}
	delete(g.assignments, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	houseA = "house-A"
	roomA  = "room-A"
	equipE = "equip-E"
)

// setupGateway deja una habitación en houseA y, si qty >= 0, una fila de
// bodega para (equipE, houseA) con esa cantidad.
func setupGateway(qty int) *fakeGateway {
	g := newFakeGateway()
	g.rooms[roomA] = &RoomInfo{ID: roomA, HouseID: houseA}
	if qty >= 0 {
		g.storages["sto-E"] = &StorageRow{
			ID: "sto-E", EquipmentID: equipE, HouseID: houseA,
			Quantity: qty, Price: decimal.NewFromInt(100),
		}
	}
	return g
}

func storageQty(t *testing.T, g *fakeGateway, id string) int {
	t.Helper()
	s, ok := g.storages[id]
	require.True(t, ok, "la fila de bodega %s debe existir", id)
	return s.Quantity
}

// fixedDecider respuestas fijas para el flujo de borrado.
type fixedDecider struct {
	deleteOK bool
	returnOK bool
}

func (d fixedDecider) ConfirmDelete(*Assignment) bool          { return d.deleteOK }
func (d fixedDecider) ConfirmReturnToStorage(*Assignment) bool { return d.returnOK }

// ──────────────────────────────────────────────────────────────────────────────
// CreateAssignment
// ──────────────────────────────────────────────────────────────────────────────

// Crear tomando de bodega: Storage 10 - 4 = 6 y queda la asignación con 4.
func TestCreateAssignment_DesdeBodega_DescuentaYCrea(t *testing.T) {
	g := setupGateway(10)
	c := NewCoordinator(g, nil)

	created, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 4,
		Price: decimal.NewFromInt(100), Source: "storage",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, 4, created.Quantity)
	assert.Equal(t, "storage", created.Source)
	assert.Equal(t, 6, storageQty(t, g, "sto-E"), "la bodega debe quedar en 6")
}

// Sin fila de bodega para el par (equipo, casa) → ErrStorageNotFound y cero mutaciones.
func TestCreateAssignment_SinFilaDeBodega_Falla(t *testing.T) {
	g := setupGateway(-1) // sin fila
	c := NewCoordinator(g, nil)

	_, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 2, Source: "storage",
	})
	require.ErrorIs(t, err, ErrStorageNotFound)
	assert.Empty(t, g.assignments, "no debe crearse la asignación")
	assert.NotContains(t, g.calls, "UpdateStorageQuantity")
	assert.NotContains(t, g.calls, "CreateRoomEquipment")
}

// El descuento al crear se clampea en cero, no se rechaza.
func TestCreateAssignment_DescuentoClampeadoEnCero(t *testing.T) {
	g := setupGateway(3)
	c := NewCoordinator(g, nil)

	created, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 5, Source: "storage",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.Quantity)
	assert.Equal(t, 0, storageQty(t, g, "sto-E"), "nunca queda negativa")
}

// Source=custom jamás toca la bodega, exista o no la fila.
func TestCreateAssignment_Custom_NoTocaBodega(t *testing.T) {
	g := setupGateway(10)
	c := NewCoordinator(g, nil)

	created, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 7, Source: "custom",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", created.Source)
	assert.Equal(t, 0, g.storageCalls(), "cero llamadas a bodega")
	assert.Equal(t, 10, storageQty(t, g, "sto-E"))
}

// HouseID explícito evita la resolución vía habitación.
func TestCreateAssignment_ConHouseIDExplicito_NoResuelveHabitacion(t *testing.T) {
	g := setupGateway(10)
	c := NewCoordinator(g, nil)

	_, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 1,
		Source: "storage", HouseID: houseA,
	})
	require.NoError(t, err)
	assert.NotContains(t, g.calls, "GetRoomWithHouse")
}

// Si crear el room-equipment falla después de descontar, se repone la bodega
// y se devuelve el error original.
func TestCreateAssignment_FalloAlCrear_CompensaElDescuento(t *testing.T) {
	g := setupGateway(10)
	boom := &RequestError{Op: "create room-equipment", Message: "500"}
	g.failOn["CreateRoomEquipment"] = boom
	c := NewCoordinator(g, nil)

	_, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 4, Source: "storage",
	})
	require.Error(t, err)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)

	assert.Equal(t, 10, storageQty(t, g, "sto-E"), "el descuento debe deshacerse")
}

// Si además la compensación falla, se reporta la reconciliación parcial con el journal.
func TestCreateAssignment_CompensacionFalla_ReportaParcial(t *testing.T) {
	g := setupGateway(10)
	g.failOn["CreateRoomEquipment"] = &RequestError{Op: "create room-equipment", Message: "500"}

	// El primer UpdateStorageQuantity (descuento) pasa; el segundo (la
	// compensación) falla.
	applied := false
	g2 := &flakyStorageGateway{fakeGateway: g, failSecondUpdate: true, applied: &applied}

	c := NewCoordinator(g2, nil)
	_, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 4, Source: "storage",
	})
	require.Error(t, err)

	var partial *PartialReconciliationError
	require.ErrorAs(t, err, &partial, "debe reportarse PartialReconciliationError")
	assert.NotEmpty(t, partial.Applied, "el journal debe listar lo que quedó aplicado")
	assert.Equal(t, 6, storageQty(t, g, "sto-E"), "la bodega queda descontada sin deshacer")
}

// flakyStorageGateway deja pasar el primer UpdateStorageQuantity y falla los siguientes.
type flakyStorageGateway struct {
	*fakeGateway
	failSecondUpdate bool
	applied          *bool
}

func (g *flakyStorageGateway) UpdateStorageQuantity(ctx context.Context, storageID string, quantity int) error {
	if g.failSecondUpdate && *g.applied {
		return &RequestError{Op: "update storage", Message: "timeout"}
	}
	*g.applied = true
	return g.fakeGateway.UpdateStorageQuantity(ctx, storageID, quantity)
}

func TestCreateAssignment_EntradaInvalida(t *testing.T) {
	c := NewCoordinator(newFakeGateway(), nil)

	_, err := c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 0, Source: "storage",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "cantidad cero")

	_, err = c.CreateAssignment(context.Background(), CreateInput{
		RoomID: roomA, EquipmentID: equipE, Quantity: 1, Source: "otro",
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "source desconocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateAssignment
// ──────────────────────────────────────────────────────────────────────────────

func seedAssignment(g *fakeGateway, qty int, source string) string {
	id := g.nextID("asg")
	g.assignments[id] = &Assignment{
		ID: id, RoomID: roomA, EquipmentID: equipE,
		Quantity: qty, Price: decimal.NewFromInt(100), Source: source,
	}
	return id
}

// Aumentar con UseStorage y bodega suficiente: descuenta la diferencia y actualiza.
func TestUpdateAssignment_AumentoConBodega_DescuentaDiferencia(t *testing.T) {
	g := setupGateway(10)
	id := seedAssignment(g, 4, "storage")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 7, IsQuantityIncrease: true, UseStorage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, g.assignments[id].Quantity)
	assert.Equal(t, 7, storageQty(t, g, "sto-E"), "10 - 3 = 7")
}

// Bodega 2, se piden 5 más → ErrInsufficientStorage y nada cambia.
func TestUpdateAssignment_BodegaInsuficiente_AbortaSinMutar(t *testing.T) {
	g := setupGateway(2)
	id := seedAssignment(g, 4, "storage")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 9, IsQuantityIncrease: true, UseStorage: true,
	})
	require.ErrorIs(t, err, ErrInsufficientStorage)
	assert.Equal(t, 2, storageQty(t, g, "sto-E"), "la bodega queda intacta en 2")
	assert.Equal(t, 4, g.assignments[id].Quantity, "la asignación no cambia")
	assert.NotContains(t, g.calls, "UpdateRoomEquipment")
}

// Disminuir con UpdateStorage: devuelve la diferencia a la bodega.
func TestUpdateAssignment_DisminucionDevuelveABodega(t *testing.T) {
	g := setupGateway(6)
	id := seedAssignment(g, 5, "storage")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 2, IsQuantityDecrease: true, UpdateStorage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, storageQty(t, g, "sto-E"), "6 + 3 = 9")
	assert.Equal(t, 2, g.assignments[id].Quantity)
}

// Disminuir SIN UpdateStorage: la bodega no se toca (la devolución es siempre
// elección explícita del usuario).
func TestUpdateAssignment_DisminucionSinFlag_NoTocaBodega(t *testing.T) {
	g := setupGateway(6)
	id := seedAssignment(g, 5, "storage")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 2, IsQuantityDecrease: true, UpdateStorage: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, storageQty(t, g, "sto-E"))
}

// Sin flags de dirección no hay NINGUNA llamada a bodega, aunque los flags de
// bodega vengan encendidos.
func TestUpdateAssignment_SinCambioDeDireccion_CeroLlamadasABodega(t *testing.T) {
	g := setupGateway(6)
	id := seedAssignment(g, 5, "storage")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 5, UseStorage: true, UpdateStorage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, g.storageCalls(), "idempotente respecto a bodega")
	assert.Contains(t, g.calls, "UpdateRoomEquipment")
}

// Asignaciones custom nunca tocan bodega en update, con cualquier flag.
func TestUpdateAssignment_Custom_NoTocaBodega(t *testing.T) {
	g := setupGateway(6)
	id := seedAssignment(g, 5, "custom")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 9, IsQuantityIncrease: true, UseStorage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, g.storageCalls())
	assert.Equal(t, 9, g.assignments[id].Quantity)
}

// Aumento con UseStorage cuando no existe fila: find-or-create la crea con 0
// y el aumento falla por insuficiencia, dejando la fila vacía creada.
func TestUpdateAssignment_AumentoSinFila_CreaVaciaYFalla(t *testing.T) {
	g := setupGateway(-1)
	id := seedAssignment(g, 4, "storage")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 6, IsQuantityIncrease: true, UseStorage: true,
	})
	require.ErrorIs(t, err, ErrInsufficientStorage)
	require.Len(t, g.storages, 1, "la fila creada por find-or-create queda")
	for _, s := range g.storages {
		assert.Equal(t, 0, s.Quantity)
		assert.True(t, s.Price.Equal(decimal.NewFromInt(100)), "precio original de la asignación")
	}
}

// Flags de aumento y disminución a la vez → entrada inválida.
func TestUpdateAssignment_FlagsContradictorios(t *testing.T) {
	g := setupGateway(6)
	id := seedAssignment(g, 5, "storage")
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 5, IsQuantityIncrease: true, IsQuantityDecrease: true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Si el PUT del room-equipment falla después de ajustar bodega, el ajuste se deshace.
func TestUpdateAssignment_FalloDelPut_CompensaBodega(t *testing.T) {
	g := setupGateway(10)
	id := seedAssignment(g, 4, "storage")
	g.failOn["UpdateRoomEquipment"] = &RequestError{Op: "update room-equipment", Message: "503"}
	c := NewCoordinator(g, nil)

	err := c.UpdateAssignment(context.Background(), id, UpdateInput{
		Quantity: 7, IsQuantityIncrease: true, UseStorage: true,
	})
	require.Error(t, err)
	assert.Equal(t, 10, storageQty(t, g, "sto-E"), "el descuento debe reponerse")
	assert.Equal(t, 4, g.assignments[id].Quantity)
}
