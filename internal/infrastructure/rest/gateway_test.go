package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/reconcile"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func writeEnvelope(w http.ResponseWriter, status int, env dto.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGateway(NewClient(srv.URL, "test-token", srv.Client()))
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestFindStorage_FiltroConResultado(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/storages", r.URL.Path)
		assert.Equal(t, "eq-1", r.URL.Query().Get("equipment_id"))
		assert.Equal(t, "house-1", r.URL.Query().Get("house_id"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, dto.OK([]dto.StorageResponse{{
			ID: "sto-1", EquipmentID: "eq-1", HouseID: "house-1",
			Quantity: 6, Price: decimal.NewFromInt(100),
		}}))
	})

	row, err := gw.FindStorage(context.Background(), "eq-1", "house-1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "sto-1", row.ID)
	assert.Equal(t, 6, row.Quantity)
}

func TestFindStorage_ListaVacia_DevuelveNil(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, dto.OK([]dto.StorageResponse{}))
	})

	row, err := gw.FindStorage(context.Background(), "eq-1", "house-1")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestDo_SuccessFalse_DevuelveRequestErrorConMensaje(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, dto.Fail("CONFLICT", "la habitación está ocupada"))
	})

	_, err := gw.FindStorage(context.Background(), "eq-1", "house-1")
	require.Error(t, err)

	var reqErr *reconcile.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "find storage", reqErr.Op)
	assert.Contains(t, reqErr.Message, "ocupada")
}

func TestDo_RespuestaNoJSON_DevuelveRequestError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := gw.FindStorage(context.Background(), "eq-1", "house-1")
	var reqErr *reconcile.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Contains(t, reqErr.Message, "502")
}

func TestCreateRoomEquipment_EnviaBodyYDecodifica(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/room-equipments", r.URL.Path)

		var body dto.CreateRoomEquipmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "room-1", body.RoomID)
		assert.Equal(t, "storage", body.Source)

		writeEnvelope(w, http.StatusCreated, dto.OK(dto.RoomEquipmentResponse{
			ID: "re-1", RoomID: body.RoomID, EquipmentID: body.EquipmentID,
			Quantity: body.Quantity, Source: body.Source,
		}))
	})

	created, err := gw.CreateRoomEquipment(context.Background(), reconcile.Assignment{
		RoomID: "room-1", EquipmentID: "eq-1", Quantity: 3, Source: "storage",
	})
	require.NoError(t, err)
	assert.Equal(t, "re-1", created.ID)
	assert.Equal(t, 3, created.Quantity)
}

func TestUpdateStorageQuantity_PUTParcial(t *testing.T) {
	var got dto.UpdateStorageRequest
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/storages/sto-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeEnvelope(w, http.StatusOK, dto.OK(nil))
	})

	require.NoError(t, gw.UpdateStorageQuantity(context.Background(), "sto-1", 9))
	require.NotNil(t, got.Quantity)
	assert.Equal(t, 9, *got.Quantity)
	assert.Nil(t, got.Price, "el PUT parcial no debe tocar el precio")
}

func TestGetRoomWithHouse_IncludeHouse(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rooms/room-1", r.URL.Path)
		assert.Equal(t, "house", r.URL.Query().Get("include"))
		writeEnvelope(w, http.StatusOK, dto.OK(dto.RoomResponse{
			ID: "room-1", HouseID: "house-1",
			House: &dto.HouseResponse{ID: "house-1", Name: "Casa Centro"},
		}))
	})

	info, err := gw.GetRoomWithHouse(context.Background(), "room-1")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "house-1", info.HouseID)
}

func TestDeleteRoomEquipment_ErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrar antes de usar fuerza un error de transporte

	gw := NewGateway(NewClient(srv.URL, "", nil))
	err := gw.DeleteRoomEquipment(context.Background(), "re-1")

	var reqErr *reconcile.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "delete room-equipment", reqErr.Op)
	assert.Error(t, reqErr.Unwrap())
}
