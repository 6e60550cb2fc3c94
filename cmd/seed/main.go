// seed crea el esquema de la base de datos y carga datos de demostración:
// un usuario admin, una casa con habitaciones, el catálogo de equipos y
// la bodega inicial.
//
// Uso: go run ./cmd/seed
// Es idempotente: las tablas usan IF NOT EXISTS y los inserts ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/hostal-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/hostal-pro/pkg/config"
	"github.com/tu-usuario/hostal-pro/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS houses (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	address    TEXT NOT NULL,
	manager_id TEXT REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS rooms (
	id           TEXT PRIMARY KEY,
	house_id     TEXT NOT NULL REFERENCES houses(id) ON DELETE CASCADE,
	number       TEXT NOT NULL,
	floor        INT NOT NULL DEFAULT 0,
	capacity     INT NOT NULL DEFAULT 1,
	monthly_rent NUMERIC(14,2) NOT NULL DEFAULT 0,
	status       TEXT NOT NULL DEFAULT 'free',
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL,
	UNIQUE (house_id, number)
);

CREATE TABLE IF NOT EXISTS tenants (
	id         TEXT PRIMARY KEY,
	user_id    TEXT REFERENCES users(id),
	full_name  TEXT NOT NULL,
	document   TEXT NOT NULL UNIQUE,
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS contracts (
	id           TEXT PRIMARY KEY,
	room_id      TEXT NOT NULL REFERENCES rooms(id),
	tenant_id    TEXT NOT NULL REFERENCES tenants(id),
	start_date   TIMESTAMPTZ NOT NULL,
	end_date     TIMESTAMPTZ,
	monthly_rent NUMERIC(14,2) NOT NULL,
	deposit      NUMERIC(14,2) NOT NULL DEFAULT 0,
	status       TEXT NOT NULL DEFAULT 'active',
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	id          TEXT PRIMARY KEY,
	contract_id TEXT NOT NULL REFERENCES contracts(id),
	number      TEXT NOT NULL UNIQUE,
	period      TEXT NOT NULL,
	amount      NUMERIC(14,2) NOT NULL,
	status      TEXT NOT NULL DEFAULT 'pending',
	issued_at   TIMESTAMPTZ NOT NULL,
	paid_at     TIMESTAMPTZ,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL,
	UNIQUE (contract_id, period)
);

CREATE TABLE IF NOT EXISTS invoice_counters (
	year    INT PRIMARY KEY,
	counter INT NOT NULL
);

CREATE TABLE IF NOT EXISTS equipments (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS storages (
	id           TEXT PRIMARY KEY,
	equipment_id TEXT NOT NULL REFERENCES equipments(id),
	house_id     TEXT NOT NULL REFERENCES houses(id) ON DELETE CASCADE,
	quantity     INT NOT NULL DEFAULT 0,
	price        NUMERIC(14,2) NOT NULL DEFAULT 0,
	description  TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL,
	UNIQUE (equipment_id, house_id)
);

CREATE TABLE IF NOT EXISTS room_equipments (
	id           TEXT PRIMARY KEY,
	room_id      TEXT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
	equipment_id TEXT NOT NULL REFERENCES equipments(id),
	quantity     INT NOT NULL DEFAULT 0,
	price        NUMERIC(14,2) NOT NULL DEFAULT 0,
	description  TEXT NOT NULL DEFAULT '',
	source       TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL REFERENCES users(id),
	title      TEXT NOT NULL,
	body       TEXT NOT NULL DEFAULT '',
	read       BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL
);
`

// IDs fijos para que el seed sea re-ejecutable sin duplicar datos.
const (
	adminID   = "00000000-0000-0000-0000-00000000a001"
	managerID = "00000000-0000-0000-0000-00000000a002"
	houseID   = "00000000-0000-0000-0000-00000000b001"
	room101ID = "00000000-0000-0000-0000-00000000c101"
	room102ID = "00000000-0000-0000-0000-00000000c102"
	room201ID = "00000000-0000-0000-0000-00000000c201"
)

var equipmentCatalog = []struct{ id, name string }{
	{"00000000-0000-0000-0000-00000000e001", "Cama sencilla"},
	{"00000000-0000-0000-0000-00000000e002", "Escritorio"},
	{"00000000-0000-0000-0000-00000000e003", "Silla"},
	{"00000000-0000-0000-0000-00000000e004", "Nevera"},
	{"00000000-0000-0000-0000-00000000e005", "Ventilador"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema creado")

	now := time.Now()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	managerHash, err := bcrypt.GenerateFromPassword([]byte("manager12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES
			($1, 'admin@hostalpro.local', $2, 'Administrador', 'admin', 'active', $5, $5),
			($3, 'manager@hostalpro.local', $4, 'Encargado Casa Centro', 'manager', 'active', $5, $5)
		ON CONFLICT (email) DO NOTHING`,
		adminID, string(adminHash), managerID, string(managerHash), now)
	if err != nil {
		log.Fatal().Err(err).Msg("seed usuarios")
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO houses (id, name, address, manager_id, created_at, updated_at)
		VALUES ($1, 'Casa Centro', 'Calle 10 # 5-23, Bogotá', $2, $3, $3)
		ON CONFLICT (id) DO NOTHING`,
		houseID, managerID, now)
	if err != nil {
		log.Fatal().Err(err).Msg("seed casa")
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (id, house_id, number, floor, capacity, monthly_rent, status, created_at, updated_at)
		VALUES
			($1, $4, '101', 1, 1, 500000, 'free', $5, $5),
			($2, $4, '102', 1, 2, 650000, 'free', $5, $5),
			($3, $4, '201', 2, 1, 550000, 'free', $5, $5)
		ON CONFLICT (house_id, number) DO NOTHING`,
		room101ID, room102ID, room201ID, houseID, now)
	if err != nil {
		log.Fatal().Err(err).Msg("seed habitaciones")
	}

	for _, eq := range equipmentCatalog {
		_, err = pool.Exec(ctx, `
			INSERT INTO equipments (id, name, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`,
			eq.id, eq.name, now)
		if err != nil {
			log.Fatal().Err(err).Str("equipment", eq.name).Msg("seed catálogo")
		}
	}

	// Bodega inicial: 10 unidades de cada equipo en Casa Centro
	for i, eq := range equipmentCatalog {
		storageID := fmt.Sprintf("00000000-0000-0000-0000-00000000f%03d", i+1)
		_, err = pool.Exec(ctx, `
			INSERT INTO storages (id, equipment_id, house_id, quantity, price, description, created_at, updated_at)
			VALUES ($1, $2, $3, 10, 120000, '', $4, $4)
			ON CONFLICT (equipment_id, house_id) DO NOTHING`,
			storageID, eq.id, houseID, now)
		if err != nil {
			log.Fatal().Err(err).Str("equipment", eq.name).Msg("seed bodega")
		}
	}

	log.Info().Msg("datos de demostración cargados")
	log.Info().Msg("admin: admin@hostalpro.local / admin12345")
	log.Info().Msg("manager: manager@hostalpro.local / manager12345")
}
