package entity

import "time"

// House representa una casa/hostal administrada en la plataforma.
// Cada casa tiene su propia bodega de equipos (filas Storage por equipo).
type House struct {
	ID        string
	Name      string
	Address   string
	ManagerID string // usuario con rol manager responsable de la casa
	CreatedAt time.Time
	UpdatedAt time.Time
}
