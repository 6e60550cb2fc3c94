package entity

import "time"

// Equipment representa un ítem del catálogo de equipamiento (cama, nevera, escritorio...).
// Inmutable desde el punto de vista del flujo de inventario: solo id y nombre importan ahí.
type Equipment struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
