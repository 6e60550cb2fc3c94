package entity

import "time"

// Notification es una entrada del feed de notificaciones de un usuario.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
