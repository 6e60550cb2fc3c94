package repository

import "github.com/tu-usuario/hostal-pro/internal/domain/entity"

// NotificationRepository puerto de persistencia para el feed de notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// ListByUser pagina el feed (más recientes primero) y devuelve además el total de no leídas.
	ListByUser(userID string, limit, offset int) ([]*entity.Notification, int, error)
	// MarkRead marca una notificación del usuario como leída. ErrNotFound si no existe o no es suya.
	MarkRead(id, userID string) error
	// MarkAllRead marca todas las del usuario como leídas.
	MarkAllRead(userID string) error
}
