package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/domain"
	"github.com/tu-usuario/hostal-pro/internal/domain/entity"
	"github.com/tu-usuario/hostal-pro/internal/domain/repository"
)

// NotificationUseCase lado servidor del feed de notificaciones.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Notify crea una notificación para un usuario (la usan otros casos de uso:
// factura generada, contrato por vencer...).
func (uc *NotificationUseCase) Notify(userID, title, body string) error {
	if userID == "" || title == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	})
}

// Feed devuelve la página pedida del feed del usuario junto al contador de no leídas.
func (uc *NotificationUseCase) Feed(userID string, limit, offset int) (*dto.NotificationFeedResponse, error) {
	list, unread, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationFeedResponse{
		Items:       items,
		UnreadCount: unread,
		Page:        dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarkRead marca una notificación del usuario como leída.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.repo.MarkRead(id, userID)
}

// MarkAllRead marca todas las del usuario como leídas.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.repo.MarkAllRead(userID)
}
