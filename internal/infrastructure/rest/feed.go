package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tu-usuario/hostal-pro/internal/application/dto"
	"github.com/tu-usuario/hostal-pro/internal/application/notifier"
)

var _ notifier.Feed = (*NotificationFeed)(nil)

// NotificationFeed implementa notifier.Feed contra el API de notificaciones.
type NotificationFeed struct {
	c *Client
}

// NewNotificationFeed construye el feed sobre un cliente autenticado.
func NewNotificationFeed(c *Client) *NotificationFeed {
	return &NotificationFeed{c: c}
}

// Fetch trae la página pedida del feed y el total de no leídas.
func (f *NotificationFeed) Fetch(ctx context.Context, limit, offset int) ([]notifier.Notification, int, error) {
	path := fmt.Sprintf("/api/v1/notifications?limit=%d&offset=%d", limit, offset)
	var feed dto.NotificationFeedResponse
	if err := f.c.do(ctx, "fetch notifications", "GET", path, nil, &feed); err != nil {
		return nil, 0, err
	}
	items := make([]notifier.Notification, 0, len(feed.Items))
	for _, n := range feed.Items {
		items = append(items, notifier.Notification{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return items, feed.UnreadCount, nil
}

// MarkRead marca una notificación como leída.
func (f *NotificationFeed) MarkRead(ctx context.Context, id string) error {
	path := "/api/v1/notifications/" + url.PathEscape(id) + "/read"
	return f.c.do(ctx, "mark notification read", "PUT", path, nil, nil)
}

// MarkAllRead marca todas como leídas.
func (f *NotificationFeed) MarkAllRead(ctx context.Context) error {
	return f.c.do(ctx, "mark all notifications read", "PUT", "/api/v1/notifications/read-all", nil, nil)
}
