// Package notifier mantiene el estado del feed de notificaciones de la consola:
// un poller de fondo cancelable (context + ticker) en lugar del interval sin
// control del sistema original.
package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/hostal-pro/pkg/logger"
)

// Notification entrada del feed vista por la consola.
type Notification struct {
	ID        string
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// Feed es el puerto hacia el API de notificaciones.
type Feed interface {
	// Fetch devuelve la página más reciente del feed y el total de no leídas.
	Fetch(ctx context.Context, limit, offset int) ([]Notification, int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// Snapshot estado del feed en un instante, para render de la barra de navegación.
type Snapshot struct {
	Items       []Notification
	UnreadCount int
	LastPollAt  time.Time
	LastErr     error // último error de poll; nil cuando el último poll funcionó
}

// Poller sondea el feed a intervalo fijo y mantiene la última página y el
// contador de no leídas tras un mutex. Se detiene cancelando el context de Run.
type Poller struct {
	feed     Feed
	interval time.Duration
	pageSize int
	log      *logger.Logger

	mu   sync.Mutex
	snap Snapshot
}

// NewPoller construye el poller. pageSize <= 0 usa 20; log puede ser logger.Nop().
func NewPoller(feed Feed, interval time.Duration, pageSize int, log *logger.Logger) *Poller {
	if pageSize <= 0 {
		pageSize = 20
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Poller{feed: feed, interval: interval, pageSize: pageSize, log: log}
}

// Run sondea inmediatamente y luego a cada intervalo hasta que ctx se cancele.
// Pensado para ejecutarse en su propia goroutine.
func (p *Poller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Msg("poller de notificaciones detenido")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// Poll fuerza un sondeo inmediato (por ejemplo tras marcar leídas).
func (p *Poller) Poll(ctx context.Context) {
	p.poll(ctx)
}

func (p *Poller) poll(ctx context.Context) {
	items, unread, err := p.feed.Fetch(ctx, p.pageSize, 0)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.LastPollAt = time.Now()
	p.snap.LastErr = err
	if err != nil {
		// El estado anterior se conserva; el error queda visible en el snapshot.
		p.log.Warn().Err(err).Msg("poll de notificaciones falló")
		return
	}
	p.snap.Items = items
	p.snap.UnreadCount = unread
}

// Snapshot devuelve una copia del estado actual del feed.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := p.snap
	cp.Items = append([]Notification(nil), p.snap.Items...)
	return cp
}

// MarkRead marca una notificación como leída: actualiza el estado local de
// forma optimista y llama al API; si el API falla, restaura y devuelve el error.
func (p *Poller) MarkRead(ctx context.Context, id string) error {
	p.mu.Lock()
	var restored *Notification
	for i := range p.snap.Items {
		if p.snap.Items[i].ID == id && !p.snap.Items[i].Read {
			prev := p.snap.Items[i]
			restored = &prev
			p.snap.Items[i].Read = true
			if p.snap.UnreadCount > 0 {
				p.snap.UnreadCount--
			}
			break
		}
	}
	p.mu.Unlock()

	if err := p.feed.MarkRead(ctx, id); err != nil {
		if restored != nil {
			p.mu.Lock()
			for i := range p.snap.Items {
				if p.snap.Items[i].ID == id {
					p.snap.Items[i] = *restored
					p.snap.UnreadCount++
					break
				}
			}
			p.mu.Unlock()
		}
		return err
	}
	return nil
}

// MarkAllRead marca todas como leídas, con la misma política optimista.
func (p *Poller) MarkAllRead(ctx context.Context) error {
	p.mu.Lock()
	prev := append([]Notification(nil), p.snap.Items...)
	prevUnread := p.snap.UnreadCount
	for i := range p.snap.Items {
		p.snap.Items[i].Read = true
	}
	p.snap.UnreadCount = 0
	p.mu.Unlock()

	if err := p.feed.MarkAllRead(ctx); err != nil {
		p.mu.Lock()
		p.snap.Items = prev
		p.snap.UnreadCount = prevUnread
		p.mu.Unlock()
		return err
	}
	return nil
}
