package client

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/soukhub/soukhub-go/internal/collection"
	"github.com/soukhub/soukhub-go/schema"
)

// ListNotifications returns the caller's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]schema.Notification, error) {
	envelope, err := get[schema.NotificationList](ctx, c, "/notifications", "failed to list notifications")
	return envelope.Notifications, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id schema.ID) (*schema.Notification, error) {
	notification, err := do[schema.Notification](ctx, c, http.MethodPost, "/notifications/"+id.String()+"/read", nil, "failed to mark notification read")
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// NotificationWatcher polls the notification endpoint and emits each
// notification id at most once. Poll failures are logged and retried on the
// next tick; the watcher never terminates a session or retries within a tick.
type NotificationWatcher struct {
	client   *Client
	interval time.Duration
	seen     *collection.SyncMap[schema.ID, struct{}]
	logger   zerolog.Logger
}

type WatcherOption func(*NotificationWatcher)

// WithInterval sets the poll interval, 30s when unset.
func WithInterval(interval time.Duration) WatcherOption {
	return func(w *NotificationWatcher) {
		w.interval = interval
	}
}

// NotificationWatcher builds a watcher over this client.
func (c *Client) NotificationWatcher(options ...WatcherOption) *NotificationWatcher {
	ret := &NotificationWatcher{
		client:   c,
		interval: 30 * time.Second,
		seen:     collection.NewSyncMap[schema.ID, struct{}](),
		logger:   c.logger,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Watch polls until ctx is done, delivering unseen notifications on the
// returned channel. The channel is closed on cancellation.
func (w *NotificationWatcher) Watch(ctx context.Context) <-chan schema.Notification {
	out := make(chan schema.Notification)
	go func() {
		defer close(out)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			w.poll(ctx, out)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return out
}

func (w *NotificationWatcher) poll(ctx context.Context, out chan<- schema.Notification) {
	notifications, err := w.client.ListNotifications(ctx)
	if err != nil {
		w.logger.Debug().Err(err).Msg("notification poll failed")
		return
	}
	for _, notification := range notifications {
		if !w.seen.PutIfAbsent(notification.ID, struct{}{}) {
			continue
		}
		select {
		case out <- notification:
		case <-ctx.Done():
			return
		}
	}
}
