package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soukhub/soukhub-go/schema"
)

func TestNotificationWatcher_DeduplicatesSeenIds(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications", func(w http.ResponseWriter, r *http.Request) {
		n := polls.Add(1)
		list := []schema.Notification{{ID: "n-1", Title: "Order shipped"}}
		if n >= 2 {
			list = append(list, schema.Notification{ID: "n-2", Title: "Mission offer"})
		}
		writeJSON(t, w, schema.NotificationList{Notifications: list})
	})

	cli, _ := newTestClient(t, mux)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := cli.NotificationWatcher(WithInterval(10 * time.Millisecond))
	ch := watcher.Watch(ctx)

	first := <-ch
	require.Equal(t, schema.ID("n-1"), first.ID)
	second := <-ch
	require.Equal(t, schema.ID("n-2"), second.ID)

	// nothing new: the channel stays silent until cancellation
	select {
	case n, ok := <-ch:
		require.False(t, ok, "unexpected duplicate notification %v", n)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	for range ch {
	}
}

func TestMarkNotificationRead(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications/n-1/read", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		writeJSON(t, w, schema.Notification{ID: "n-1", Read: true})
	})

	cli, _ := newTestClient(t, mux)
	notification, err := cli.MarkNotificationRead(context.Background(), "n-1")
	require.NoError(t, err)
	require.True(t, notification.Read)
}
