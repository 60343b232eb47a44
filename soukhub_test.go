package soukhub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soukhub/soukhub-go/schema"
	"github.com/soukhub/soukhub-go/session"
)

func TestNew_PersistentSessionAcrossClients(t *testing.T) {
	sessionURL := filepath.Join(t.TempDir(), "session.json")
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(schema.LoginResponse{
			Token: "tok-9",
			User:  schema.User{ID: "1", Role: schema.RoleBuyer, Email: "b@example.com"},
		})
	})
	var authHeader string
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(schema.Cart{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	first, err := New(&ClientOptions{BaseURL: srv.URL, SessionURL: sessionURL})
	require.NoError(t, err)
	_, err = first.Login(context.Background(), "b@example.com", "pw")
	require.NoError(t, err)

	// a second client over the same session location reuses the credential
	second, err := New(&ClientOptions{BaseURL: srv.URL, SessionURL: sessionURL})
	require.NoError(t, err)
	_, err = second.Cart(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-9", authHeader)
}

func TestNew_InjectedStore(t *testing.T) {
	store := session.NewMemoryStore()
	cli, err := New(&ClientOptions{BaseURL: "http://localhost:0", Store: store})
	require.NoError(t, err)
	require.Same(t, store, cli.Store())
}
