package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soukhub/soukhub-go/session"
)

func TestAuthorizer_AnonymousRequestUnmodified(t *testing.T) {
	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	client := &http.Client{Transport: New(store)}

	resp, err := client.Get(srv.URL + "/products")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Empty(t, seen.Get("Authorization"))
	require.Empty(t, seen.Get("Accept"))
}

func TestAuthorizer_BearerHeaderInjected(t *testing.T) {
	var seen http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	require.NoError(t, store.SaveToken("abc"))
	client := &http.Client{Transport: New(store)}

	resp, err := client.Get(srv.URL + "/orders")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "Bearer abc", seen.Get("Authorization"))
	require.Equal(t, "application/json", seen.Get("Accept"))
}

func TestAuthorizer_CallerRequestNotMutated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	store := session.NewMemoryStore()
	require.NoError(t, store.SaveToken("abc"))

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := New(store).RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Empty(t, req.Header.Get("Authorization"))
}

func TestAuthorizer_RejectionClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	require.NoError(t, store.SaveToken("stale"))
	invalidated := false
	client := &http.Client{Transport: New(store, WithOnInvalidate(func() { invalidated = true }))}

	resp, err := client.Get(srv.URL + "/orders")
	require.NoError(t, err)
	defer resp.Body.Close()

	// the rejected response still reaches the caller
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	// but the stale credential is gone before it returns
	require.False(t, store.IsAuthenticated())
	require.True(t, invalidated)
}

func TestAuthorizer_OtherStatusesLeaveSessionUntouched(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		store := session.NewMemoryStore()
		require.NoError(t, store.SaveToken("abc"))
		client := &http.Client{Transport: New(store)}

		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
		srv.Close()

		token, ok := store.Token()
		require.True(t, ok, "status %d must not clear the session", status)
		require.Equal(t, "abc", token)
	}
}

func TestAuthorizer_TransportFailurePropagates(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.SaveToken("abc"))
	client := &http.Client{Transport: New(store)}

	_, err := client.Get("http://127.0.0.1:1/unreachable")
	require.Error(t, err)
	// a transport failure is not a rejection: the credential stays
	require.True(t, store.IsAuthenticated())
}
