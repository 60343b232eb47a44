package transport

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/soukhub/soukhub-go/session"
)

// Authorizer decorates an underlying http.RoundTripper with bearer
// authorization sourced from a session.Store. On a 401 response it clears the
// store synchronously before returning, so a stale credential is never
// presented twice; the rejected response itself reaches the caller unmodified
// and redirecting to a login flow stays the embedding application's job.
type Authorizer struct {
	store        session.Store
	transport    http.RoundTripper
	logger       zerolog.Logger
	onInvalidate func()
}

// New returns an Authorizer reading from store.
func New(store session.Store, options ...Option) *Authorizer {
	ret := &Authorizer{
		store:     store,
		transport: http.DefaultTransport,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Store exposes the session store the authorizer reads from.
func (a *Authorizer) Store() session.Store {
	return a.store
}

func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok := a.store.Token()
	if !ok {
		// anonymous: forward byte-identical, absence of a token is not an error
		return a.transport.RoundTrip(req)
	}

	// RoundTrippers must not mutate the caller's request
	next := req.Clone(req.Context())
	next.Header.Set("Authorization", "Bearer "+token)
	if next.Header.Get("Accept") == "" {
		next.Header.Set("Accept", "application/json")
	}
	if next.Body != nil && next.Header.Get("Content-Type") == "" {
		next.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.transport.RoundTrip(next)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if cerr := a.store.Clear(); cerr != nil {
			a.logger.Error().Err(cerr).Msg("failed to clear rejected session")
		}
		a.logger.Info().Str("url", req.URL.Path).Msg("credential rejected, session invalidated")
		if a.onInvalidate != nil {
			a.onInvalidate()
		}
	}
	return resp, nil
}
