package transport

import (
	"net/http"

	"github.com/rs/zerolog"
)

type Option func(*Authorizer)

// WithTransport sets the underlying round tripper, http.DefaultTransport when
// unset.
func WithTransport(transport http.RoundTripper) Option {
	return func(a *Authorizer) {
		a.transport = transport
	}
}

// WithLogger sets the logger, zerolog.Nop() when unset.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Authorizer) {
		a.logger = logger
	}
}

// WithOnInvalidate registers a hook invoked after the session store has been
// cleared on a 401 response, e.g. to trigger a login screen.
func WithOnInvalidate(fn func()) Option {
	return func(a *Authorizer) {
		a.onInvalidate = fn
	}
}
