package client

import (
	"net/http"

	"github.com/rs/zerolog"
)

type Option func(*Client)

// WithHTTPClient injects a fully built HTTP client, bypassing the default
// transport assembly. The caller is then responsible for wiring the
// transport.Authorizer decorator.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeouts sets the connect/read/write timeouts used when the client
// builds its own HTTP transport. Ignored with WithHTTPClient.
func WithTimeouts(timeouts Timeouts) Option {
	return func(c *Client) {
		c.timeouts = timeouts
	}
}

// WithLogger sets the logger, zerolog.Nop() when unset.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
