package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/soukhub/soukhub-go/schema"
	"github.com/soukhub/soukhub-go/session"
	"github.com/soukhub/soukhub-go/transport"
)

// Timeouts configures the three independent network timeouts, constant for
// the process lifetime: Connect bounds dialing (and TLS handshake), Read
// bounds waiting for response headers, Write bounds the whole request.
type Timeouts struct {
	Connect time.Duration
	Read    time.Duration
	Write   time.Duration
}

func (t *Timeouts) init() {
	if t.Connect == 0 {
		t.Connect = 10 * time.Second
	}
	if t.Read == 0 {
		t.Read = 30 * time.Second
	}
	if t.Write == 0 {
		t.Write = 60 * time.Second
	}
}

// Client talks to the SoukHub REST backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	logger     zerolog.Logger
	timeouts   Timeouts
}

// New returns a Client rooted at baseURL whose requests are decorated by a
// transport.Authorizer reading from store.
func New(baseURL string, store session.Store, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("client: base URL is required")
	}
	if store == nil {
		store = session.NewMemoryStore()
	}
	ret := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.httpClient == nil {
		ret.timeouts.init()
		dialer := &net.Dialer{Timeout: ret.timeouts.Connect}
		base := &http.Transport{
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   ret.timeouts.Connect,
			ResponseHeaderTimeout: ret.timeouts.Read,
		}
		ret.httpClient = &http.Client{
			Transport: transport.New(store, transport.WithTransport(base), transport.WithLogger(ret.logger)),
			Timeout:   ret.timeouts.Write,
		}
	}
	return ret, nil
}

// Store exposes the session store the client authenticates against.
func (c *Client) Store() session.Store {
	return c.store
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// call performs one round trip and decodes a 2xx JSON body into T. There is
// no retry at this layer; transport failures propagate wrapped, every non-2xx
// status becomes *APIError.
func call[T any](ctx context.Context, c *Client, method, path string, body io.Reader, header http.Header, fallback string) (T, error) {
	var out T
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return out, err
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	c.logger.Debug().Str("method", method).Str("path", path).Msg("api call")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("network error calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("network error reading %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, newAPIError(resp.StatusCode, data, fallback)
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		// a malformed body is not distinguished from a domain failure
		return out, &APIError{StatusCode: resp.StatusCode, Message: fallback}
	}
	return out, nil
}

// do marshals payload as a JSON body and delegates to call.
func do[T any](ctx context.Context, c *Client, method, path string, payload any, fallback string) (T, error) {
	var body io.Reader
	header := http.Header{}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			var out T
			return out, err
		}
		body = bytes.NewReader(data)
		header.Set("Content-Type", "application/json")
	}
	header.Set("Accept", "application/json")
	return call[T](ctx, c, method, path, body, header, fallback)
}

func get[T any](ctx context.Context, c *Client, path, fallback string) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil, fallback)
}

func newAPIError(status int, body []byte, fallback string) *APIError {
	message := fallback
	var envelope schema.ServerMessage
	if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
		message = envelope.Message
	}
	return &APIError{StatusCode: status, Message: message}
}
