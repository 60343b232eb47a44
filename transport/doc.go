// Package transport implements an http.RoundTripper that decorates every
// outgoing platform request with the stored bearer credential and JSON
// content-negotiation headers, and that invalidates the session when the
// backend answers `401 Unauthorized`.
//
// The decorator never short-circuits, retries or queues: an anonymous request
// is forwarded unmodified, and a rejected response is handed back to the
// caller untouched after the session store has been cleared.
package transport
