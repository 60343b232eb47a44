// Package session persists the authenticated session: the opaque bearer token
// obtained from the login endpoint plus a denormalized snapshot of the account
// profile. The store is populated wholesale on login, read by the authorizing
// transport before every request, and cleared on logout or when the backend
// rejects the credential.
//
// It ships with an in-memory implementation for tests and short-lived tools
// and an afs-backed file store that survives process restarts.
package session
