package session

import "sync"

// Store is the pluggable persistence layer for the session. Implementations
// serialize individual operations but offer no cross-field transaction:
// concurrent login and logout resolve as last-writer-wins.
type Store interface {
	// SaveToken overwrites the stored bearer token. The token shape is not
	// validated.
	SaveToken(token string) error

	// SaveProfile writes the non-nil fields of p; nil fields leave any
	// previously stored value untouched.
	SaveProfile(p Profile) error

	// Token returns the stored bearer token, if any.
	Token() (string, bool)

	// Snapshot returns the last persisted session values, possibly partial.
	Snapshot() Session

	// IsAuthenticated reports whether a token is stored.
	IsAuthenticated() bool

	// Clear removes every stored key. Idempotent.
	Clear() error
}

type memoryStore struct {
	mu      sync.RWMutex
	current Session
}

// NewMemoryStore returns a Store that lives for the process only.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current.AuthToken = token
	return nil
}

func (m *memoryStore) SaveProfile(p Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current.apply(p)
	return nil
}

func (m *memoryStore) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.AuthToken, m.current.AuthToken != ""
}

func (m *memoryStore) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *memoryStore) IsAuthenticated() bool {
	_, ok := m.Token()
	return ok
}

func (m *memoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Session{}
	return nil
}
