package session

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/afs"
)

// FileStore persists the session snapshot as a JSON document through abstract
// file storage, so it survives process restarts. The location is an afs URL;
// a plain path addresses the local file system. Storage failures on write are
// returned to the caller but the in-memory state is updated regardless, so a
// degraded store still behaves correctly for the current process.
type FileStore struct {
	mu      sync.RWMutex
	fs      afs.Service
	URL     string
	current Session
}

// NewFileStore opens (or creates) a session store persisted at URL.
func NewFileStore(URL string) *FileStore {
	ret := &FileStore{fs: afs.New(), URL: URL}
	_ = ret.load()
	return ret
}

func (f *FileStore) SaveToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current.AuthToken = token
	return f.save()
}

func (f *FileStore) SaveProfile(p Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current.apply(p)
	return f.save()
}

func (f *FileStore) Token() (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current.AuthToken, f.current.AuthToken != ""
}

func (f *FileStore) Snapshot() Session {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

func (f *FileStore) IsAuthenticated() bool {
	_, ok := f.Token()
	return ok
}

// Clear removes every stored key, including the persisted document. Idempotent.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = Session{}
	ctx := context.Background()
	if ok, _ := f.fs.Exists(ctx, f.URL); !ok {
		return nil
	}
	return f.fs.Delete(ctx, f.URL)
}

func (f *FileStore) save() error {
	data, err := json.Marshal(f.current)
	if err != nil {
		return err
	}
	return f.fs.Upload(context.Background(), f.URL, 0o600, bytes.NewReader(data))
}

func (f *FileStore) load() error {
	ctx := context.Background()
	if ok, _ := f.fs.Exists(ctx, f.URL); !ok {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &f.current)
}
