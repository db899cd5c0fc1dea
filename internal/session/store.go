package session

import (
	"encoding/json"
	"os"
	"sync"
)

// CredentialStore persists the shared session value. Implementations
// must treat absent, corrupt or partial stored state as no user at
// all: Load never returns a half-valid session.
type CredentialStore interface {
	// Load returns the stored user, or nil when there is none or the
	// stored value is unusable.
	Load() *AuthUser

	// Save replaces the stored user. A nil user clears the store.
	Save(user *AuthUser) error
}

// MemoryStore keeps the session value in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	user *AuthUser
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored user, or nil.
func (m *MemoryStore) Load() *AuthUser {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.user.complete() {
		return nil
	}
	copied := *m.user
	return &copied
}

// Save replaces the stored user.
func (m *MemoryStore) Save(user *AuthUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user == nil {
		m.user = nil
		return nil
	}
	copied := *user
	m.user = &copied
	return nil
}

// FileStore persists the session value as a JSON file, the moral
// equivalent of the browser's localStorage key.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a credential store backed by the given path.
// The file does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored user. A missing file, unreadable JSON or a
// value missing any required field all read as nil.
func (f *FileStore) Load() *AuthUser {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil
	}

	user := &AuthUser{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil
	}
	if !user.complete() {
		return nil
	}
	return user
}

// Save writes the user as JSON, or removes the file when user is nil.
func (f *FileStore) Save(user *AuthUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user == nil {
		err := os.Remove(f.path)
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0600)
}
