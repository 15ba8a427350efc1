// Package token persists the credential pair across process restarts, the
// SDK's analog of the web client's localStorage: two raw JWT strings under
// the keys access_token and refresh_token, plus one session-scoped slot
// holding the pre-redirect path for post-login return navigation.
package token

import "sync"

// Storage keys, shared by every backend.
const (
	AccessKey  = "access_token"
	RefreshKey = "refresh_token"
)

// Credentials is the persisted token pair. An empty string means absent.
type Credentials struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// Store persists the credential pair. Load on a cleared or never-written
// store returns zero Credentials, not an error.
type Store interface {
	Load() (Credentials, error)
	Save(Credentials) error
	Clear() error
}

// MemoryStore keeps credentials in process memory only.
type MemoryStore struct {
	mu    sync.Mutex
	creds Credentials
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

func (s *MemoryStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	return nil
}

// ReturnPath is the ephemeral slot the auth-failure interceptor writes the
// current path into, so the app can navigate back after a fresh sign-in.
// It is never persisted.
type ReturnPath struct {
	mu   sync.Mutex
	path string
	set  bool
}

func (r *ReturnPath) Set(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
	r.set = true
}

// Take returns the stored path and clears the slot.
func (r *ReturnPath) Take() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	path, ok := r.path, r.set
	r.path, r.set = "", false
	return path, ok
}

// Peek returns the stored path without clearing it.
func (r *ReturnPath) Peek() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path, r.set
}
