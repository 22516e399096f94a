// Package session holds the client's authentication state: who is logged
// in, the bearer token, and whether startup rehydration is still pending.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/client"
)

// tokenFileName is the fixed key the token is persisted under.
const tokenFileName = "token"

// Store is constructed once at process start and injected into whatever
// needs identity or the bearer credential. Exactly one exists per
// running client.
type Store struct {
	mu       sync.RWMutex
	identity *client.Identity
	token    string
	loading  bool

	tokenPath string
}

// NewStore returns a store in the loading state. Call Rehydrate before
// rendering anything protected.
func NewStore(tokenPath string) *Store {
	return &Store{
		loading:   true,
		tokenPath: tokenPath,
	}
}

// DefaultTokenPath places the token file under the user config dir.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "subassign", tokenFileName), nil
}

// Rehydrate restores a previous session from the persisted token. The
// token is trusted locally and not revalidated against the server; the
// server still rejects it on the first authenticated call if it has
// expired, which logs the session out. Always resolves loading.
func (s *Store) Rehydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	raw, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return
	}

	claims, err := auth.DecodeClaimsUnverified(token)
	if err != nil {
		// stale or mangled token, drop it
		os.Remove(s.tokenPath)
		return
	}

	s.identity = &client.Identity{
		ID:    claims.UUID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}
	s.token = token
}

// Login stores the identity and token as the active session and persists
// the token so it survives a restart.
func (s *Store) Login(identity client.Identity, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &identity
	s.token = token
	s.loading = false

	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o700); err == nil {
		os.WriteFile(s.tokenPath, []byte(token), 0o600)
	}
}

// Logout clears the session from memory and persisted storage. Safe to
// call repeatedly.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.token = ""
	os.Remove(s.tokenPath)
}

func (s *Store) CurrentUser() *client.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Snapshot captures the state the authorization gate decides on.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Loading: s.loading}
	if s.identity != nil {
		identity := *s.identity
		snap.Identity = &identity
	}
	return snap
}
