// Package session owns the in-memory authentication session for the process.
// It mediates between the credential store and the backend API: restoring
// persisted credentials at startup, attaching profile state to sign-in, and
// tearing everything down on sign-out.
//
// Exactly one Manager exists per running process. Its lifecycle is
// Bootstrapping (during initial credential restoration) followed by a
// terminal Ready phase; sign-in, sign-out, and refresh mutate state only
// through the operations defined here.
package session

import (
	"context"
	"encoding/json"
	"sync"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/models"
)

// Phase is the session loading state.
type Phase int

const (
	// Bootstrapping holds only while persisted credentials are restored.
	Bootstrapping Phase = iota
	// Ready is terminal for the life of the process.
	Ready
)

// CredentialStore is the durable key-value persistence the session relies on.
// Load operations report absence as empty values, not errors.
type CredentialStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	SaveUserCache(data []byte) error
	LoadUserCache() ([]byte, error)
	ClearSession() error
}

// ProfileFetcher retrieves the authenticated user's profile from the backend.
type ProfileFetcher interface {
	GetMe(ctx context.Context) (*models.User, error)
}

// Manager holds the process-wide session state.
// A token implies authenticated; a user is only ever exposed alongside a
// token. Overlapping operations are last-write-wins under the mutex.
type Manager struct {
	mu    sync.RWMutex
	store CredentialStore
	be    ProfileFetcher

	token string
	user  *models.User
	phase Phase
}

// NewManager creates a session manager over the given store.
// Bind must be called before any operation that fetches profiles.
func NewManager(store CredentialStore) *Manager {
	return &Manager{store: store, phase: Bootstrapping}
}

// Bind attaches the backend used for profile fetches. Split from the
// constructor because the backend's token source reads this manager.
func (m *Manager) Bind(be ProfileFetcher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.be = be
}

// Token returns the current bearer token, empty when unauthenticated.
// It is the token source consulted by the request interceptor on every
// dispatch.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// CurrentUser returns the last-known profile snapshot, nil when absent.
// The snapshot may be stale relative to the server.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Authenticated reports whether the session holds a bearer token.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// Phase returns the current loading state.
func (m *Manager) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// Bootstrap restores the session from the credential store, exactly once at
// process start. Policy per failure class:
//
//   - no persisted token: become Ready unauthenticated
//   - storage read failure: proceed as if no credential were present,
//     without purging the store
//   - profile fetch rejected (401/403): the token has proven invalid, so
//     sign out before becoming Ready
//   - profile fetch unreachable or otherwise failed: keep the token and
//     fall back to the cached profile snapshot; offline at launch must not
//     log the user out
//
// Bootstrap always leaves the session Ready.
func (m *Manager) Bootstrap(ctx context.Context) error {
	defer m.setReady()

	token, err := m.store.LoadToken()
	if err != nil || token == "" {
		return nil
	}

	m.setToken(token)

	user, err := m.be.GetMe(ctx)
	if err != nil {
		if nexuserrors.IsKind(err, nexuserrors.AuthRejected) {
			m.SignOut(ctx)
			return nil
		}
		// Cannot determine validity; restore the last-known snapshot.
		m.restoreCachedUser()
		return nil
	}

	m.setUser(user)
	m.cacheUser(user)
	return nil
}

// SignIn installs a freshly obtained token: it is persisted, set in memory,
// and the profile is fetched with it. A profile-fetch failure leaves the
// token in place (the login exchange already proved the credential) and is
// propagated so the caller can retry or surface it. A persistence failure is
// likewise propagated after the in-memory session is established; the
// session works for this process but will not survive a restart.
func (m *Manager) SignIn(ctx context.Context, token string) error {
	m.setToken(token)

	saveErr := m.store.SaveToken(token)

	user, err := m.be.GetMe(ctx)
	if err != nil {
		if saveErr != nil {
			return saveErr
		}
		return err
	}
	m.setUser(user)
	m.cacheUser(user)
	return saveErr
}

// SignOut unconditionally transitions to the unauthenticated state.
// Store cleanup is best-effort: the observable effect (a logged-out
// session) holds regardless of storage outcome.
func (m *Manager) SignOut(ctx context.Context) {
	_ = m.store.ClearSession()

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
}

// RefreshUser re-fetches the profile and replaces the in-memory snapshot.
// Without a token it is a no-op and performs no network call. On failure the
// stale snapshot is kept; a transient glitch must not look like a logout.
func (m *Manager) RefreshUser(ctx context.Context) error {
	if !m.Authenticated() {
		return nil
	}
	user, err := m.be.GetMe(ctx)
	if err != nil {
		return err
	}
	m.setUser(user)
	m.cacheUser(user)
	return nil
}

func (m *Manager) setReady() {
	m.mu.Lock()
	m.phase = Ready
	m.mu.Unlock()
}

func (m *Manager) setToken(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
}

// cacheUser persists the profile snapshot, best-effort.
func (m *Manager) cacheUser(user *models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = m.store.SaveUserCache(data)
}

// restoreCachedUser loads the persisted snapshot into memory, best-effort.
func (m *Manager) restoreCachedUser() {
	data, err := m.store.LoadUserCache()
	if err != nil || len(data) == 0 {
		return
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return
	}
	m.setUser(&user)
}
