package cmd

import (
	"context"

	"nexus/cli/internal/backend"
	"nexus/cli/internal/config"
	"nexus/cli/internal/keychain"
	"nexus/cli/internal/session"

	"github.com/pterm/pterm"
)

// openSession wires the credential store, backend client, and session
// manager together and restores persisted state. Every command goes through
// here before touching the backend, so the control flow is always: load
// config, open the keychain, bootstrap, then branch on Authenticated.
//
// An unavailable keychain degrades to an in-process store: the user can
// still sign in for this invocation, nothing survives the process.
func openSession(ctx context.Context) (*session.Manager, backend.API, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	var store session.CredentialStore
	if km, err := keychain.GetManager(); err == nil {
		store = km
	} else {
		pterm.Warning.Println("Secure storage unavailable; credentials will not be persisted.")
		store = newMemoryStore()
	}

	sess := session.NewManager(store)
	be := backend.New(cfg.BaseURL, backend.DefaultEndpoints(), sess.Token)
	sess.Bind(be)

	if err := sess.Bootstrap(ctx); err != nil {
		return nil, nil, err
	}
	return sess, be, nil
}

// requireAuth prints the standard sign-in hint when the session is
// unauthenticated and reports whether the caller may proceed.
func requireAuth(sess *session.Manager) bool {
	if sess.Authenticated() {
		return true
	}
	pterm.Println("🔒 You're not logged in yet!")
	pterm.Println("   Run 'nexus login' to get started.")
	return false
}

// memoryStore is the fallback credential store when the OS keychain cannot
// be opened. Values live for the process only.
type memoryStore struct {
	values map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) SaveToken(token string) error {
	s.values["token"] = []byte(token)
	return nil
}

func (s *memoryStore) LoadToken() (string, error) {
	return string(s.values["token"]), nil
}

func (s *memoryStore) SaveUserCache(data []byte) error {
	s.values["user"] = data
	return nil
}

func (s *memoryStore) LoadUserCache() ([]byte, error) {
	return s.values["user"], nil
}

func (s *memoryStore) ClearSession() error {
	delete(s.values, "token")
	delete(s.values, "user")
	return nil
}
