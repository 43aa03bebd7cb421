// Package keychain provides centralized, thread-safe credential storage for nexus.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for the two secrets the CLI persists: the
// bearer access token and a cached serialized profile snapshot.
//
// The package supports macOS Keychain, Windows Credential Manager, the
// freedesktop Secret Service, pass, and an encrypted file fallback so the
// client also works on headless Linux machines. Absent keys are reported as
// empty values, never as errors; only real I/O failures surface as typed
// storage errors.
package keychain

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/99designs/keyring"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/xdg"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "nexus"

// Keys used for storing secrets in the OS keychain.
const (
	KeyAccessToken = "nexus_access_token"
	KeyUserCache   = "nexus_user_cache"
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring, preferring native platform backends and
// falling back to an encrypted file under the XDG state directory.
func openRing() (keyring.Keyring, error) {
	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, nexuserrors.Wrap(nexuserrors.StorageRead, "resolve state dir", err)
	}

	cfg := keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		PassPrefix:       ServiceName,
		WinCredPrefix:    ServiceName,
		FileDir:          filepath.Join(stateDir, "keyring"),
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, nexuserrors.Wrap(nexuserrors.StorageRead, "open keyring", err)
	}
	return ring, nil
}

// set stores a single key. The write is durable before the call returns.
func (m *Manager) set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Set(keyring.Item{Key: key, Data: value}); err != nil {
		return nexuserrors.Wrap(nexuserrors.StorageWrite, "save "+key, err)
	}
	return nil
}

// get loads a single key. A missing key yields (nil, nil).
func (m *Manager) get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, nexuserrors.Wrap(nexuserrors.StorageRead, "load "+key, err)
	}
	return item.Data, nil
}

// delete removes a single key. Deleting an absent key succeeds.
func (m *Manager) delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return nexuserrors.Wrap(nexuserrors.StorageWrite, "delete "+key, err)
	}
	return nil
}

// SaveToken stores the bearer access token.
func (m *Manager) SaveToken(token string) error {
	return m.set(KeyAccessToken, []byte(token))
}

// LoadToken retrieves the bearer access token. Absent token yields "".
func (m *Manager) LoadToken() (string, error) {
	data, err := m.get(KeyAccessToken)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DeleteToken removes the bearer access token. Idempotent.
func (m *Manager) DeleteToken() error {
	return m.delete(KeyAccessToken)
}

// SaveUserCache stores the serialized profile snapshot.
func (m *Manager) SaveUserCache(data []byte) error {
	return m.set(KeyUserCache, data)
}

// LoadUserCache retrieves the serialized profile snapshot, nil when absent.
func (m *Manager) LoadUserCache() ([]byte, error) {
	return m.get(KeyUserCache)
}

// DeleteUserCache removes the profile snapshot. Idempotent.
func (m *Manager) DeleteUserCache() error {
	return m.delete(KeyUserCache)
}

// ClearSession removes both session keys. The first failure is returned,
// but both deletes are always attempted.
func (m *Manager) ClearSession() error {
	errToken := m.DeleteToken()
	errUser := m.DeleteUserCache()
	if errToken != nil {
		return errToken
	}
	return errUser
}
