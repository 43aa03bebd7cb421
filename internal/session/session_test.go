package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/models"
)

// ---- fakes ----

// fakeStore is an in-memory CredentialStore with failure toggles.
type fakeStore struct {
	token     string
	userCache []byte

	loadTokenErr error
	saveTokenErr error

	saveTokenCalls int
	clearCalls     int
}

func (s *fakeStore) SaveToken(token string) error {
	s.saveTokenCalls++
	if s.saveTokenErr != nil {
		return s.saveTokenErr
	}
	s.token = token
	return nil
}

func (s *fakeStore) LoadToken() (string, error) {
	if s.loadTokenErr != nil {
		return "", s.loadTokenErr
	}
	return s.token, nil
}

func (s *fakeStore) SaveUserCache(data []byte) error {
	s.userCache = data
	return nil
}

func (s *fakeStore) LoadUserCache() ([]byte, error) {
	return s.userCache, nil
}

func (s *fakeStore) ClearSession() error {
	s.clearCalls++
	s.token = ""
	s.userCache = nil
	return nil
}

// fakeFetcher is a ProfileFetcher with a scripted response.
type fakeFetcher struct {
	user  *models.User
	err   error
	calls int
}

func (f *fakeFetcher) GetMe(ctx context.Context) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func newManager(store *fakeStore, be *fakeFetcher) *Manager {
	m := NewManager(store)
	m.Bind(be)
	return m
}

func alice() *models.User {
	return &models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
}

// ---- bootstrap ----

func TestBootstrapNoToken(t *testing.T) {
	store := &fakeStore{}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)

	require.Equal(t, Bootstrapping, m.Phase())
	require.NoError(t, m.Bootstrap(context.Background()))

	require.Equal(t, Ready, m.Phase())
	require.False(t, m.Authenticated())
	require.Nil(t, m.CurrentUser())
	require.Zero(t, be.calls, "no token means no profile fetch")
}

func TestBootstrapValidToken(t *testing.T) {
	store := &fakeStore{token: "abc"}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)

	require.NoError(t, m.Bootstrap(context.Background()))

	require.Equal(t, Ready, m.Phase())
	require.Equal(t, "abc", m.Token())
	require.NotNil(t, m.CurrentUser())
	require.Equal(t, "u1", m.CurrentUser().ID)
	require.Equal(t, "alice", m.CurrentUser().Username)
	require.NotEmpty(t, store.userCache, "snapshot re-persisted after fetch")
}

func TestBootstrapRejectedTokenPurges(t *testing.T) {
	store := &fakeStore{token: "expired"}
	be := &fakeFetcher{err: nexuserrors.New(nexuserrors.AuthRejected, "backend returned 401")}
	m := newManager(store, be)

	require.NoError(t, m.Bootstrap(context.Background()))

	require.Equal(t, Ready, m.Phase())
	require.Empty(t, m.Token())
	require.Nil(t, m.CurrentUser())
	require.Empty(t, store.token, "persisted token purged")
	require.Empty(t, store.userCache)
	require.Equal(t, 1, store.clearCalls)
}

func TestBootstrapOfflinePreservesToken(t *testing.T) {
	cached, err := json.Marshal(alice())
	require.NoError(t, err)

	store := &fakeStore{token: "abc", userCache: cached}
	be := &fakeFetcher{err: nexuserrors.New(nexuserrors.NetworkUnreachable, "no response")}
	m := newManager(store, be)

	require.NoError(t, m.Bootstrap(context.Background()))

	require.Equal(t, Ready, m.Phase())
	require.Equal(t, "abc", m.Token(), "offline start must not log the user out")
	require.Equal(t, "abc", store.token, "persisted token unchanged")
	require.Zero(t, store.clearCalls)

	// Stale snapshot restored from the store.
	require.NotNil(t, m.CurrentUser())
	require.Equal(t, "alice", m.CurrentUser().Username)
}

func TestBootstrapStorageReadFailure(t *testing.T) {
	store := &fakeStore{
		token:        "abc",
		loadTokenErr: nexuserrors.New(nexuserrors.StorageRead, "ring unavailable"),
	}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)

	require.NoError(t, m.Bootstrap(context.Background()))

	// Proceed as if no credential were present, without purging.
	require.Equal(t, Ready, m.Phase())
	require.False(t, m.Authenticated())
	require.Equal(t, "abc", store.token)
	require.Zero(t, store.clearCalls)
}

// ---- sign-in ----

func TestSignInSuccess(t *testing.T) {
	store := &fakeStore{}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)
	require.NoError(t, m.Bootstrap(context.Background()))

	require.NoError(t, m.SignIn(context.Background(), "new-token"))

	require.Equal(t, "new-token", m.Token())
	require.Equal(t, "new-token", store.token, "token durably persisted")
	require.NotNil(t, m.CurrentUser())
	require.NotEmpty(t, store.userCache)
}

func TestSignInProfileFailurePreservesToken(t *testing.T) {
	store := &fakeStore{}
	be := &fakeFetcher{err: nexuserrors.New(nexuserrors.NetworkUnreachable, "no response")}
	m := newManager(store, be)
	require.NoError(t, m.Bootstrap(context.Background()))

	err := m.SignIn(context.Background(), "tok")

	require.Error(t, err, "fetch failure propagates to the caller")
	require.Equal(t, "tok", m.Token(), "login already proved the credential")
	require.Equal(t, "tok", store.token)
	require.Nil(t, m.CurrentUser())
}

func TestSignInPersistFailureKeepsMemoryToken(t *testing.T) {
	store := &fakeStore{saveTokenErr: nexuserrors.New(nexuserrors.StorageWrite, "disk full")}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)
	require.NoError(t, m.Bootstrap(context.Background()))

	err := m.SignIn(context.Background(), "tok")

	require.Error(t, err)
	require.True(t, nexuserrors.IsKind(err, nexuserrors.StorageWrite))
	require.Equal(t, "tok", m.Token(), "session usable for this process")
	require.NotNil(t, m.CurrentUser())
}

// ---- sign-out ----

func TestSignOutIdempotent(t *testing.T) {
	store := &fakeStore{token: "abc"}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)
	require.NoError(t, m.Bootstrap(context.Background()))
	require.True(t, m.Authenticated())

	m.SignOut(context.Background())
	require.False(t, m.Authenticated())
	require.Nil(t, m.CurrentUser())
	require.Empty(t, store.token)

	// A second sign-out yields the same empty state and never fails.
	m.SignOut(context.Background())
	require.False(t, m.Authenticated())
	require.Nil(t, m.CurrentUser())
}

// ---- refresh ----

func TestRefreshNoOpWithoutToken(t *testing.T) {
	store := &fakeStore{}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)
	require.NoError(t, m.Bootstrap(context.Background()))

	require.NoError(t, m.RefreshUser(context.Background()))
	require.Zero(t, be.calls, "no network call without a token")
	require.Nil(t, m.CurrentUser())
}

func TestRefreshReplacesUser(t *testing.T) {
	store := &fakeStore{token: "abc"}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)
	require.NoError(t, m.Bootstrap(context.Background()))

	be.user = &models.User{ID: "u1", Username: "alice", Bio: "updated"}
	require.NoError(t, m.RefreshUser(context.Background()))
	require.Equal(t, "updated", m.CurrentUser().Bio)
}

func TestRefreshFailureKeepsStaleUser(t *testing.T) {
	store := &fakeStore{token: "abc"}
	be := &fakeFetcher{user: alice()}
	m := newManager(store, be)
	require.NoError(t, m.Bootstrap(context.Background()))

	be.user = nil
	be.err = nexuserrors.New(nexuserrors.NetworkUnreachable, "no response")

	err := m.RefreshUser(context.Background())
	require.Error(t, err)
	require.True(t, m.Authenticated(), "transient failure must not log the user out")
	require.NotNil(t, m.CurrentUser())
	require.Equal(t, "alice", m.CurrentUser().Username)
}

// ---- invariants ----

func TestUserNeverExposedWithoutToken(t *testing.T) {
	store := &fakeStore{token: "expired"}
	cached, _ := json.Marshal(alice())
	store.userCache = cached
	be := &fakeFetcher{err: nexuserrors.New(nexuserrors.AuthRejected, "backend returned 401")}
	m := newManager(store, be)

	require.NoError(t, m.Bootstrap(context.Background()))

	// token was purged, so no user may be observable either
	require.Empty(t, m.Token())
	require.Nil(t, m.CurrentUser())
}
