package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeAPI scripts the network half of the state machine.
type fakeAPI struct {
	loginUser    *AuthUser
	loginErr     error
	logoutErr    error
	loginCalls   int
	logoutCalls  int
	lastOrgSlug  string
	lastUsername string
}

func (f *fakeAPI) Login(_ context.Context, orgSlug, username, _ string) (*AuthUser, error) {
	f.loginCalls++
	f.lastOrgSlug = orgSlug
	f.lastUsername = username
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	copied := *f.loginUser
	return &copied, nil
}

func (f *fakeAPI) Logout(_ context.Context, _, _ string) error {
	f.logoutCalls++
	return f.logoutErr
}

func testUser() *AuthUser {
	return &AuthUser{
		Username:         "alice",
		Role:             "ADMIN",
		AccessToken:      "token-123",
		OrganizationSlug: "acme",
	}
}

func TestLoginSuccess(t *testing.T) {
	api := &fakeAPI{loginUser: testUser()}
	store := NewMemoryStore()
	bus := NewBus()

	s := New(api, store, bus)
	defer s.Close()

	if s.State() != Unauthenticated {
		t.Fatalf("initial state = %v, want unauthenticated", s.State())
	}

	if err := s.Login(context.Background(), "acme", "alice", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if !s.IsAuthenticated() {
		t.Error("expected session to be authenticated")
	}
	if got := s.User(); got == nil || got.Username != "alice" || got.AccessToken != "token-123" {
		t.Errorf("User() = %+v, want the logged-in user", got)
	}
	if stored := store.Load(); stored == nil || stored.Username != "alice" {
		t.Errorf("stored user = %+v, want persisted login", stored)
	}
	if api.lastOrgSlug != "acme" {
		t.Errorf("login org = %s, want acme", api.lastOrgSlug)
	}
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAPI{loginErr: errors.New("invalid username or password")}
	store := NewMemoryStore()
	bus := NewBus()

	s := New(api, store, bus)
	defer s.Close()

	err := s.Login(context.Background(), "acme", "alice", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}

	if s.State() != Unauthenticated {
		t.Errorf("state after failed login = %v, want unauthenticated", s.State())
	}
	if store.Load() != nil {
		t.Error("failed login must not write to the store")
	}
}

func TestLoginFailureKeepsExistingSession(t *testing.T) {
	// Already authenticated; a failed re-login must not log us out.
	store := NewMemoryStore()
	if err := store.Save(testUser()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	api := &fakeAPI{loginErr: errors.New("boom")}
	bus := NewBus()

	s := New(api, store, bus)
	defer s.Close()

	if !s.IsAuthenticated() {
		t.Fatal("expected session restored from store")
	}

	if err := s.Login(context.Background(), "acme", "bob", "bad"); err == nil {
		t.Fatal("expected login error")
	}
	if !s.IsAuthenticated() {
		t.Error("failed login must not clear an existing session")
	}
	if stored := store.Load(); stored == nil || stored.Username != "alice" {
		t.Errorf("stored user = %+v, want original session intact", stored)
	}
}

func TestLogoutIsAuthoritativeLocally(t *testing.T) {
	api := &fakeAPI{loginUser: testUser(), logoutErr: errors.New("network down")}
	store := NewMemoryStore()
	bus := NewBus()

	s := New(api, store, bus)
	defer s.Close()

	if err := s.Login(context.Background(), "acme", "alice", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Logout returns the network error but clears state regardless.
	if err := s.Logout(context.Background()); err == nil {
		t.Error("expected network error surfaced")
	}
	if s.IsAuthenticated() {
		t.Error("logout must clear in-memory state despite network failure")
	}
	if store.Load() != nil {
		t.Error("logout must clear persisted state despite network failure")
	}
	if api.logoutCalls != 1 {
		t.Errorf("logout calls = %d, want 1", api.logoutCalls)
	}
}

func TestCrossTabSynchronization(t *testing.T) {
	api := &fakeAPI{loginUser: testUser()}
	store := NewMemoryStore()
	bus := NewBus()

	tabA := New(api, store, bus)
	defer tabA.Close()
	tabB := New(api, store, bus)
	defer tabB.Close()

	// Login in tab A is observed by tab B without polling.
	if err := tabA.Login(context.Background(), "acme", "alice", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !tabB.IsAuthenticated() {
		t.Error("tab B must observe tab A's login")
	}
	if got := tabB.User(); got == nil || got.Username != "alice" {
		t.Errorf("tab B user = %+v, want alice", got)
	}

	// Logout in tab B logs tab A out as well.
	if err := tabB.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if tabA.IsAuthenticated() {
		t.Error("tab A must observe tab B's logout")
	}

	// A closed tab stops observing.
	tabB.Close()
	bus.Publish(testUser())
	if !tabA.IsAuthenticated() {
		t.Error("tab A should still observe the bus")
	}
}

func TestStoredUserRoundTrip(t *testing.T) {
	stores := map[string]CredentialStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "session.json")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			u := testUser()
			if err := store.Save(u); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got := store.Load()
			if got == nil || *got != *u {
				t.Errorf("Load = %+v, want %+v", got, u)
			}

			if err := store.Save(nil); err != nil {
				t.Fatalf("Save(nil) failed: %v", err)
			}
			if store.Load() != nil {
				t.Error("Load after clear should be nil")
			}
		})
	}
}

func TestFileStoreTreatsCorruptStateAsAbsent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{"},
		{name: "empty file", content: ""},
		{name: "missing token", content: `{"username":"alice","role":"USER","organizationSlug":"acme"}`},
		{name: "missing role", content: `{"username":"alice","accessToken":"t","organizationSlug":"acme"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.json")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			if got := NewFileStore(path).Load(); got != nil {
				t.Errorf("Load = %+v, want nil for corrupt state", got)
			}
		})
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if got := store.Load(); got != nil {
		t.Errorf("Load = %+v, want nil for fresh session", got)
	}
	// Clearing an already-absent session is not an error.
	if err := store.Save(nil); err != nil {
		t.Errorf("Save(nil) on missing file: %v", err)
	}
}
