// Package session implements the client-held authentication state
// machine: a single logical session value persisted through a
// CredentialStore and observed by any number of Session instances
// ("tabs") through a broadcast Bus.
//
// The state machine is Unauthenticated -> Authenticating ->
// Authenticated -> (logout) -> Unauthenticated. A failed login
// surfaces its error to the caller and restores the previous state
// without touching persisted credentials. Logout is best-effort on
// the network but authoritative locally: stored and in-memory state
// are cleared even when the logout request never lands.
package session

import (
	"context"
	"sync"
)

// State is the position of the session in its lifecycle.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// AuthUser is the persisted session value. All four fields are
// required: a stored value missing any of them is treated as absent.
type AuthUser struct {
	Username         string `json:"username"`
	Role             string `json:"role"`
	AccessToken      string `json:"accessToken"`
	OrganizationSlug string `json:"organizationSlug"`
}

// complete reports whether every required field is present.
func (u *AuthUser) complete() bool {
	return u != nil && u.Username != "" && u.Role != "" && u.AccessToken != "" && u.OrganizationSlug != ""
}

// API performs the network half of login and logout.
type API interface {
	// Login authenticates against the organization and returns the
	// session value to persist.
	Login(ctx context.Context, orgSlug, username, password string) (*AuthUser, error)

	// Logout invalidates the token server-side. Callers treat
	// failures as non-fatal.
	Logout(ctx context.Context, orgSlug, token string) error
}

// Session is one observer of the shared session value, analogous to
// a browser tab. All methods are safe for concurrent use.
type Session struct {
	api   API
	store CredentialStore
	bus   *Bus

	mu    sync.Mutex
	state State
	user  *AuthUser

	unsubscribe func()
}

// New creates a session bound to the shared store and bus. If the
// store already holds a valid user (another tab logged in earlier),
// the session starts out Authenticated.
func New(api API, store CredentialStore, bus *Bus) *Session {
	s := &Session{api: api, store: store, bus: bus}

	if u := store.Load(); u != nil {
		s.user = u
		s.state = Authenticated
	}

	// Observe writes made by other sessions sharing the bus.
	s.unsubscribe = bus.Subscribe(s.apply)

	return s
}

// Close stops observing the shared bus. The persisted value is left
// untouched.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// apply moves the in-memory state to match a broadcast write.
func (s *Session) apply(u *AuthUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.user = nil
		s.state = Unauthenticated
		return
	}
	copied := *u
	s.user = &copied
	s.state = Authenticated
}

// Login authenticates against the organization and, on success,
// persists the returned user and broadcasts it to every observer.
// On failure the error is returned, the previous state is restored
// and neither stored nor in-memory credentials change.
func (s *Session) Login(ctx context.Context, orgSlug, username, password string) error {
	s.mu.Lock()
	prev := s.state
	s.state = Authenticating
	s.mu.Unlock()

	user, err := s.api.Login(ctx, orgSlug, username, password)
	if err != nil {
		s.mu.Lock()
		s.state = prev
		s.mu.Unlock()
		return err
	}

	if err := s.store.Save(user); err != nil {
		s.mu.Lock()
		s.state = prev
		s.mu.Unlock()
		return err
	}

	s.apply(user)
	s.bus.Publish(user)
	return nil
}

// Logout clears the session. The network call is best-effort: its
// error is returned for observability, but local and persisted state
// are already gone by then and every observer has been notified.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()

	var netErr error
	if user != nil {
		netErr = s.api.Logout(ctx, user.OrganizationSlug, user.AccessToken)
	}

	_ = s.store.Save(nil)
	s.apply(nil)
	s.bus.Publish(nil)

	return netErr
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether the session currently holds a user.
func (s *Session) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// User returns a copy of the current user, or nil when logged out.
func (s *Session) User() *AuthUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}
