package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amrbashir/erp-system-sub001/internal/models"
)

// fakeUserStorage keeps users in a map keyed by org and username.
type fakeUserStorage struct {
	users map[string]*models.User
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[string]*models.User)}
}

func (f *fakeUserStorage) key(orgID, username string) string {
	return orgID + "/" + username
}

func (f *fakeUserStorage) CreateUser(_ context.Context, user *models.User) error {
	f.users[f.key(user.OrgID, user.Username)] = user
	return nil
}

func (f *fakeUserStorage) GetUserByUsername(_ context.Context, orgID, username string) (*models.User, error) {
	return f.users[f.key(orgID, username)], nil
}

func (f *fakeUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	storage := newFakeUserStorage()
	authenticator := NewPasswordAuthenticator(storage)

	user, err := authenticator.Register(ctx, "org-1", "alice", models.RoleAdmin, "password123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Error("password must be stored hashed")
	}

	t.Run("authenticate with correct password", func(t *testing.T) {
		got, err := authenticator.Authenticate(ctx, "org-1", "alice", "password123")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("got user %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		if _, err := authenticator.Authenticate(ctx, "org-1", "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("same username in another org is a different account", func(t *testing.T) {
		if _, err := authenticator.Authenticate(ctx, "org-2", "alice", "password123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
		if _, err := authenticator.Register(ctx, "org-2", "alice", models.RoleUser, "password456"); err != nil {
			t.Errorf("Register in second org failed: %v", err)
		}
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "org-1", "alice", models.RoleUser, "password456"); !errors.Is(err, ErrUsernameExists) {
			t.Errorf("err = %v, want ErrUsernameExists", err)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "org-1", "carol", models.RoleUser, "short"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("err = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "org-1", "dave", models.Role("ROOT"), "password123"); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("err = %v, want ErrInvalidRole", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := models.NewUser("org-1", "alice", models.RoleAdmin, "hash")

	token, err := manager.Generate(user, "acme")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "alice" {
		t.Errorf("claims = %+v, want user %s", claims, user.ID)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %s, want ADMIN", claims.Role)
	}
	if claims.OrgSlug != "acme" {
		t.Errorf("OrgSlug = %s, want acme", claims.OrgSlug)
	}

	t.Run("tampered token rejected", func(t *testing.T) {
		if _, err := manager.Validate(token + "x"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		tok, err := expired.Generate(user, "acme")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}
