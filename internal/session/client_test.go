package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/org/acme/auth/login" {
			t.Errorf("path = %s, want /org/acme/auth/login", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"username":"alice","role":"ADMIN","accessToken":"tok","organizationSlug":"acme"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	user, err := client.Login(context.Background(), "acme", "alice", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Username != "alice" || user.Role != "ADMIN" || user.AccessToken != "tok" {
		t.Errorf("user = %+v", user)
	}
}

func TestClientLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid username or password"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), "acme", "alice", "wrong")
	if !errors.Is(err, ErrLoginFailed) {
		t.Errorf("err = %v, want ErrLoginFailed", err)
	}
}

func TestClientLogoutSendsBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Logout(context.Background(), "acme", "tok"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q, want Bearer tok", gotAuth)
	}
}
