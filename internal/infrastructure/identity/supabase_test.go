package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewSupabaseClient_Unconfigured(t *testing.T) {
	if _, err := NewSupabaseClient("", "anon"); !errors.Is(err, ErrSupabaseNotConfigured) {
		t.Fatalf("expected ErrSupabaseNotConfigured, got %v", err)
	}
	if _, err := NewSupabaseClient("http://localhost", ""); !errors.Is(err, ErrSupabaseNotConfigured) {
		t.Fatalf("expected ErrSupabaseNotConfigured, got %v", err)
	}
}

func TestSupabaseClient_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"user-1","email":"u@example.com"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid JWT"}`))
		}
	}))
	defer srv.Close()

	c, err := NewSupabaseClient(srv.URL, "anon-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := c.GetUser(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-1" || user.Email != "u@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := c.GetUser(context.Background(), "bad-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := c.GetUser(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
