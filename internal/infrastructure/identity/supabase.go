package identity

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrSupabaseNotConfigured = errors.New("supabase not configured")
	ErrInvalidToken          = errors.New("invalid token")
)

// User is the subset of the Supabase user object this backend cares about.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// SupabaseClient introspects bearer tokens against the Supabase auth API
// (GET /auth/v1/user).
type SupabaseClient struct {
	http    *resty.Client
	anonKey string
}

func NewSupabaseClient(url, anonKey string) (*SupabaseClient, error) {
	if url == "" || anonKey == "" {
		log.Printf("[auth][identity] supabase env not configured")
		return nil, ErrSupabaseNotConfigured
	}

	client := resty.New().
		SetBaseURL(url).
		SetTimeout(10 * time.Second).
		SetHeader("apikey", anonKey)

	log.Printf("[auth][identity] supabase client initialized url=%s", url)
	return &SupabaseClient{http: client, anonKey: anonKey}, nil
}

// GetUser resolves a bearer token to its user. Any non-200 introspection
// answer is treated as an invalid token; transport errors are returned as-is
// so the caller can answer 500 instead of 401.
func (c *SupabaseClient) GetUser(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrInvalidToken
	}

	var user User
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		log.Printf("[auth][identity] introspection call failed err=%v", err)
		return User{}, err
	}
	if resp.StatusCode() != 200 || user.ID == "" {
		log.Printf("[auth][identity] introspection rejected status=%d", resp.StatusCode())
		return User{}, ErrInvalidToken
	}

	return user, nil
}
