package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"remindpay/internal/infrastructure/identity"

	"github.com/gin-gonic/gin"
)

type stubIntrospector struct {
	user identity.User
	err  error
}

func (s stubIntrospector) GetUser(_ context.Context, _ string) (identity.User, error) {
	return s.user, s.err
}

func newAuthRouter(introspector TokenIntrospector) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireUser(introspector), func(c *gin.Context) {
		user, ok := c.Get(UserContextKey)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": user.(identity.User).ID})
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireUser(t *testing.T) {
	t.Run("unconfigured introspector", func(t *testing.T) {
		r := newAuthRouter(nil)
		if w := get(r, "Bearer token"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		r := newAuthRouter(stubIntrospector{})
		if w := get(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if w := get(r, "Bearer "); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for empty bearer, got %d", w.Code)
		}
		if w := get(r, "token-without-scheme"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for missing scheme, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r := newAuthRouter(stubIntrospector{err: identity.ErrInvalidToken})
		if w := get(r, "Bearer bad"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("introspection transport failure", func(t *testing.T) {
		r := newAuthRouter(stubIntrospector{err: errors.New("connection refused")})
		if w := get(r, "Bearer token"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		r := newAuthRouter(stubIntrospector{user: identity.User{ID: "user-1"}})
		w := get(r, "Bearer good")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"user_id":"user-1"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
