package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"remindpay/internal/infrastructure/identity"
	"remindpay/pkg"

	"github.com/gin-gonic/gin"
)

// UserContextKey is where RequireUser stores the introspected user.
const UserContextKey = "user"

// TokenIntrospector resolves a bearer token to a user via the identity
// provider.
type TokenIntrospector interface {
	GetUser(ctx context.Context, token string) (identity.User, error)
}

// RequireUser guards client-originated routes behind bearer-token
// introspection. A nil introspector means the identity provider was not
// configured at startup; requests then fail with a 500, not a panic.
func RequireUser(introspector TokenIntrospector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if introspector == nil {
			log.Printf("[auth][middleware] identity provider not configured")
			appErr := pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Identity provider not configured", http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || token == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, pkg.HTTPError{Message: "No token provided"})
			return
		}

		user, err := introspector.GetUser(c.Request.Context(), token)
		switch {
		case errors.Is(err, identity.ErrInvalidToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, pkg.HTTPError{Message: "Invalid token"})
			return
		case err != nil:
			log.Printf("[auth][middleware] introspection failed err=%v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, pkg.HTTPError{Message: "Authentication failed"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}
