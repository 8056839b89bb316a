package api

import (
	"net/http"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/KamylovMurad/API-hotel/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookie  = "session_token"
	userContextKey = "user"
)

// sessionToken extracts the session token from the cookie or, failing that,
// the Authorization header.
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		return token
	}
	return c.GetHeader("Authorization")
}

// RequireAuth resolves the session into a user and stores it in the request
// context. There is no process-wide session state: identity travels with
// the request.
func RequireAuth(service auth.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := service.CurrentUser(c.Request.Context(), sessionToken(c))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// GuestOnly rejects callers that are already logged in; registration and
// login are only reachable anonymously.
func GuestOnly(service auth.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := service.CurrentUser(c.Request.Context(), sessionToken(c)); err == nil {
			respondError(c, http.StatusBadRequest, "Already authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok || !user.IsSuperuser {
			respondError(c, http.StatusForbidden, "Administrator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}
