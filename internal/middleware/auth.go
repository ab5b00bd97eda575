package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/todotrack/todo-api/internal/auth"
	"github.com/todotrack/todo-api/internal/constants"
	apierrors "github.com/todotrack/todo-api/internal/errors"
)

// RequireAuth validates the bearer token and binds the user id into the
// request context. The Authorization header is read as a raw token value; a
// standard "Bearer " prefix is also accepted. Auth failures respond 404, the
// status existing clients expect.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			apierrors.NotFound(c, "Missing token")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(raw, "Bearer ")

		claims, err := tokens.Verify(token)
		if err != nil {
			apierrors.NotFound(c, "Token not valid or expired")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
