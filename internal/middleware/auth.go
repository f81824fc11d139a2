package middleware

import (
	"strings"

	"github.com/ahmed-226/Task-Management/internal/constants"
	apierrors "github.com/ahmed-226/Task-Management/internal/errors"
	"github.com/ahmed-226/Task-Management/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// RequireAuth verifies the Authorization bearer token before any handler
// logic runs. Missing, malformed, tampered and expired tokens are all
// rejected with 401.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			apierrors.Unauthorized(c, "Authorization header must use Bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
