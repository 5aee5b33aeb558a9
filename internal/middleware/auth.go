package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hackdash/dashboard-api/internal/auth"
	"github.com/hackdash/dashboard-api/internal/constants"
	apierrors "github.com/hackdash/dashboard-api/internal/errors"
	"github.com/hackdash/dashboard-api/internal/models"
	"gorm.io/gorm"
)

// RequireAuth verifies the bearer token, resolves the subject email back to a
// user row, and stores the user in the context. Disabled accounts are rejected.
// Every failure produces the same generic denial.
func RequireAuth(db *gorm.DB, tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			apierrors.Unauthorized(c)
			c.Abort()
			return
		}

		email, err := tokens.Verify(parts[1])
		if err != nil {
			apierrors.Unauthorized(c)
			c.Abort()
			return
		}

		var user models.User
		if err := db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
			apierrors.Unauthorized(c)
			c.Abort()
			return
		}

		if user.Disabled {
			apierrors.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(constants.ContextUserKey, &user)
		c.Next()
	}
}

// RequireRoles gates an endpoint on an explicit set of allowed role names.
// Must run after RequireAuth.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := GetCurrentUser(c)
		if !exists {
			apierrors.Unauthorized(c)
			c.Abort()
			return
		}

		if err := auth.Authorize(user, allowedRoles); err != nil {
			apierrors.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetCurrentUser retrieves the resolved user from the context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}

	return user, true
}
