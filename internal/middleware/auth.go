package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/constants"
)

// RequireUser checks for an authenticated user session. Browsers hitting a
// gated page without one are sent to the login page, exposing nothing.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Store principal in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		if userType := session.Get(constants.ContextKeyUserType); userType != nil {
			c.Set(constants.ContextKeyUserType, userType)
		}
		c.Next()
	}
}

// RequireAdmin checks for an authenticated admin session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		adminID := session.Get(constants.ContextKeyAdminID)

		if adminID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, adminID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	return getPrincipalID(c, constants.ContextKeyUserID)
}

// GetAdminID retrieves the current admin ID from context
func GetAdminID(c *gin.Context) (uint64, bool) {
	return getPrincipalID(c, constants.ContextKeyAdminID)
}

func getPrincipalID(c *gin.Context, key string) (uint64, bool) {
	value, exists := c.Get(key)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
