package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-backend/utils"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "admin_session"

// AdminAuth guards admin routes behind the session cookie set by login.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if err := utils.ValidateAdminToken(cookie); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
