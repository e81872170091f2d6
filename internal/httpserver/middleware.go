package httpserver

import (
	"net/http"
	"strings"

	"agrimart/internal/domain"
	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

// authMiddleware resolves the bearer token once per request and stores
// the authenticated user for handlers to pass into services explicitly.
func authMiddleware(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		u, err := users.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(userKey, *u)
		c.Next()
	}
}

// requireAdmin gates admin-only routes. Services re-check the role; the
// gate exists so shoppers get a uniform 403 before touching handlers.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentUser(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(domain.User); ok {
			return u
		}
	}
	return domain.User{}
}
