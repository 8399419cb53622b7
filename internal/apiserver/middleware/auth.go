package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentport/rentport/internal/common/cnst"
	"github.com/rentport/rentport/internal/storage"
)

// UserIDKey is the gin context key the resolved caller id is stored under
const UserIDKey = "userID"

// RequireUser resolves the caller from the X-User-ID header. Session and
// credential handling live outside this service; the header carries an
// already-validated user id. Account status still gates access: inactive
// and removed users are rejected here.
func RequireUser(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-ID")
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
			return
		}

		u, err := store.GetUserByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		if u.Status != cnst.UserActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is " + string(u.Status)})
			return
		}

		c.Set(UserIDKey, u.ID)
		c.Next()
	}
}

// CallerID returns the resolved caller id set by RequireUser
func CallerID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
