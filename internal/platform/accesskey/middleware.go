// Package accesskey provides the shared-secret gate applied to every
// protected route.
package accesskey

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderName is the request header carrying the shared secret.
const HeaderName = "accessKey"

// Required returns a Gin middleware that rejects any request whose accessKey
// header does not match the configured secret. The secret is loaded once at
// startup and passed in here; the comparison is constant-time. Rejected
// requests never reach the downstream handler.
func Required(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			// Server misconfiguration (ACCESS_KEY not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "server misconfigured"})
			return
		}
		key := c.GetHeader(HeaderName)
		if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
