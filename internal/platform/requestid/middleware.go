// Package requestid tags every request with an ID for log correlation.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request ID in both directions.
const HeaderName = "X-Request-ID"

// contextKey is the gin context key the ID is stored under.
const contextKey = "requestID"

// New returns a middleware that honors an incoming X-Request-ID header or
// generates a fresh UUID, stores it on the context and echoes it back in the
// response.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(contextKey, rid)
		c.Header(HeaderName, rid)
		c.Next()
	}
}

// FromContext returns the request ID set by New, or "" when the middleware
// did not run.
func FromContext(c *gin.Context) string {
	return c.GetString(contextKey)
}
