package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader     = "X-Request-Id"
	contextKeyRequestID = "request_id"
)

// WithRequestID assigns each request a UUID (honoring an inbound
// X-Request-Id) and echoes it on the response.
func WithRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the request's assigned ID, if any.
func RequestID(c *gin.Context) string {
	v, _ := c.Get(contextKeyRequestID)
	id, _ := v.(string)
	return id
}
