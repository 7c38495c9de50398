package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/demoproject/demo-app/internal/validators"
)

// RequestIDHeader carries the per-request identifier in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request identifier
const RequestIDKey = "request_id"

// RequestID tags every request with an identifier
// A well-formed client-supplied X-Request-ID is echoed; otherwise a UUID v4 is generated
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if validators.ValidateRequestID(requestID, RequestIDHeader) != nil {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the identifier stored by RequestID, or "" when absent
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
