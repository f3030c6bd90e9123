package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request ID in both directions.
	HeaderRequestID = "X-Request-ID"

	// ContextRequestID is the key used to store the request ID in the Gin context.
	ContextRequestID = "requestID"
)

// RequestID tags every request with a UUID. A valid UUID sent by the
// client is reused in canonical form; anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderRequestID))
		if err != nil {
			id = uuid.New()
		}

		c.Set(ContextRequestID, id.String())
		c.Header(HeaderRequestID, id.String())
		c.Next()
	}
}

// GetRequestID returns the ID RequestID stored on c, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
