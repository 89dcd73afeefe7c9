package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"
)

// RequestID assigns each request a UUID and echoes it in X-Request-ID. A
// client-supplied header is adopted only when it parses as a UUID, so CLI
// and SDK callers can correlate retries; anything else is logged under
// client_request_id and replaced.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader(RequestIDHeader)

		id := uuid.NewString()
		if parsed, err := uuid.Parse(clientID); err == nil && parsed != uuid.Nil {
			id = parsed.String()
		} else if clientID != "" {
			log.WithFields(logrus.Fields{
				"request_id":        id,
				"client_request_id": clientID,
			}).Debug("client request id replaced")
			c.Set("client_request_id", clientID)
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
