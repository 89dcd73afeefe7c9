package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrCodePayloadTooLarge is returned when a declared body exceeds the limit.
const ErrCodePayloadTooLarge = "payload_too_large"

// MaxBodySize rejects requests whose declared Content-Length exceeds maxBytes
// and caps the body reader for chunked uploads, whose overflow surfaces as a
// decode error in the handler.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			respondError(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", maxBytes))
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
