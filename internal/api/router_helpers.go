package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/middleware"
	"github.com/persistorai/wikigraph/internal/models"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// maxTitleLen caps article titles taken from the URL path.
const maxTitleLen = 255

// queryInt reads an optional integer query parameter. A missing value yields
// fallback; a malformed one is an invalid parameter.
func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, models.InvalidParameter("%s must be an integer", key)
	}

	return v, nil
}

// titleParam returns the catch-all title path parameter. Titles may contain
// slashes, so routes bind them with *title and gin keeps the leading slash.
func titleParam(c *gin.Context) (string, error) {
	title := strings.TrimSpace(strings.TrimPrefix(c.Param("title"), "/"))
	if title == "" {
		return "", models.InvalidParameter("title is required")
	}

	if len(title) > maxTitleLen {
		return "", models.ErrFieldTooLong("title", maxTitleLen)
	}

	return title, nil
}

// validatePathID checks that a path parameter ID is non-empty and within length limits.
func validatePathID(id string) error {
	if id == "" {
		return models.InvalidParameter("id must not be empty")
	}
	if len(id) > 64 {
		return models.ErrFieldTooLong("id", 64)
	}
	return nil
}
