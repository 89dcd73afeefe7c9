// Package store persists saved explorations in PostgreSQL.
//
// Stores embed Base for the shared pool and logger. Every query runs under
// withTimeout so a stuck database cannot hold a request forever.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
