// Package graph builds link graphs over a content corpus: breadth-first
// exploration with batched fetches, single-node expansion, shortest-path
// search, degree centrality and summary metrics.
//
// The package holds no per-call state on its types. Budgets (depth, node cap,
// path depth) are arguments of each call; the only state shared across calls
// is the injected NodeCache.
package graph

import (
	"context"

	"github.com/persistorai/wikigraph/internal/models"
)

// ContentProvider retrieves article content and outgoing links.
//
// FetchOne and FetchSummaryOnly return models.ErrArticleNotFound (or a nil
// article) when the item cannot be resolved. FetchMany isolates per-item
// failures: a missing or failed id is simply absent from the result map.
type ContentProvider interface {
	FetchOne(ctx context.Context, id string) (*models.ArticleContent, error)
	FetchMany(ctx context.Context, ids []string) map[string]*models.ArticleContent
	FetchSummaryOnly(ctx context.Context, id string) (*models.ArticleContent, error)
}
