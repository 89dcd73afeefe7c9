package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/wikigraph/internal/models"
)

// summaryConcurrency bounds parallel summary fetches during expansion.
const summaryConcurrency = 5

// Expander grows an existing graph by one hop from a chosen node.
type Expander struct {
	provider ContentProvider
	log      *logrus.Logger
}

// NewExpander creates an Expander.
func NewExpander(provider ContentProvider, log *logrus.Logger) *Expander {
	return &Expander{provider: provider, log: log}
}

type edgeKey struct {
	from string
	to   string
}

// Expand returns a new graph with nodeID's outgoing links added. The input
// graph is never modified. Only one hop is expanded regardless of depth.
//
// If the provider cannot resolve nodeID the input graph is returned as is.
func (x *Expander) Expand(ctx context.Context, g *models.GraphData, nodeID string, depth int) (*models.GraphData, error) {
	if g == nil {
		return nil, models.InvalidParameter("graph is required")
	}

	target := g.NodeByID(nodeID)
	if target == nil {
		return nil, fmt.Errorf("expanding %q: %w", nodeID, models.ErrNodeNotFound)
	}

	log := x.log.WithFields(logrus.Fields{"node_id": nodeID, "depth": depth})
	if depth > 1 {
		log.Debug("graph.expand: depth above 1 is expanded as a single hop")
	}

	article, err := x.provider.FetchOne(ctx, nodeID)
	if err != nil || article == nil {
		log.WithError(err).Warn("graph.expand: node content unavailable, graph unchanged")
		return g, nil
	}

	existing := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		existing[n.ID] = true
	}

	seenEdges := make(map[edgeKey]bool, len(g.Edges))
	for _, e := range g.Edges {
		seenEdges[edgeKey{e.From, e.To}] = true
	}

	links := article.Links
	if len(links) > expandFanOut {
		links = links[:expandFanOut]
	}

	var (
		newEdges []models.GraphEdge
		pending  []string
	)

	for _, link := range links {
		key := edgeKey{nodeID, link}
		if !seenEdges[key] {
			seenEdges[key] = true
			newEdges = append(newEdges, models.NewLinkEdge(nodeID, link))
		}

		if !existing[link] {
			existing[link] = true
			pending = append(pending, link)
		}
	}

	summaries := x.fetchSummaries(ctx, pending)

	nodes := make([]models.GraphNode, len(g.Nodes), len(g.Nodes)+len(pending))
	copy(nodes, g.Nodes)

	for _, id := range pending {
		if a := summaries[id]; a != nil {
			nodes = append(nodes, a.NodeAt(id, target.Depth+1))
		}
	}

	edges := make([]models.GraphEdge, 0, len(g.Edges)+len(newEdges))
	edges = append(edges, g.Edges...)
	edges = append(edges, newEdges...)

	assignCentrality(nodes, edges, x.log)

	maxDepth := 0
	for _, n := range nodes {
		maxDepth = max(maxDepth, n.Depth)
	}

	log.WithFields(logrus.Fields{
		"new_nodes": len(nodes) - len(g.Nodes),
		"new_edges": len(newEdges),
	}).Info("graph.expand complete")

	return &models.GraphData{
		Nodes:      nodes,
		Edges:      edges,
		RootNode:   g.RootNode,
		TotalNodes: len(nodes),
		TotalEdges: len(edges),
		MaxDepth:   maxDepth,
	}, nil
}

// fetchSummaries fetches summaries concurrently. Failures are logged and
// omitted from the result.
func (x *Expander) fetchSummaries(ctx context.Context, ids []string) map[string]*models.ArticleContent {
	out := make(map[string]*models.ArticleContent, len(ids))
	if len(ids) == 0 {
		return out
	}

	var (
		mu sync.Mutex
		eg errgroup.Group
	)

	eg.SetLimit(summaryConcurrency)

	for _, id := range ids {
		eg.Go(func() error {
			a, err := x.provider.FetchSummaryOnly(ctx, id)
			if err != nil || a == nil {
				x.log.WithError(err).WithField("id", id).Debug("graph.expand: summary unavailable")
				return nil
			}

			mu.Lock()
			out[id] = a
			mu.Unlock()

			return nil
		})
	}

	_ = eg.Wait()

	return out
}
