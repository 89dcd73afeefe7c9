package graph

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// fallbackCentrality is assigned to every node if scoring fails.
const fallbackCentrality = 0.5

// assignCentrality sets a degree centrality score on every node in place.
//
// A node's score is its in-degree plus out-degree divided by the largest such
// sum over all edge endpoints, so scores fall in [0, 1]. Edges to ids outside
// nodes still count toward their source. With no edges every score is 0.
func assignCentrality(nodes []models.GraphNode, edges []models.GraphEdge, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Warn("graph.centrality failed, using fallback scores")

			for i := range nodes {
				c := fallbackCentrality
				nodes[i].Centrality = &c
			}
		}
	}()

	degree := degrees(edges)

	maxDegree := 0
	for _, d := range degree {
		maxDegree = max(maxDegree, d.in+d.out)
	}

	for i := range nodes {
		c := 0.0
		if maxDegree > 0 {
			d := degree[nodes[i].ID]
			c = float64(d.in+d.out) / float64(maxDegree)
		}

		if math.IsNaN(c) || math.IsInf(c, 0) {
			panic("non-finite centrality score")
		}

		nodes[i].Centrality = &c
	}
}

type degreeCount struct {
	in  int
	out int
}

// degrees tallies in- and out-degree for every id appearing as an edge endpoint.
func degrees(edges []models.GraphEdge) map[string]degreeCount {
	out := make(map[string]degreeCount)

	for _, e := range edges {
		from := out[e.From]
		from.out++
		out[e.From] = from

		to := out[e.To]
		to.in++
		out[e.To] = to
	}

	return out
}
