package graph

import (
	"cmp"
	"slices"

	"github.com/persistorai/wikigraph/internal/models"
)

// topCentralityCount is the number of nodes listed in NodesByCentrality.
const topCentralityCount = 10

// ComputeMetrics summarizes a finished graph. It has no side effects. A nil
// graph, or any internal failure, yields an empty report.
//
// Degree statistics sample each node twice, once for its out-degree and once
// for its in-degree, zeros included. Dangling edge targets are not sampled.
func ComputeMetrics(g *models.GraphData) (report models.MetricsReport) {
	defer func() {
		if r := recover(); r != nil {
			report = emptyReport()
		}
	}()

	if g == nil {
		return emptyReport()
	}

	n := len(g.Nodes)
	e := len(g.Edges)

	report = emptyReport()
	report.TotalNodes = n
	report.TotalEdges = e
	report.MaxDepth = g.MaxDepth

	if n > 1 {
		report.Density = float64(e) / float64(n*(n-1))
	}

	degree := degrees(g.Edges)

	sum := 0
	for _, node := range g.Nodes {
		d := degree[node.ID]
		sum += d.in + d.out
		report.MaxDegree = max(report.MaxDegree, d.in, d.out)
		report.DepthDistribution[node.Depth]++
	}

	if n > 0 {
		report.AverageDegree = float64(sum) / float64(2*n)
	}

	ranked := make([]models.NodeCentrality, 0, n)
	for _, node := range g.Nodes {
		c := 0.0
		if node.Centrality != nil {
			c = *node.Centrality
		}

		ranked = append(ranked, models.NodeCentrality{ID: node.ID, Centrality: c})
	}

	slices.SortStableFunc(ranked, func(a, b models.NodeCentrality) int {
		if c := cmp.Compare(b.Centrality, a.Centrality); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	if len(ranked) > topCentralityCount {
		ranked = ranked[:topCentralityCount]
	}

	report.NodesByCentrality = ranked

	return report
}

func emptyReport() models.MetricsReport {
	return models.MetricsReport{
		DepthDistribution: map[int]int{},
		NodesByCentrality: []models.NodeCentrality{},
	}
}
