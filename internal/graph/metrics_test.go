package graph

import (
	"fmt"
	"math"
	"testing"

	"github.com/persistorai/wikigraph/internal/models"
)

func scored(id string, depth int, c float64) models.GraphNode {
	return models.GraphNode{ID: id, Depth: depth, Centrality: &c}
}

func TestComputeMetrics(t *testing.T) {
	g := &models.GraphData{
		Nodes:    []models.GraphNode{scored("A", 0, 1), scored("B", 1, 0.5), scored("C", 1, 0.5)},
		Edges:    []models.GraphEdge{models.NewLinkEdge("A", "B"), models.NewLinkEdge("A", "C")},
		MaxDepth: 1,
	}

	r := ComputeMetrics(g)

	if r.TotalNodes != 3 || r.TotalEdges != 2 {
		t.Errorf("totals = %d/%d, want 3/2", r.TotalNodes, r.TotalEdges)
	}
	if math.Abs(r.Density-2.0/6) > 1e-9 {
		t.Errorf("density = %f, want %f", r.Density, 2.0/6)
	}
	if math.Abs(r.AverageDegree-4.0/6) > 1e-9 {
		t.Errorf("average degree = %f, want %f", r.AverageDegree, 4.0/6)
	}
	if r.MaxDegree != 2 {
		t.Errorf("max degree = %d, want 2", r.MaxDegree)
	}
	if r.MaxDepth != 1 {
		t.Errorf("max depth = %d, want 1", r.MaxDepth)
	}
	if r.DepthDistribution[0] != 1 || r.DepthDistribution[1] != 2 {
		t.Errorf("depth distribution = %v", r.DepthDistribution)
	}

	want := []string{"A", "B", "C"}
	for i, nc := range r.NodesByCentrality {
		if nc.ID != want[i] {
			t.Errorf("rank %d = %s, want %s", i, nc.ID, want[i])
		}
	}
}

func TestComputeMetrics_EdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		g           *models.GraphData
		wantNodes   int
		wantDensity float64
		wantAvg     float64
		wantMax     int
	}{
		{name: "nil graph"},
		{name: "empty graph", g: &models.GraphData{}},
		{name: "single node", g: &models.GraphData{Nodes: []models.GraphNode{{ID: "A"}}}, wantNodes: 1},
		{
			name: "dangling edges are not sampled",
			g: &models.GraphData{
				Nodes: []models.GraphNode{{ID: "A"}, {ID: "B"}},
				Edges: []models.GraphEdge{models.NewLinkEdge("A", "B"), models.NewLinkEdge("A", "Z")},
			},
			wantNodes:   2,
			wantDensity: 1,
			wantAvg:     0.75,
			wantMax:     2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := ComputeMetrics(tc.g)

			if r.TotalNodes != tc.wantNodes || r.Density != tc.wantDensity || r.AverageDegree != tc.wantAvg || r.MaxDegree != tc.wantMax {
				t.Errorf("got nodes=%d density=%f avg=%f max=%d", r.TotalNodes, r.Density, r.AverageDegree, r.MaxDegree)
			}
			if r.DepthDistribution == nil || r.NodesByCentrality == nil {
				t.Error("expected non-nil distribution and ranking")
			}
		})
	}
}

func TestComputeMetrics_TopTenTieBreak(t *testing.T) {
	g := &models.GraphData{}
	for i := 11; i >= 0; i-- {
		g.Nodes = append(g.Nodes, scored(fmt.Sprintf("n%02d", i), 0, 0.5))
	}
	g.Nodes = append(g.Nodes, models.GraphNode{ID: "unscored"}, scored("top", 0, 0.9))

	r := ComputeMetrics(g)

	if len(r.NodesByCentrality) != 10 {
		t.Fatalf("got %d ranked nodes, want 10", len(r.NodesByCentrality))
	}
	if r.NodesByCentrality[0].ID != "top" || r.NodesByCentrality[1].ID != "n00" || r.NodesByCentrality[9].ID != "n08" {
		t.Errorf("unexpected ranking: %v", r.NodesByCentrality)
	}
}
