package graph

import (
	"math"
	"testing"

	"github.com/persistorai/wikigraph/internal/models"
)

func TestAssignCentrality(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges []models.GraphEdge
		want  map[string]float64
	}{
		{
			name:  "no edges",
			nodes: []string{"A", "B"},
			want:  map[string]float64{"A": 0, "B": 0},
		},
		{
			name:  "star",
			nodes: []string{"A", "B", "C"},
			edges: []models.GraphEdge{models.NewLinkEdge("A", "B"), models.NewLinkEdge("A", "C")},
			want:  map[string]float64{"A": 1, "B": 0.5, "C": 0.5},
		},
		{
			name:  "dangling targets count toward the maximum",
			nodes: []string{"A", "B"},
			edges: []models.GraphEdge{
				models.NewLinkEdge("A", "X"), models.NewLinkEdge("B", "X"),
				models.NewLinkEdge("A", "X"), models.NewLinkEdge("B", "X"),
			},
			want: map[string]float64{"A": 0.5, "B": 0.5},
		},
		{
			name:  "self loop",
			nodes: []string{"A", "B"},
			edges: []models.GraphEdge{models.NewLinkEdge("A", "A"), models.NewLinkEdge("A", "B")},
			want:  map[string]float64{"A": 1, "B": 1.0 / 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nodes := make([]models.GraphNode, len(tc.nodes))
			for i, id := range tc.nodes {
				nodes[i] = models.GraphNode{ID: id}
			}

			assignCentrality(nodes, tc.edges, testLogger())

			for _, n := range nodes {
				if n.Centrality == nil {
					t.Fatalf("node %s has no centrality", n.ID)
				}
				if math.Abs(*n.Centrality-tc.want[n.ID]) > 1e-9 {
					t.Errorf("centrality(%s) = %f, want %f", n.ID, *n.Centrality, tc.want[n.ID])
				}
			}
		})
	}
}

func TestAssignCentrality_DistinctScores(t *testing.T) {
	nodes := []models.GraphNode{{ID: "A"}, {ID: "B"}}
	assignCentrality(nodes, []models.GraphEdge{models.NewLinkEdge("A", "B")}, testLogger())

	if nodes[0].Centrality == nodes[1].Centrality {
		t.Error("nodes must not share a centrality pointer")
	}
}
