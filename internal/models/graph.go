// Package models defines data types for the link graph.
package models

// EdgeKindLink tags an edge derived from an outgoing article link.
const EdgeKindLink = "link"

// GraphNode is an article materialized into a graph.
type GraphNode struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Summary    string   `json:"summary,omitempty"`
	URL        string   `json:"url"`
	ExternalID *int64   `json:"page_id,omitempty"`
	Depth      int      `json:"depth"`
	Centrality *float64 `json:"centrality,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// GraphEdge is a directed link between two articles. To may reference an id
// that has no node in the graph (a dangling edge).
type GraphEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Kind   string  `json:"edge_type"`
}

// NewLinkEdge returns a unit-weight link edge.
func NewLinkEdge(from, to string) GraphEdge {
	return GraphEdge{From: from, To: to, Weight: 1.0, Kind: EdgeKindLink}
}

// GraphData is a complete graph value returned by explore and expand.
type GraphData struct {
	Nodes      []GraphNode `json:"nodes"`
	Edges      []GraphEdge `json:"edges"`
	RootNode   string      `json:"root_node"`
	TotalNodes int         `json:"total_nodes"`
	TotalEdges int         `json:"total_edges"`
	MaxDepth   int         `json:"max_depth"`
}

// NodeByID returns the node with the given id, or nil.
func (g *GraphData) NodeByID(id string) *GraphNode {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}

	return nil
}

// HasEdge reports whether an edge from -> to already exists.
func (g *GraphData) HasEdge(from, to string) bool {
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			return true
		}
	}

	return false
}

// PathResult is the outcome of a shortest-path search. Truncated means the
// search hit its fetch limit, so a false Found is inconclusive.
type PathResult struct {
	Found     bool     `json:"found"`
	Path      []string `json:"path"`
	Explored  int      `json:"articles_explored"`
	Truncated bool     `json:"truncated"`
}

// NodeCentrality pairs a node id with its centrality score.
type NodeCentrality struct {
	ID         string  `json:"id"`
	Centrality float64 `json:"centrality"`
}

// MetricsReport holds summary statistics over a finished graph.
type MetricsReport struct {
	TotalNodes        int              `json:"total_nodes"`
	TotalEdges        int              `json:"total_edges"`
	Density           float64          `json:"density"`
	AverageDegree     float64          `json:"average_degree"`
	MaxDegree         int              `json:"max_degree"`
	MaxDepth          int              `json:"max_depth"`
	DepthDistribution map[int]int      `json:"depth_distribution"`
	NodesByCentrality []NodeCentrality `json:"nodes_by_centrality"`
}
