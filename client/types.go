package client

import "time"

// GraphNode is an article in a graph.
type GraphNode struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Summary    string   `json:"summary,omitempty"`
	URL        string   `json:"url"`
	PageID     *int64   `json:"page_id,omitempty"`
	Depth      int      `json:"depth"`
	Centrality *float64 `json:"centrality,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// GraphEdge is a directed link between two articles.
type GraphEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Weight   float64 `json:"weight"`
	EdgeType string  `json:"edge_type"`
}

// GraphData is a complete graph as returned by explore and expand.
type GraphData struct {
	Nodes      []GraphNode `json:"nodes"`
	Edges      []GraphEdge `json:"edges"`
	RootNode   string      `json:"root_node"`
	TotalNodes int         `json:"total_nodes"`
	TotalEdges int         `json:"total_edges"`
	MaxDepth   int         `json:"max_depth"`
}

// ExploreResponse wraps an explored graph with timing.
type ExploreResponse struct {
	GraphData         *GraphData `json:"graph_data"`
	ExplorationTime   float64    `json:"exploration_time"`
	ArticlesProcessed int        `json:"articles_processed"`
}

// ExpandRequest is the payload for expanding one node of a graph.
type ExpandRequest struct {
	GraphData GraphData `json:"graph_data"`
	NodeID    string    `json:"node_id"`
	Depth     int       `json:"depth,omitempty"`
}

// PathRequest is the payload for a shortest-path search.
type PathRequest struct {
	FromArticle string `json:"from_article"`
	ToArticle   string `json:"to_article"`
	MaxDepth    int    `json:"max_depth,omitempty"`
}

// PathStep is one article along a path.
type PathStep struct {
	ArticleTitle string `json:"article_title"`
	URL          string `json:"url"`
	Step         int    `json:"step"`
}

// PathResponse is the result of a shortest-path search.
type PathResponse struct {
	PathFound        bool       `json:"path_found"`
	PathLength       int        `json:"path_length"`
	Path             []PathStep `json:"path"`
	ExplorationTime  float64    `json:"exploration_time"`
	ArticlesExplored int        `json:"articles_explored"`
	SearchTruncated  bool       `json:"search_truncated"`
}

// NodeCentrality pairs a node id with its centrality.
type NodeCentrality struct {
	ID         string  `json:"id"`
	Centrality float64 `json:"centrality"`
}

// MetricsReport summarizes a graph.
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

// Article is an article summary.
type Article struct {
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	URL       string `json:"url"`
	PageID    *int64 `json:"page_id,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	LinkCount int    `json:"link_count"`
}

// SearchResult is one article search hit.
type SearchResult struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	URL       string `json:"url"`
	PageID    *int64 `json:"page_id,omitempty"`
	WordCount int    `json:"word_count"`
	Size      int    `json:"size"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	TotalCount int            `json:"total_count"`
	SearchTerm string         `json:"search_term"`
}

// Exploration is a saved graph snapshot.
type Exploration struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	RootNode    string    `json:"root_node"`
	GraphData   GraphData `json:"graph_data"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaveExplorationRequest is the payload for creating or replacing an exploration.
type SaveExplorationRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	RootNode    string    `json:"root_node"`
	GraphData   GraphData `json:"graph_data"`
	Tags        []string  `json:"tags,omitempty"`
}

// ListExplorationsOptions filters and paginates saved explorations.
type ListExplorationsOptions struct {
	Page     int
	PageSize int
	Search   string
	Tag      string
	RootNode string
}

// ExplorationList is a page of saved explorations.
type ExplorationList struct {
	Explorations []Exploration `json:"explorations"`
	TotalCount   int           `json:"total_count"`
	Page         int           `json:"page"`
	PageSize     int           `json:"page_size"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	Database       string  `json:"database"`
	Provider       string  `json:"provider"`
	CachedArticles int     `json:"cached_articles"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// ReadyResponse is returned by the readiness endpoint.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
