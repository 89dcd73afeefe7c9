package models

import "strings"

// Request defaults and bounds for the HTTP surface.
const (
	DefaultExploreDepth    = 2
	DefaultExploreMaxNodes = 30
	DefaultMetricsDepth    = 1
	DefaultExpandDepth     = 1
	DefaultPathMaxDepth    = 6
	DefaultSearchLimit     = 10
	DefaultSuggestLimit    = 5
	MaxIDLength            = 255
)

// ExploreParams are the query parameters of the explore endpoint.
type ExploreParams struct {
	Depth    int `json:"depth" validate:"min=1,max=3"`
	MaxNodes int `json:"max_nodes" validate:"min=10,max=200"`
}

// Validate checks the parameters are within the API's accepted range.
func (p *ExploreParams) Validate() error {
	return validateStruct(p)
}

// MetricsParams are the query parameters of the graph metrics endpoint.
type MetricsParams struct {
	Depth int `json:"depth" validate:"min=1,max=3"`
}

// Validate checks the parameters are within the API's accepted range.
func (p *MetricsParams) Validate() error {
	return validateStruct(p)
}

// SearchParams are the query parameters of the search endpoint.
type SearchParams struct {
	Term  string `json:"term" validate:"required,max=100"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// Validate trims the term and checks bounds.
func (p *SearchParams) Validate() error {
	p.Term = strings.TrimSpace(p.Term)
	return validateStruct(p)
}

// SuggestParams are the query parameters of the suggestions endpoint.
type SuggestParams struct {
	Term  string `json:"term" validate:"required,max=50"`
	Limit int    `json:"limit" validate:"min=1,max=20"`
}

// Validate trims the term and checks bounds.
func (p *SuggestParams) Validate() error {
	p.Term = strings.TrimSpace(p.Term)
	return validateStruct(p)
}

// ExpandRequest is the payload for expanding one node of an existing graph.
type ExpandRequest struct {
	GraphData GraphData `json:"graph_data"`
	NodeID    string    `json:"node_id" validate:"required,max=255"`
	Depth     int       `json:"depth" validate:"min=0,max=3"`
}

// Validate checks the payload and applies defaults.
func (r *ExpandRequest) Validate() error {
	r.NodeID = strings.TrimSpace(r.NodeID)

	if err := validateStruct(r); err != nil {
		return err
	}

	if r.Depth == 0 {
		r.Depth = DefaultExpandDepth
	}

	return nil
}

// PathRequest is the payload for a shortest-path search.
type PathRequest struct {
	FromArticle string `json:"from_article" validate:"required,max=255"`
	ToArticle   string `json:"to_article" validate:"required,max=255"`
	MaxDepth    int    `json:"max_depth" validate:"min=0,max=10"`
}

// Validate checks the payload and applies defaults.
func (r *PathRequest) Validate() error {
	r.FromArticle = strings.TrimSpace(r.FromArticle)
	r.ToArticle = strings.TrimSpace(r.ToArticle)

	if err := validateStruct(r); err != nil {
		return err
	}

	if r.MaxDepth == 0 {
		r.MaxDepth = DefaultPathMaxDepth
	}

	return nil
}

// PathStep is one article along a resolved path.
type PathStep struct {
	ArticleTitle string `json:"article_title"`
	URL          string `json:"url"`
	Step         int    `json:"step"`
}

// PathResponse is returned by the path endpoint.
type PathResponse struct {
	PathFound        bool       `json:"path_found"`
	PathLength       int        `json:"path_length"`
	Path             []PathStep `json:"path"`
	ExplorationTime  float64    `json:"exploration_time"`
	ArticlesExplored int        `json:"articles_explored"`
	Truncated        bool       `json:"search_truncated"`
}

// ExploreResponse is returned by the explore endpoint.
type ExploreResponse struct {
	GraphData         *GraphData `json:"graph_data"`
	ExplorationTime   float64    `json:"exploration_time"`
	ArticlesProcessed int        `json:"articles_processed"`
}

// SearchResponse is returned by the search endpoint.
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	TotalCount int            `json:"total_count"`
	SearchTerm string         `json:"search_term"`
}
