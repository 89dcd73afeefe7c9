package client

import (
	"context"
	"net/url"
	"strconv"
)

// GraphService handles graph exploration operations.
type GraphService struct {
	c *Client
}

// ExploreOptions tunes an exploration. Zero fields use server defaults.
type ExploreOptions struct {
	Depth    int
	MaxNodes int
}

// Explore builds the link graph around title.
func (s *GraphService) Explore(ctx context.Context, title string, opts *ExploreOptions) (*ExploreResponse, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Depth > 0 {
			params.Set("depth", strconv.Itoa(opts.Depth))
		}
		if opts.MaxNodes > 0 {
			params.Set("max_nodes", strconv.Itoa(opts.MaxNodes))
		}
	}
	var resp ExploreResponse
	if err := s.c.get(ctx, "/api/v1/explore/"+titlePath(title), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Expand adds one hop of links around nodeID to graph and returns the new graph.
func (s *GraphService) Expand(ctx context.Context, graph GraphData, nodeID string) (*GraphData, error) {
	var resp GraphData
	req := ExpandRequest{GraphData: graph, NodeID: nodeID, Depth: 1}
	if err := s.c.post(ctx, "/api/v1/explore/expand", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Path finds the shortest link chain between two articles. maxDepth <= 0
// uses the server default.
func (s *GraphService) Path(ctx context.Context, from, to string, maxDepth int) (*PathResponse, error) {
	var resp PathResponse
	req := PathRequest{FromArticle: from, ToArticle: to, MaxDepth: maxDepth}
	if err := s.c.post(ctx, "/api/v1/path", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Metrics explores around title and returns summary statistics.
func (s *GraphService) Metrics(ctx context.Context, title string, depth int) (*MetricsReport, error) {
	params := url.Values{}
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}
	var resp MetricsReport
	if err := s.c.get(ctx, "/api/v1/graph/metrics/"+titlePath(title), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
