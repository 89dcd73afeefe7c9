package client

import (
	"context"
	"net/url"
	"strconv"
)

// ExplorationService handles saved explorations.
type ExplorationService struct {
	c *Client
}

// Create saves a new exploration.
func (s *ExplorationService) Create(ctx context.Context, req SaveExplorationRequest) (*Exploration, error) {
	var resp Exploration
	if err := s.c.post(ctx, "/api/v1/explorations", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns a page of saved explorations, newest first.
func (s *ExplorationService) List(ctx context.Context, opts *ListExplorationsOptions) (*ExplorationList, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Page > 0 {
			params.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			params.Set("page_size", strconv.Itoa(opts.PageSize))
		}
		if opts.Search != "" {
			params.Set("search", opts.Search)
		}
		if opts.Tag != "" {
			params.Set("tag", opts.Tag)
		}
		if opts.RootNode != "" {
			params.Set("root_node", opts.RootNode)
		}
	}
	var resp ExplorationList
	if err := s.c.get(ctx, "/api/v1/explorations", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns one saved exploration.
func (s *ExplorationService) Get(ctx context.Context, id string) (*Exploration, error) {
	var resp Exploration
	if err := s.c.get(ctx, "/api/v1/explorations/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update replaces a saved exploration.
func (s *ExplorationService) Update(ctx context.Context, id string, req SaveExplorationRequest) (*Exploration, error) {
	var resp Exploration
	if err := s.c.put(ctx, "/api/v1/explorations/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a saved exploration.
func (s *ExplorationService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/explorations/"+url.PathEscape(id), nil)
}
