package client

import (
	"context"
	"net/url"
	"strconv"
)

// SearchService handles article search and lookup.
type SearchService struct {
	c *Client
}

// Articles searches Wikipedia for term. limit <= 0 uses the server default.
func (s *SearchService) Articles(ctx context.Context, term string, limit int) (*SearchResponse, error) {
	params := url.Values{"term": {term}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp SearchResponse
	if err := s.c.get(ctx, "/api/v1/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Suggestions returns article titles for autocompletion.
func (s *SearchService) Suggestions(ctx context.Context, term string, limit int) ([]string, error) {
	params := url.Values{"term": {term}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var titles []string
	if err := s.c.get(ctx, "/api/v1/search/suggestions", params, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// Article returns the summary of a single article.
func (s *SearchService) Article(ctx context.Context, title string) (*Article, error) {
	var resp Article
	if err := s.c.get(ctx, "/api/v1/articles/"+titlePath(title), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
