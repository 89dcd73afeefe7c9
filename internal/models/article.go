package models

// ArticleContent is what the content provider returns for one article.
// Links is nil for summary-only fetches. LinksIncomplete marks a full fetch
// whose link lookup failed; such results must not be memoized.
type ArticleContent struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary,omitempty"`
	URL        string   `json:"url"`
	ExternalID *int64   `json:"page_id,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	Links      []string `json:"links,omitempty"`
	LinkCount  int      `json:"link_count"`

	LinksIncomplete bool `json:"-"`
}

// NodeAt materializes the article as a graph node with the given id and depth.
func (a *ArticleContent) NodeAt(id string, depth int) GraphNode {
	label := a.Title
	if label == "" {
		label = id
	}

	return GraphNode{
		ID:         id,
		Label:      label,
		Summary:    a.Summary,
		URL:        a.URL,
		ExternalID: a.ExternalID,
		Depth:      depth,
		ImageURL:   a.ImageURL,
	}
}

// SearchResult is a single article hit from a title/full-text search.
type SearchResult struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	URL        string `json:"url"`
	ExternalID *int64 `json:"page_id,omitempty"`
	WordCount  int    `json:"word_count"`
	Size       int    `json:"size"`
}
