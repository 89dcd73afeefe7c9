package models

import (
	"strings"
	"time"
)

// Exploration is a named, saved graph snapshot.
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

// CreateExplorationRequest is the payload for saving an exploration.
type CreateExplorationRequest struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description" validate:"max=500"`
	RootNode    string    `json:"root_node" validate:"required,max=255"`
	GraphData   GraphData `json:"graph_data"`
	Tags        []string  `json:"tags" validate:"max=20,dive,required,max=50"`
}

// Validate checks that required fields are present and within limits.
func (r *CreateExplorationRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.RootNode = strings.TrimSpace(r.RootNode)

	if err := validateStruct(r); err != nil {
		return err
	}

	if r.GraphData.TotalNodes != len(r.GraphData.Nodes) || r.GraphData.TotalEdges != len(r.GraphData.Edges) {
		return InvalidParameter("graph_data totals do not match node and edge lists")
	}

	if r.Tags == nil {
		r.Tags = []string{}
	}

	return nil
}

// Exploration list bounds.
const (
	DefaultExplorationPageSize = 10
	MaxExplorationPageSize     = 50
)

// ExplorationListOpts filters and paginates saved explorations.
type ExplorationListOpts struct {
	Page     int
	PageSize int
	Search   string
	Tag      string
	RootNode string
}

// Normalize clamps pagination to valid bounds.
func (o *ExplorationListOpts) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}

	if o.PageSize < 1 {
		o.PageSize = DefaultExplorationPageSize
	}

	if o.PageSize > MaxExplorationPageSize {
		o.PageSize = MaxExplorationPageSize
	}
}

// Offset returns the row offset for the current page.
func (o *ExplorationListOpts) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// ExplorationList is a page of saved explorations.
type ExplorationList struct {
	Explorations []Exploration `json:"explorations"`
	TotalCount   int           `json:"total_count"`
	Page         int           `json:"page"`
	PageSize     int           `json:"page_size"`
}
