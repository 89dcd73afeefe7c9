package store

import (
	"encoding/json"
	"fmt"

	"github.com/persistorai/wikigraph/internal/models"
)

// explorationColumns lists the columns selected for exploration queries.
const explorationColumns = `id::text, name, description, root_node, graph_data,
	tags, created_at, updated_at`

// scanExploration scans a single row into a models.Exploration.
func scanExploration(scan func(dest ...any) error) (*models.Exploration, error) {
	var e models.Exploration
	var graphJSON []byte

	err := scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.RootNode,
		&graphJSON,
		&e.Tags,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(graphJSON, &e.GraphData); err != nil {
		return nil, fmt.Errorf("unmarshalling graph data: %w", err)
	}

	if e.Tags == nil {
		e.Tags = []string{}
	}

	return &e, nil
}
