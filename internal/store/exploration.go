package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikigraph/internal/models"
)

// ExplorationStore saves and loads exploration snapshots.
type ExplorationStore struct {
	Base
}

// NewExplorationStore creates an ExplorationStore.
func NewExplorationStore(base Base) *ExplorationStore {
	return &ExplorationStore{Base: base}
}

// CreateExploration inserts a new exploration and returns it with its
// generated id and timestamps.
func (s *ExplorationStore) CreateExploration(ctx context.Context, req models.CreateExplorationRequest) (*models.Exploration, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	graphJSON, err := json.Marshal(req.GraphData)
	if err != nil {
		return nil, fmt.Errorf("marshalling graph data: %w", err)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	query := `INSERT INTO explorations (id, name, description, root_node, graph_data, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + explorationColumns

	row := s.Pool.QueryRow(ctx, query,
		uuid.New(), req.Name, req.Description, req.RootNode, graphJSON, tags)

	e, err := scanExploration(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("inserting exploration: %w", err)
	}

	s.Log.WithFields(logrus.Fields{
		"id":        e.ID,
		"root_node": e.RootNode,
		"nodes":     e.GraphData.TotalNodes,
	}).Debug("exploration saved")

	return e, nil
}

// ListExplorations returns one page of explorations, newest first, with the
// total number of rows matching the filters.
func (s *ExplorationStore) ListExplorations(ctx context.Context, opts models.ExplorationListOpts) (*models.ExplorationList, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts.Normalize()

	where, args := explorationFilter(opts)

	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("beginning read transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // read-only transaction, rollback is a no-op after commit.

	var total int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM explorations"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting explorations: %w", err)
	}

	argIdx := len(args) + 1
	query := fmt.Sprintf(`SELECT %s FROM explorations%s
		ORDER BY created_at DESC, name ASC
		LIMIT $%d OFFSET $%d`, explorationColumns, where, argIdx, argIdx+1)
	args = append(args, opts.PageSize, opts.Offset())

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing explorations: %w", err)
	}
	defer rows.Close()

	list := &models.ExplorationList{
		Explorations: []models.Exploration{},
		TotalCount:   total,
		Page:         opts.Page,
		PageSize:     opts.PageSize,
	}

	for rows.Next() {
		e, err := scanExploration(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning exploration: %w", err)
		}

		list.Explorations = append(list.Explorations, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating explorations: %w", err)
	}

	return list, nil
}

// explorationFilter builds the WHERE clause and its positional arguments.
func explorationFilter(opts models.ExplorationListOpts) (string, []any) {
	var conds []string
	var args []any
	argIdx := 1

	if term := strings.TrimSpace(opts.Search); term != "" {
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(term)+"%")
		argIdx++
	}

	if tag := strings.TrimSpace(opts.Tag); tag != "" {
		conds = append(conds, fmt.Sprintf("$%d = ANY(tags)", argIdx))
		args = append(args, tag)
		argIdx++
	}

	if root := strings.TrimSpace(opts.RootNode); root != "" {
		conds = append(conds, fmt.Sprintf("root_node = $%d", argIdx))
		args = append(args, root)
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// GetExploration returns the exploration with the given id.
func (s *ExplorationStore) GetExploration(ctx context.Context, id string) (*models.Exploration, error) {
	uid, err := parseExplorationID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx,
		"SELECT "+explorationColumns+" FROM explorations WHERE id = $1", uid)

	e, err := scanExploration(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrExplorationNotFound
		}

		return nil, fmt.Errorf("getting exploration: %w", err)
	}

	return e, nil
}

// UpdateExploration replaces every user-editable field of an exploration and
// bumps updated_at.
func (s *ExplorationStore) UpdateExploration(ctx context.Context, id string, req models.CreateExplorationRequest) (*models.Exploration, error) {
	uid, err := parseExplorationID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	graphJSON, err := json.Marshal(req.GraphData)
	if err != nil {
		return nil, fmt.Errorf("marshalling graph data: %w", err)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	query := `UPDATE explorations
		SET name = $2, description = $3, root_node = $4, graph_data = $5, tags = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + explorationColumns

	row := s.Pool.QueryRow(ctx, query, uid, req.Name, req.Description, req.RootNode, graphJSON, tags)

	e, err := scanExploration(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrExplorationNotFound
		}

		return nil, fmt.Errorf("updating exploration: %w", err)
	}

	return e, nil
}

// DeleteExploration removes the exploration with the given id.
func (s *ExplorationStore) DeleteExploration(ctx context.Context, id string) error {
	uid, err := parseExplorationID(id)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM explorations WHERE id = $1", uid)
	if err != nil {
		return fmt.Errorf("deleting exploration: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrExplorationNotFound
	}

	return nil
}

// parseExplorationID rejects ids that are not UUIDs.
func parseExplorationID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, models.InvalidParameter("invalid exploration id %q", id)
	}

	return uid, nil
}
