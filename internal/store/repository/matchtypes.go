package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fortuna/wicket/internal/store"
)

// MatchTypeRepository handles the seeded match-type dimension
type MatchTypeRepository struct {
	q store.Querier
}

// NewMatchTypeRepository creates a new match-type repository
func NewMatchTypeRepository(q store.Querier) *MatchTypeRepository {
	return &MatchTypeRepository{q: q}
}

// ClassifyTitle maps a match title onto one of the seeded match types by
// substring, in strict order. The T20-family check runs first with an OR
// over both markers, so any t20 marker routes to T20I whether or not the
// "i" is present. Titles with no marker default to T20.
func (r *MatchTypeRepository) ClassifyTitle(ctx context.Context, title string) (sql.NullInt64, error) {
	if title == "" {
		return sql.NullInt64{}, nil
	}

	lower := strings.ToLower(title)
	var matchType string
	switch {
	case strings.Contains(lower, "t20i") || strings.Contains(lower, "t20"):
		matchType = "T20I"
	case strings.Contains(lower, "odi"):
		matchType = "ODI"
	case strings.Contains(lower, "test"):
		matchType = "Test"
	default:
		matchType = "T20"
	}

	var id int64
	err := r.q.QueryRowContext(ctx,
		`SELECT match_type_id FROM dim_match_types WHERE match_type = ?`, matchType,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return sql.NullInt64{}, nil
	}
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("querying match type: %w", err)
	}

	return sql.NullInt64{Int64: id, Valid: true}, nil
}

// GetAll returns the seeded match types in insertion order
func (r *MatchTypeRepository) GetAll(ctx context.Context) ([]*store.MatchType, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT match_type_id, match_type, overs_limit, description FROM dim_match_types ORDER BY match_type_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying match types: %w", err)
	}
	defer rows.Close()

	var matchTypes []*store.MatchType
	for rows.Next() {
		mt := &store.MatchType{}
		if err := rows.Scan(&mt.MatchTypeID, &mt.MatchType, &mt.OversLimit, &mt.Description); err != nil {
			return nil, fmt.Errorf("scanning match type: %w", err)
		}
		matchTypes = append(matchTypes, mt)
	}

	return matchTypes, rows.Err()
}
