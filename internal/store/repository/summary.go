package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/wicket/internal/store"
)

// TableCount is a row count for one warehouse table
type TableCount struct {
	Table string
	Label string
	Count int64
}

// SummaryRepository provides read-only row counts for operator visibility
type SummaryRepository struct {
	q store.Querier
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(q store.Querier) *SummaryRepository {
	return &SummaryRepository{q: q}
}

var summaryTables = []TableCount{
	{Table: "dim_teams", Label: "Teams"},
	{Table: "dim_players", Label: "Players"},
	{Table: "dim_venues", Label: "Venues"},
	{Table: "fact_matches", Label: "Matches"},
	{Table: "fact_batting", Label: "Batting Records"},
	{Table: "fact_bowling", Label: "Bowling Records"},
	{Table: "fact_playing_xi", Label: "Playing XI Records"},
}

// TableCounts returns row counts for every dimension and fact table, in a
// fixed display order
func (r *SummaryRepository) TableCounts(ctx context.Context) ([]TableCount, error) {
	counts := make([]TableCount, 0, len(summaryTables))
	for _, tc := range summaryTables {
		// Table names come from the fixed list above, never from input.
		err := r.q.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tc.Table)).Scan(&tc.Count)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", tc.Table, err)
		}
		counts = append(counts, tc)
	}
	return counts, nil
}
