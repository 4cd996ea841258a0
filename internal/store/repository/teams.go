package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fortuna/wicket/internal/store"
)

var titleCaser = cases.Title(language.Und)

// TeamRepository handles the team dimension
type TeamRepository struct {
	q store.Querier
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(q store.Querier) *TeamRepository {
	return &TeamRepository{q: q}
}

// NormalizeTeamName trims and title-cases a raw team name
func NormalizeTeamName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

// GetOrCreate resolves a team name to its dimension id, inserting the row on
// first reference. An empty name resolves to no team. Rows are never updated
// or deleted; the dimension is append-only.
func (r *TeamRepository) GetOrCreate(ctx context.Context, name string) (sql.NullInt64, error) {
	normalized := NormalizeTeamName(name)
	if normalized == "" {
		return sql.NullInt64{}, nil
	}

	var id int64
	err := r.q.QueryRowContext(ctx,
		`SELECT team_id FROM dim_teams WHERE team_name = ?`, normalized,
	).Scan(&id)
	if err == nil {
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}
	if err != sql.ErrNoRows {
		return sql.NullInt64{}, fmt.Errorf("querying team: %w", err)
	}

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO dim_teams (team_name) VALUES (?)`, normalized,
	)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("inserting team: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("reading team id: %w", err)
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

// GetByID finds a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (*store.Team, error) {
	team := &store.Team{}
	err := r.q.QueryRowContext(ctx,
		`SELECT team_id, team_name FROM dim_teams WHERE team_id = ?`, teamID,
	).Scan(&team.TeamID, &team.TeamName)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found: %d", teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}
