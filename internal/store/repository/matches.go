package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/wicket/internal/store"
)

// MatchRepository handles the match fact table
type MatchRepository struct {
	q store.Querier
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(q store.Querier) *MatchRepository {
	return &MatchRepository{q: q}
}

// Exists reports whether a match with this key was already loaded
func (r *MatchRepository) Exists(ctx context.Context, matchKey string) (bool, error) {
	var id int64
	err := r.q.QueryRowContext(ctx,
		`SELECT match_id FROM fact_matches WHERE match_key = ?`, matchKey,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying match: %w", err)
	}
	return true, nil
}

// Insert stores a new match row and fills in its id. Matches are immutable;
// reloading an existing key is handled by the Exists check upstream, never
// by an update.
func (r *MatchRepository) Insert(ctx context.Context, match *store.Match) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO fact_matches (
			match_key, match_title, team1_id, team2_id,
			team1_score, team1_runs, team1_wickets, team1_overs,
			team2_score, team2_runs, team2_wickets, team2_overs,
			winner_id, result, potm_player_id, venue_id, match_type_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		match.MatchKey, match.MatchTitle, match.Team1ID, match.Team2ID,
		match.Team1Score, match.Team1Runs, match.Team1Wickets, match.Team1Overs,
		match.Team2Score, match.Team2Runs, match.Team2Wickets, match.Team2Overs,
		match.WinnerID, match.Result, match.PotmPlayerID, match.VenueID, match.MatchTypeID,
	)
	if err != nil {
		return fmt.Errorf("inserting match: %w", err)
	}

	match.MatchID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading match id: %w", err)
	}
	return nil
}

// GetByKey finds a match by its dedup key
func (r *MatchRepository) GetByKey(ctx context.Context, matchKey string) (*store.Match, error) {
	match := &store.Match{}
	err := r.q.QueryRowContext(ctx, `
		SELECT match_id, match_key, match_title, team1_id, team2_id,
			team1_score, team1_runs, team1_wickets, team1_overs,
			team2_score, team2_runs, team2_wickets, team2_overs,
			winner_id, result, potm_player_id, venue_id, match_type_id
		FROM fact_matches
		WHERE match_key = ?`, matchKey,
	).Scan(
		&match.MatchID, &match.MatchKey, &match.MatchTitle, &match.Team1ID, &match.Team2ID,
		&match.Team1Score, &match.Team1Runs, &match.Team1Wickets, &match.Team1Overs,
		&match.Team2Score, &match.Team2Runs, &match.Team2Wickets, &match.Team2Overs,
		&match.WinnerID, &match.Result, &match.PotmPlayerID, &match.VenueID, &match.MatchTypeID,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match not found: %s", matchKey)
	}
	if err != nil {
		return nil, fmt.Errorf("querying match: %w", err)
	}

	return match, nil
}
