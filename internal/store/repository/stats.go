package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/wicket/internal/store"
)

// StatsRepository handles the per-innings fact tables: batting, bowling and
// the playing XI
type StatsRepository struct {
	q store.Querier
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(q store.Querier) *StatsRepository {
	return &StatsRepository{q: q}
}

// InsertBatting stores one batting performance row
func (r *StatsRepository) InsertBatting(ctx context.Context, rec *store.BattingRecord) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO fact_batting (
			match_id, player_id, team_id, innings_number, batting_position,
			runs, balls, fours, sixes, strike_rate, dismissal_type, is_not_out
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.PlayerID, rec.TeamID, rec.InningsNumber, rec.BattingPosition,
		rec.Runs, rec.Balls, rec.Fours, rec.Sixes, rec.StrikeRate, rec.DismissalType, rec.IsNotOut,
	)
	if err != nil {
		return fmt.Errorf("inserting batting record: %w", err)
	}

	rec.BattingID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading batting id: %w", err)
	}
	return nil
}

// InsertBowling stores one bowling performance row
func (r *StatsRepository) InsertBowling(ctx context.Context, rec *store.BowlingRecord) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO fact_bowling (
			match_id, player_id, team_id, innings_number,
			overs, maidens, runs_conceded, wickets, economy
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.PlayerID, rec.TeamID, rec.InningsNumber,
		rec.Overs, rec.Maidens, rec.RunsConceded, rec.Wickets, rec.Economy,
	)
	if err != nil {
		return fmt.Errorf("inserting bowling record: %w", err)
	}

	rec.BowlingID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading bowling id: %w", err)
	}
	return nil
}

// InsertPlayingXI stores one fielded-player row. The (match, team, player)
// triple is unique; inserting it again is a no-op, not an error.
func (r *StatsRepository) InsertPlayingXI(ctx context.Context, rec *store.PlayingXIRecord) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT OR IGNORE INTO fact_playing_xi (match_id, team_id, player_id, designation)
		VALUES (?, ?, ?, ?)`,
		rec.MatchID, rec.TeamID, rec.PlayerID, rec.Designation,
	)
	if err != nil {
		return fmt.Errorf("inserting playing-xi record: %w", err)
	}
	return nil
}
