package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fortuna/wicket/internal/store"
)

// PlayerRepository handles the player dimension
type PlayerRepository struct {
	q store.Querier
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(q store.Querier) *PlayerRepository {
	return &PlayerRepository{q: q}
}

// GetOrCreate resolves a player by exact name (trimmed, case preserved),
// inserting the row on first reference. A player first seen without a team
// gains the first team it is later seen with; the association is never
// overwritten after that. An empty name resolves to no player.
func (r *PlayerRepository) GetOrCreate(ctx context.Context, name string, teamID sql.NullInt64) (sql.NullInt64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return sql.NullInt64{}, nil
	}

	var (
		id           int64
		existingTeam sql.NullInt64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT player_id, team_id FROM dim_players WHERE player_name = ?`, name,
	).Scan(&id, &existingTeam)

	switch {
	case err == nil:
		if !existingTeam.Valid && teamID.Valid {
			if _, err := r.q.ExecContext(ctx,
				`UPDATE dim_players SET team_id = ? WHERE player_id = ?`, teamID, id,
			); err != nil {
				return sql.NullInt64{}, fmt.Errorf("backfilling player team: %w", err)
			}
		}
		return sql.NullInt64{Int64: id, Valid: true}, nil
	case err != sql.ErrNoRows:
		return sql.NullInt64{}, fmt.Errorf("querying player: %w", err)
	}

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO dim_players (player_name, team_id) VALUES (?, ?)`, name, teamID,
	)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("inserting player: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("reading player id: %w", err)
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

// GetByName finds a player by exact name
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*store.Player, error) {
	player := &store.Player{}
	err := r.q.QueryRowContext(ctx,
		`SELECT player_id, player_name, team_id FROM dim_players WHERE player_name = ?`,
		strings.TrimSpace(name),
	).Scan(&player.PlayerID, &player.PlayerName, &player.TeamID)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}
