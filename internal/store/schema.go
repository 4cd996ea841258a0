package store

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// schemaStatements create the star schema: shared dimensions referenced by
// surrogate key from the fact tables. Everything is IF NOT EXISTS so the
// schema can be re-applied against an existing warehouse.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dim_teams (
		team_id INTEGER PRIMARY KEY AUTOINCREMENT,
		team_name TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dim_players (
		player_id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT UNIQUE NOT NULL,
		team_id INTEGER,
		FOREIGN KEY (team_id) REFERENCES dim_teams(team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_venues (
		venue_id INTEGER PRIMARY KEY AUTOINCREMENT,
		venue_name TEXT,
		city TEXT,
		full_venue TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS dim_match_types (
		match_type_id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_type TEXT UNIQUE NOT NULL,
		overs_limit INTEGER,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS fact_matches (
		match_id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_key TEXT UNIQUE,
		match_title TEXT,
		team1_id INTEGER,
		team2_id INTEGER,
		team1_score TEXT,
		team1_runs INTEGER,
		team1_wickets INTEGER,
		team1_overs REAL,
		team2_score TEXT,
		team2_runs INTEGER,
		team2_wickets INTEGER,
		team2_overs REAL,
		winner_id INTEGER,
		result TEXT,
		potm_player_id INTEGER,
		venue_id INTEGER,
		match_type_id INTEGER,
		FOREIGN KEY (team1_id) REFERENCES dim_teams(team_id),
		FOREIGN KEY (team2_id) REFERENCES dim_teams(team_id),
		FOREIGN KEY (winner_id) REFERENCES dim_teams(team_id),
		FOREIGN KEY (potm_player_id) REFERENCES dim_players(player_id),
		FOREIGN KEY (venue_id) REFERENCES dim_venues(venue_id),
		FOREIGN KEY (match_type_id) REFERENCES dim_match_types(match_type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_batting (
		batting_id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id INTEGER NOT NULL,
		player_id INTEGER NOT NULL,
		team_id INTEGER,
		innings_number INTEGER,
		batting_position INTEGER,
		runs INTEGER DEFAULT 0,
		balls INTEGER DEFAULT 0,
		fours INTEGER DEFAULT 0,
		sixes INTEGER DEFAULT 0,
		strike_rate REAL DEFAULT 0,
		dismissal_type TEXT,
		is_not_out BOOLEAN DEFAULT 0,
		FOREIGN KEY (match_id) REFERENCES fact_matches(match_id),
		FOREIGN KEY (player_id) REFERENCES dim_players(player_id),
		FOREIGN KEY (team_id) REFERENCES dim_teams(team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_bowling (
		bowling_id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id INTEGER NOT NULL,
		player_id INTEGER NOT NULL,
		team_id INTEGER,
		innings_number INTEGER,
		overs REAL DEFAULT 0,
		maidens INTEGER DEFAULT 0,
		runs_conceded INTEGER DEFAULT 0,
		wickets INTEGER DEFAULT 0,
		economy REAL DEFAULT 0,
		FOREIGN KEY (match_id) REFERENCES fact_matches(match_id),
		FOREIGN KEY (player_id) REFERENCES dim_players(player_id),
		FOREIGN KEY (team_id) REFERENCES dim_teams(team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_playing_xi (
		playing_xi_id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id INTEGER NOT NULL,
		team_id INTEGER NOT NULL,
		player_id INTEGER NOT NULL,
		designation TEXT,
		FOREIGN KEY (match_id) REFERENCES fact_matches(match_id),
		FOREIGN KEY (team_id) REFERENCES dim_teams(team_id),
		FOREIGN KEY (player_id) REFERENCES dim_players(player_id),
		UNIQUE(match_id, team_id, player_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_batting_match ON fact_batting(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_batting_player ON fact_batting(player_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bowling_match ON fact_bowling(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bowling_player ON fact_bowling(player_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_winner ON fact_matches(winner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_playing_xi_match ON fact_playing_xi(match_id)`,
}

// matchTypeSeed is the fixed match-type dimension. INSERT OR IGNORE keeps
// re-runs from duplicating or reordering the rows.
var matchTypeSeed = []MatchType{
	{MatchType: "T20I", OversLimit: sql.NullInt64{Int64: 20, Valid: true}, Description: "Twenty20 International"},
	{MatchType: "ODI", OversLimit: sql.NullInt64{Int64: 50, Valid: true}, Description: "One Day International"},
	{MatchType: "Test", Description: "Test Match"},
	{MatchType: "T20", OversLimit: sql.NullInt64{Int64: 20, Valid: true}, Description: "Twenty20"},
}

// EnsureSchema creates the dimension and fact tables, the supporting
// indexes, and the seeded match types. Idempotent.
func (db *Database) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	for _, mt := range matchTypeSeed {
		_, err := db.conn.ExecContext(ctx,
			`INSERT OR IGNORE INTO dim_match_types (match_type, overs_limit, description) VALUES (?, ?, ?)`,
			mt.MatchType, mt.OversLimit, mt.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to seed match type %s: %w", mt.MatchType, err)
		}
	}

	log.Printf("✓ Schema applied (%d statements, %d match types seeded)", len(schemaStatements), len(matchTypeSeed))
	return nil
}
