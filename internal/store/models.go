package store

import "database/sql"

// Team is a row in dim_teams. Team names are title-cased before lookup, so
// "india" and "INDIA" resolve to the same row.
type Team struct {
	TeamID   int64
	TeamName string
}

// Player is a row in dim_players. Names are trimmed but keep their case, so
// differently-cased spellings are distinct players. The team association is
// filled in once, the first time the player is seen with a team.
type Player struct {
	PlayerID   int64
	PlayerName string
	TeamID     sql.NullInt64
}

// Venue is a row in dim_venues, keyed by the full venue string as scraped
type Venue struct {
	VenueID   int64
	VenueName string
	City      sql.NullString
	FullVenue string
}

// MatchType is a row in dim_match_types. The four rows are seeded at schema
// creation and never created dynamically.
type MatchType struct {
	MatchTypeID int64
	MatchType   string
	OversLimit  sql.NullInt64
	Description string
}

// Match is a row in fact_matches. A match is immutable once inserted; the
// match key is the dedup identity for the fixture.
type Match struct {
	MatchID      int64
	MatchKey     string
	MatchTitle   string
	Team1ID      sql.NullInt64
	Team2ID      sql.NullInt64
	Team1Score   sql.NullString
	Team1Runs    sql.NullInt64
	Team1Wickets sql.NullInt64
	Team1Overs   sql.NullFloat64
	Team2Score   sql.NullString
	Team2Runs    sql.NullInt64
	Team2Wickets sql.NullInt64
	Team2Overs   sql.NullFloat64
	WinnerID     sql.NullInt64
	Result       sql.NullString
	PotmPlayerID sql.NullInt64
	VenueID      sql.NullInt64
	MatchTypeID  sql.NullInt64
}

// BattingRecord is one batting entry in one innings of one match
type BattingRecord struct {
	BattingID       int64
	MatchID         int64
	PlayerID        int64
	TeamID          sql.NullInt64
	InningsNumber   int
	BattingPosition int
	Runs            int
	Balls           int
	Fours           int
	Sixes           int
	StrikeRate      float64
	DismissalType   string
	IsNotOut        bool
}

// BowlingRecord is one bowling entry in one innings of one match
type BowlingRecord struct {
	BowlingID     int64
	MatchID       int64
	PlayerID      int64
	TeamID        sql.NullInt64
	InningsNumber int
	Overs         float64
	Maidens       int
	RunsConceded  int
	Wickets       int
	Economy       float64
}

// PlayingXIRecord records one fielded player for one team in one match.
// The (match, team, player) triple is unique; re-insertion is ignored.
type PlayingXIRecord struct {
	PlayingXIID int64
	MatchID     int64
	TeamID      sql.NullInt64
	PlayerID    int64
	Designation string
}
