package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/fortuna/wicket/internal/store"
	"github.com/fortuna/wicket/internal/store/repository"
)

// Loader ingests match documents into the warehouse. One LoadFile call is a
// single logical unit: every dimension and fact statement runs on one
// transaction, and the durable commit happens once, after the last document.
// There is no per-match error isolation; a storage failure aborts the run
// and rolls the whole batch back.
type Loader struct {
	db *store.Database
}

// NewLoader creates a loader over an open warehouse database
func NewLoader(db *store.Database) *Loader {
	return &Loader{db: db}
}

// Result reports what one load run did
type Result struct {
	Loaded  int
	Skipped int
}

// repositories bundles the per-entity repositories bound to the run's
// transaction
type repositories struct {
	teams      *repository.TeamRepository
	players    *repository.PlayerRepository
	venues     *repository.VenueRepository
	matchTypes *repository.MatchTypeRepository
	matches    *repository.MatchRepository
	stats      *repository.StatsRepository
}

func newRepositories(q store.Querier) *repositories {
	return &repositories{
		teams:      repository.NewTeamRepository(q),
		players:    repository.NewPlayerRepository(q),
		venues:     repository.NewVenueRepository(q),
		matchTypes: repository.NewMatchTypeRepository(q),
		matches:    repository.NewMatchRepository(q),
		stats:      repository.NewStatsRepository(q),
	}
}

// LoadFile reads a JSON match collection and loads every document in input
// order. Already-loaded matches (by match key) are skipped, never updated.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	var docs []MatchDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding input file: %w", err)
	}

	log.Printf("Loading %d matches...", len(docs))

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	repos := newRepositories(tx)

	result := &Result{}
	for i := range docs {
		loaded, err := l.loadMatch(ctx, repos, &docs[i])
		if err != nil {
			return nil, fmt.Errorf("loading match %d/%d: %w", i+1, len(docs), err)
		}
		if loaded {
			result.Loaded++
		} else {
			result.Skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing load: %w", err)
	}

	log.Printf("✓ Loaded: %d, Skipped: %d", result.Loaded, result.Skipped)
	return result, nil
}

// loadMatch ingests one document: dedup check, dimension resolution, match
// insert, then the playing-XI, batting and bowling fact rows. Returns false
// when the match key was already present.
func (l *Loader) loadMatch(ctx context.Context, repos *repositories, doc *MatchDocument) (bool, error) {
	info := &doc.MatchInfo

	matchKey := doc.MatchURL
	if matchKey == "" {
		matchKey = fmt.Sprintf("%s_%s_%s", info.Team1Name, info.Team2Name, doc.MatchTitle)
	}
	matchTitle := doc.MatchTitle
	if matchTitle == "" {
		matchTitle = info.MatchTitle
	}
	if matchTitle == "" {
		matchTitle = "Unknown"
	}

	exists, err := repos.matches.Exists(ctx, matchKey)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	team1ID, err := repos.teams.GetOrCreate(ctx, info.Team1Name)
	if err != nil {
		return false, err
	}
	team2ID, err := repos.teams.GetOrCreate(ctx, info.Team2Name)
	if err != nil {
		return false, err
	}
	// Free-text winners like "Match Tied" that are not one of the two sides
	// still land in dim_teams.
	winnerID, err := repos.teams.GetOrCreate(ctx, info.Winner)
	if err != nil {
		return false, err
	}
	venueID, err := repos.venues.GetOrCreate(ctx, info.Venue)
	if err != nil {
		return false, err
	}
	matchTypeID, err := repos.matchTypes.ClassifyTitle(ctx, doc.MatchTitle)
	if err != nil {
		return false, err
	}

	team1Score := ParseScore(info.Team1Score)
	team2Score := ParseScore(info.Team2Score)

	var potmID sql.NullInt64
	if info.PlayerOfMatch != "" {
		potmID, err = repos.players.GetOrCreate(ctx, info.PlayerOfMatch, winnerID)
		if err != nil {
			return false, err
		}
	}

	match := &store.Match{
		MatchKey:     matchKey,
		MatchTitle:   matchTitle,
		Team1ID:      team1ID,
		Team2ID:      team2ID,
		Team1Score:   nullString(info.Team1Score),
		Team1Runs:    team1Score.Runs,
		Team1Wickets: team1Score.Wickets,
		Team1Overs:   team1Score.Overs,
		Team2Score:   nullString(info.Team2Score),
		Team2Runs:    team2Score.Runs,
		Team2Wickets: team2Score.Wickets,
		Team2Overs:   team2Score.Overs,
		WinnerID:     winnerID,
		Result:       nullString(info.Result),
		PotmPlayerID: potmID,
		VenueID:      venueID,
		MatchTypeID:  matchTypeID,
	}
	if err := repos.matches.Insert(ctx, match); err != nil {
		return false, err
	}

	playerTeams, err := l.loadPlayingXI(ctx, repos, doc, match.MatchID, team1ID, team2ID)
	if err != nil {
		return false, err
	}

	if err := l.loadBatting(ctx, repos, doc, match.MatchID, playerTeams, team1ID, team2ID); err != nil {
		return false, err
	}
	if err := l.loadBowling(ctx, repos, doc, match.MatchID, playerTeams, team1ID, team2ID); err != nil {
		return false, err
	}

	return true, nil
}

// loadPlayingXI records both line-ups and returns the lower-cased player
// name → team id map used to attribute scorecard entries to a side.
func (l *Loader) loadPlayingXI(ctx context.Context, repos *repositories, doc *MatchDocument, matchID int64, team1ID, team2ID sql.NullInt64) (map[string]sql.NullInt64, error) {
	playerTeams := make(map[string]sql.NullInt64)

	sheets := []struct {
		sheet  *TeamSheet
		teamID sql.NullInt64
	}{
		{&doc.Playing11.Team1, team1ID},
		{&doc.Playing11.Team2, team2ID},
	}

	for _, s := range sheets {
		for _, entry := range s.sheet.Players {
			if entry.Name == "" {
				continue
			}

			playerTeams[strings.ToLower(strings.TrimSpace(entry.Name))] = s.teamID

			playerID, err := repos.players.GetOrCreate(ctx, entry.Name, s.teamID)
			if err != nil {
				return nil, err
			}
			if !playerID.Valid {
				continue
			}

			err = repos.stats.InsertPlayingXI(ctx, &store.PlayingXIRecord{
				MatchID:     matchID,
				TeamID:      s.teamID,
				PlayerID:    playerID.Int64,
				Designation: entry.Designation,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return playerTeams, nil
}

// loadBatting walks every innings in order. A batsman missing from the
// playing-XI map is attributed by innings parity: odd innings bat for team1,
// even for team2. The batting position counts every listed entry, including
// nameless ones that are skipped.
func (l *Loader) loadBatting(ctx context.Context, repos *repositories, doc *MatchDocument, matchID int64, playerTeams map[string]sql.NullInt64, team1ID, team2ID sql.NullInt64) error {
	for innIdx := range doc.Scorecard {
		inningsNumber := innIdx + 1
		for pos := range doc.Scorecard[innIdx].Batting {
			entry := &doc.Scorecard[innIdx].Batting[pos]
			name := entry.PlayerName()
			if name == "" {
				continue
			}

			teamID, ok := playerTeams[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				if inningsNumber%2 == 1 {
					teamID = team1ID
				} else {
					teamID = team2ID
				}
			}

			playerID, err := repos.players.GetOrCreate(ctx, name, teamID)
			if err != nil {
				return err
			}
			if !playerID.Valid {
				continue
			}

			stats := ParseBattingStats(entry)
			err = repos.stats.InsertBatting(ctx, &store.BattingRecord{
				MatchID:         matchID,
				PlayerID:        playerID.Int64,
				TeamID:          teamID,
				InningsNumber:   inningsNumber,
				BattingPosition: pos + 1,
				Runs:            stats.Runs,
				Balls:           stats.Balls,
				Fours:           stats.Fours,
				Sixes:           stats.Sixes,
				StrikeRate:      stats.StrikeRate,
				DismissalType:   stats.Dismissal,
				IsNotOut:        stats.IsNotOut,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// loadBowling mirrors loadBatting with the parity fallback inverted: the
// bowling side in an innings is the side not batting in it.
func (l *Loader) loadBowling(ctx context.Context, repos *repositories, doc *MatchDocument, matchID int64, playerTeams map[string]sql.NullInt64, team1ID, team2ID sql.NullInt64) error {
	for innIdx := range doc.Scorecard {
		inningsNumber := innIdx + 1
		for i := range doc.Scorecard[innIdx].Bowling {
			entry := &doc.Scorecard[innIdx].Bowling[i]
			name := entry.PlayerName()
			if name == "" {
				continue
			}

			teamID, ok := playerTeams[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				if inningsNumber%2 == 1 {
					teamID = team2ID
				} else {
					teamID = team1ID
				}
			}

			playerID, err := repos.players.GetOrCreate(ctx, name, teamID)
			if err != nil {
				return err
			}
			if !playerID.Valid {
				continue
			}

			stats := ParseBowlingStats(entry)
			err = repos.stats.InsertBowling(ctx, &store.BowlingRecord{
				MatchID:       matchID,
				PlayerID:      playerID.Int64,
				TeamID:        teamID,
				InningsNumber: inningsNumber,
				Overs:         stats.Overs,
				Maidens:       stats.Maidens,
				RunsConceded:  stats.RunsConceded,
				Wickets:       stats.Wickets,
				Economy:       stats.Economy,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
