package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/wicket/internal/store"
)

func TestStatsRepository_InsertPlayingXI_TripleIsUnique(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	teams := NewTeamRepository(db.DB())
	players := NewPlayerRepository(db.DB())
	matches := NewMatchRepository(db.DB())
	stats := NewStatsRepository(db.DB())

	teamID, err := teams.GetOrCreate(ctx, "India")
	require.NoError(t, err)
	playerID, err := players.GetOrCreate(ctx, "Rohit Sharma", teamID)
	require.NoError(t, err)

	match := &store.Match{MatchKey: "k1", MatchTitle: "1st ODI"}
	require.NoError(t, matches.Insert(ctx, match))

	rec := &store.PlayingXIRecord{
		MatchID:     match.MatchID,
		TeamID:      teamID,
		PlayerID:    playerID.Int64,
		Designation: "Captain",
	}
	require.NoError(t, stats.InsertPlayingXI(ctx, rec))
	require.NoError(t, stats.InsertPlayingXI(ctx, rec), "re-insertion is not an error")

	var n int
	require.NoError(t, db.DB().QueryRow(`SELECT COUNT(*) FROM fact_playing_xi`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestMatchRepository_ExistsAndInsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	matches := NewMatchRepository(db.DB())

	exists, err := matches.Exists(ctx, "https://example.org/m/9")
	require.NoError(t, err)
	assert.False(t, exists)

	match := &store.Match{
		MatchKey:   "https://example.org/m/9",
		MatchTitle: "2nd ODI",
		Team1Runs:  sql.NullInt64{Int64: 301, Valid: true},
	}
	require.NoError(t, matches.Insert(ctx, match))
	assert.NotZero(t, match.MatchID)

	exists, err = matches.Exists(ctx, "https://example.org/m/9")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := matches.GetByKey(ctx, "https://example.org/m/9")
	require.NoError(t, err)
	assert.Equal(t, match.MatchID, got.MatchID)
	require.True(t, got.Team1Runs.Valid)
	assert.Equal(t, int64(301), got.Team1Runs.Int64)
	assert.False(t, got.WinnerID.Valid)
}

func TestSummaryRepository_TableCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	teams := NewTeamRepository(db.DB())
	_, err := teams.GetOrCreate(ctx, "India")
	require.NoError(t, err)
	_, err = teams.GetOrCreate(ctx, "Australia")
	require.NoError(t, err)

	counts, err := NewSummaryRepository(db.DB()).TableCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 7)

	byTable := map[string]int64{}
	for _, c := range counts {
		byTable[c.Table] = c.Count
	}
	assert.Equal(t, int64(2), byTable["dim_teams"])
	assert.Equal(t, int64(0), byTable["fact_matches"])
}
