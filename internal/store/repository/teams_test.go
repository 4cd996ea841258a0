package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_GetOrCreate_Normalizes(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeamRepository(db.DB())
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "india")
	require.NoError(t, err)
	require.True(t, first.Valid)

	second, err := repo.GetOrCreate(ctx, "INDIA ")
	require.NoError(t, err)
	require.True(t, second.Valid)

	assert.Equal(t, first.Int64, second.Int64, "case variants resolve to one team")

	team, err := repo.GetByID(ctx, first.Int64)
	require.NoError(t, err)
	assert.Equal(t, "India", team.TeamName)
}

func TestTeamRepository_GetOrCreate_MultiWordTitleCase(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeamRepository(db.DB())
	ctx := context.Background()

	id, err := repo.GetOrCreate(ctx, "new zealand")
	require.NoError(t, err)
	require.True(t, id.Valid)

	team, err := repo.GetByID(ctx, id.Int64)
	require.NoError(t, err)
	assert.Equal(t, "New Zealand", team.TeamName)
}

func TestTeamRepository_GetOrCreate_EmptyName(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeamRepository(db.DB())
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		id, err := repo.GetOrCreate(ctx, name)
		require.NoError(t, err)
		assert.False(t, id.Valid, "name %q", name)
	}
}

func TestTeamRepository_GetOrCreate_DistinctTeams(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeamRepository(db.DB())
	ctx := context.Background()

	india, err := repo.GetOrCreate(ctx, "India")
	require.NoError(t, err)
	australia, err := repo.GetOrCreate(ctx, "Australia")
	require.NoError(t, err)

	assert.NotEqual(t, india.Int64, australia.Int64)
}
