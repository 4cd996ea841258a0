package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fortuna/wicket/internal/store"
)

func newTestDB(t *testing.T) *store.Database {
	t.Helper()

	db, err := store.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}
