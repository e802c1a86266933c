package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	db, err := Open(context.Background(), Memory)
	require.NoError(t, err)
	defer db.Close()

	var version int
	require.NoError(t, db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, len(migrations), version)

	_, err = db.Exec("INSERT INTO liked_tracks (track_id, liked_at) VALUES ('t1', CURRENT_TIMESTAMP)")
	assert.NoError(t, err)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "player.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO liked_tracks (track_id, liked_at) VALUES ('t1', CURRENT_TIMESTAMP)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM liked_tracks").Scan(&n))
	assert.Equal(t, 1, n)
}
