package library

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/19player/internal/infra/database"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	db, err := database.Open(context.Background(), database.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestLibrary_ToggleLike(t *testing.T) {
	l := newTestLibrary(t)
	ctx := context.Background()

	liked, err := l.ToggleLike(ctx, "song1")
	require.NoError(t, err)
	assert.True(t, liked)

	ids, err := l.LikedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"song1"}, ids)

	liked, err = l.ToggleLike(ctx, "song1")
	require.NoError(t, err)
	assert.False(t, liked)

	ids, err = l.LikedIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = l.ToggleLike(ctx, "")
	assert.Error(t, err)
}

func TestLibrary_LikedIDsKeepLikeOrder(t *testing.T) {
	l := newTestLibrary(t)
	ctx := context.Background()

	ids, err := l.LikedIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, id := range []string{"song3", "song1", "song2"} {
		_, err := l.ToggleLike(ctx, id)
		require.NoError(t, err)
	}
	// Unlike and like again moves song3 to the end
	_, err = l.ToggleLike(ctx, "song3")
	require.NoError(t, err)
	_, err = l.ToggleLike(ctx, "song3")
	require.NoError(t, err)

	ids, err = l.LikedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"song1", "song2", "song3"}, ids)
}
