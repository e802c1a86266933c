package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/genre"
	"github.com/osa030/19player/internal/domain/track"
)

const smallCatalog = `
media_base: https://media.example.com/
genres:
  - id: jazz
    name: Jazz
    color: "220 80% 50%"
  - id: rock
    name: Rock
artists:
  - id: ar1
    name: Midnight Jazz
    bio: Late-night trio.
    genres: [jazz]
  - id: ar2
    name: Voltage
    genres: [rock, jazz]
albums:
  - id: al1
    title: After Hours
    artist_id: ar1
    genre: jazz
    artwork_url: https://img.example.com/al1.jpg
tracks:
  - id: t3
    title: Third
    artist_id: ar1
    album_id: al1
    track_number: 3
    duration_sec: 120
    genre: jazz
    media: t3.mp3
  - id: t1
    title: First
    artist_id: ar1
    album_id: al1
    track_number: 1
    duration_sec: 367
    genre: jazz
    media: /t1.mp3
  - id: t2
    title: Second
    artist_id: ar1
    album_id: al1
    track_number: 2
    duration_sec: 298
    genre: jazz
    media: https://cdn.example.org/t2.mp3
  - id: single
    title: Loose
    artist_id: ar2
    duration_sec: 200
    genre: rock
    media: single.mp3
`

func newSmall(t *testing.T) *Memory {
	t.Helper()
	doc, err := ParseDocument([]byte(smallCatalog))
	require.NoError(t, err)
	m, err := NewMemory(doc)
	require.NoError(t, err)
	return m
}

func TestMemory_Track(t *testing.T) {
	m := newSmall(t)
	ctx := context.Background()

	tr, err := m.Track(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "First", tr.Title)
	assert.Equal(t, "Midnight Jazz", tr.ArtistName)
	assert.Equal(t, "After Hours", tr.AlbumTitle)
	assert.Equal(t, "https://img.example.com/al1.jpg", tr.ArtworkURL)
	assert.Equal(t, 367*time.Second, tr.Duration)
	assert.Equal(t, "https://media.example.com/t1.mp3", tr.MediaURL)

	t2, err := m.Track(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/t2.mp3", t2.MediaURL)

	_, err = m.Track(ctx, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemory_AlbumSortedByTrackNumber(t *testing.T) {
	m := newSmall(t)
	ctx := context.Background()

	a, err := m.Album(ctx, "al1")
	require.NoError(t, err)
	assert.Equal(t, "Midnight Jazz", a.ArtistName)
	assert.Equal(t, []string{"t1", "t2", "t3"}, a.TrackIDs())

	// The returned album is a copy
	a.Tracks[0].Title = "changed"
	again, err := m.AlbumTracks(ctx, "al1")
	require.NoError(t, err)
	assert.Equal(t, "First", again[0].Title)

	_, err = m.Album(ctx, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemory_ContextLookups(t *testing.T) {
	m := newSmall(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		lookup  func() ([]track.Track, error)
		want    []string
		wantErr error
	}{
		{
			name:   "artist tracks in catalog order",
			lookup: func() ([]track.Track, error) { return m.ArtistTracks(ctx, "ar1") },
			want:   []string{"t3", "t1", "t2"},
		},
		{
			name:   "genre tracks",
			lookup: func() ([]track.Track, error) { return m.GenreTracks(ctx, "rock") },
			want:   []string{"single"},
		},
		{
			name:    "unknown artist",
			lookup:  func() ([]track.Track, error) { return m.ArtistTracks(ctx, "ar9") },
			wantErr: ErrNotFound,
		},
		{
			name:    "unknown genre",
			lookup:  func() ([]track.Track, error) { return m.GenreTracks(ctx, "polka") },
			wantErr: ErrNotFound,
		},
		{
			name:   "explicit ids skip unknown",
			lookup: func() ([]track.Track, error) { return m.Tracks(ctx, []string{"t2", "ghost", "single"}) },
			want:   []string{"t2", "single"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.lookup()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, track.IDs(got))
		})
	}
}

func TestMemory_Browse(t *testing.T) {
	m := newSmall(t)
	ctx := context.Background()

	a, err := m.Artist(ctx, "ar1")
	require.NoError(t, err)
	assert.Equal(t, "Midnight Jazz", a.Name)
	assert.Equal(t, "Late-night trio.", a.Bio)
	a.Genres[0] = "changed"
	again, err := m.Artist(ctx, "ar1")
	require.NoError(t, err)
	assert.Equal(t, []string{"jazz"}, again.Genres)

	g, err := m.Genre(ctx, "jazz")
	require.NoError(t, err)
	assert.Equal(t, "Jazz", g.Name)
	assert.Equal(t, "220 80% 50%", g.Color)

	genres, err := m.Genres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"jazz", "rock"}, genreIDs(genres))

	artists, err := m.Artists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ar1", "ar2"}, artistIDs(artists))

	albums, err := m.Albums(ctx)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "al1", albums[0].ID)
	assert.Empty(t, albums[0].Tracks)
}

func TestMemory_BrowseRelations(t *testing.T) {
	m := newSmall(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		lookup  func() ([]string, error)
		want    []string
		wantErr error
	}{
		{
			name:   "albums by artist",
			lookup: func() ([]string, error) { return albumIDs(m.ArtistAlbums(ctx, "ar1")) },
			want:   []string{"al1"},
		},
		{
			name:   "artist without albums",
			lookup: func() ([]string, error) { return albumIDs(m.ArtistAlbums(ctx, "ar2")) },
			want:   []string{},
		},
		{
			name:   "albums by genre",
			lookup: func() ([]string, error) { return albumIDs(m.GenreAlbums(ctx, "jazz")) },
			want:   []string{"al1"},
		},
		{
			name:   "artists by genre",
			lookup: func() ([]string, error) { return artistIDsErr(m.GenreArtists(ctx, "jazz")) },
			want:   []string{"ar1", "ar2"},
		},
		{
			name:   "artists by second genre",
			lookup: func() ([]string, error) { return artistIDsErr(m.GenreArtists(ctx, "rock")) },
			want:   []string{"ar2"},
		},
		{
			name:    "unknown artist",
			lookup:  func() ([]string, error) { return albumIDs(m.ArtistAlbums(ctx, "ar9")) },
			wantErr: ErrNotFound,
		},
		{
			name:    "unknown genre albums",
			lookup:  func() ([]string, error) { return albumIDs(m.GenreAlbums(ctx, "polka")) },
			wantErr: ErrNotFound,
		},
		{
			name:    "unknown genre artists",
			lookup:  func() ([]string, error) { return artistIDsErr(m.GenreArtists(ctx, "polka")) },
			wantErr: ErrNotFound,
		},
		{
			name: "unknown artist lookup",
			lookup: func() ([]string, error) {
				_, err := m.Artist(ctx, "ar9")
				return nil, err
			},
			wantErr: ErrNotFound,
		},
		{
			name: "unknown genre lookup",
			lookup: func() ([]string, error) {
				_, err := m.Genre(ctx, "polka")
				return nil, err
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.lookup()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func albumIDs(albums []album.Album, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(albums))
	for _, a := range albums {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func artistIDsErr(artists []artist.Artist, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return artistIDs(artists), nil
}

func artistIDs(artists []artist.Artist) []string {
	ids := make([]string, 0, len(artists))
	for _, a := range artists {
		ids = append(ids, a.ID)
	}
	return ids
}

func genreIDs(genres []genre.Genre) []string {
	ids := make([]string, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestNewMemory_BrokenReferences(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{
			name: "track with unknown artist",
			doc: Document{
				Tracks: []TrackEntry{{ID: "t", Title: "T", ArtistID: "ghost"}},
			},
		},
		{
			name: "track with unknown album",
			doc: Document{
				Artists: []ArtistEntry{{ID: "a", Name: "A"}},
				Tracks:  []TrackEntry{{ID: "t", Title: "T", ArtistID: "a", AlbumID: "ghost"}},
			},
		},
		{
			name: "duplicate track",
			doc: Document{
				Artists: []ArtistEntry{{ID: "a", Name: "A"}},
				Tracks: []TrackEntry{
					{ID: "t", Title: "T", ArtistID: "a"},
					{ID: "t", Title: "T again", ArtistID: "a"},
				},
			},
		},
		{
			name: "duplicate genre",
			doc: Document{
				Genres:  []GenreEntry{{ID: "g", Name: "G"}, {ID: "g", Name: "G again"}},
				Artists: []ArtistEntry{{ID: "a", Name: "A"}},
				Tracks:  []TrackEntry{{ID: "t", Title: "T", ArtistID: "a"}},
			},
		},
		{
			name: "album with unknown artist",
			doc: Document{
				Albums: []AlbumEntry{{ID: "al", Title: "Al", ArtistID: "ghost"}},
				Tracks: []TrackEntry{{ID: "t", Title: "T", ArtistID: "ghost"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemory(&tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestParseDocument_Invalid(t *testing.T) {
	_, err := ParseDocument([]byte("tracks: []\n"))
	assert.Error(t, err, "empty catalog")

	_, err = ParseDocument([]byte("tracks:\n  - id: x\n"))
	assert.Error(t, err, "missing required fields")

	_, err = ParseDocument([]byte("tracks: {"))
	assert.Error(t, err, "malformed yaml")
}

func TestNewMemoryFromSettings(t *testing.T) {
	t.Run("built-in catalog", func(t *testing.T) {
		m, err := NewMemoryFromSettings(nil)
		require.NoError(t, err)

		a, err := m.Album(context.Background(), "album1")
		require.NoError(t, err)
		assert.Equal(t, "Neon Dreams", a.Title)
		assert.Equal(t, []string{"song1", "song2", "song3"}, a.TrackIDs())
		assert.True(t, a.Tracks[0].IsPlayable())

		genreTracks, err := m.GenreTracks(context.Background(), "hiphop")
		require.NoError(t, err)
		assert.Len(t, genreTracks, 5)

		genres, err := m.Genres(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, genres)
		for _, g := range genres {
			assert.NotEmpty(t, g.Color, g.ID)
		}
	})

	t.Run("file with media base override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o644))

		m, err := NewMemoryFromSettings(map[string]any{
			"path":       path,
			"media_base": "http://localhost:9000/media",
		})
		require.NoError(t, err)

		tr, err := m.Track(context.Background(), "single")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/media/single.mp3", tr.MediaURL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewMemoryFromSettings(map[string]any{"path": "/does/not/exist.yaml"})
		assert.Error(t, err)
	})
}
