package catalog

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/track"
	"github.com/osa030/19player/internal/infra/spotify"
)

type fakeSpotify struct {
	genreLimit int
	albumLimit int
	artistIDs  []string
	albumIDs   []string
}

func (f *fakeSpotify) GetTrack(ctx context.Context, id string) (*track.Track, error) {
	if id == "missing" {
		return nil, errors.Wrap(spotify.ErrNotFound, "failed to get track")
	}
	return &track.Track{ID: id}, nil
}

func (f *fakeSpotify) GetTracks(ctx context.Context, ids []string) ([]track.Track, error) {
	result := make([]track.Track, len(ids))
	for i, id := range ids {
		result[i] = track.Track{ID: id}
	}
	return result, nil
}

func (f *fakeSpotify) GetAlbum(ctx context.Context, id string) (*album.Album, error) {
	if id == "missing" {
		return nil, errors.Mark(errors.New("spotify: 404"), spotify.ErrNotFound)
	}
	return &album.Album{ID: id, Tracks: []track.Track{{ID: "a1", TrackNumber: 1}, {ID: "a2", TrackNumber: 2}}}, nil
}

func (f *fakeSpotify) GetArtistTopTracks(ctx context.Context, id string) ([]track.Track, error) {
	return nil, errors.New("rate limit exceeded")
}

func (f *fakeSpotify) SearchGenre(ctx context.Context, genre string, limit int) ([]track.Track, error) {
	f.genreLimit = limit
	return []track.Track{{ID: "g1", Genre: genre}}, nil
}

func (f *fakeSpotify) GetArtist(ctx context.Context, id string) (*artist.Artist, error) {
	if id == "missing" {
		return nil, errors.Wrap(spotify.ErrNotFound, "failed to get artist")
	}
	return &artist.Artist{ID: id, Name: "Artist " + id}, nil
}

func (f *fakeSpotify) GetArtists(ctx context.Context, ids []string) ([]artist.Artist, error) {
	f.artistIDs = ids
	result := make([]artist.Artist, len(ids))
	for i, id := range ids {
		result[i] = artist.Artist{ID: id}
	}
	return result, nil
}

func (f *fakeSpotify) GetArtistAlbums(ctx context.Context, id string, limit int) ([]album.Album, error) {
	f.albumLimit = limit
	return []album.Album{{ID: id + "-al1"}, {ID: id + "-al2"}}, nil
}

func (f *fakeSpotify) GetAlbums(ctx context.Context, ids []string) ([]album.Album, error) {
	f.albumIDs = ids
	result := make([]album.Album, len(ids))
	for i, id := range ids {
		result[i] = album.Album{ID: id}
	}
	return result, nil
}

func (f *fakeSpotify) SearchGenreArtists(ctx context.Context, genre string, limit int) ([]artist.Artist, error) {
	f.genreLimit = limit
	return []artist.Artist{{ID: "ga1", Genres: []string{genre}}}, nil
}

func TestSpotify(t *testing.T) {
	client := &fakeSpotify{}
	c, err := NewSpotify(client, nil)
	require.NoError(t, err)
	ctx := context.Background()

	tr, err := c.Track(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", tr.ID)

	_, err = c.Track(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.AlbumTracks(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	tracks, err := c.AlbumTracks(ctx, "al")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, track.IDs(tracks))

	_, err = c.ArtistTracks(ctx, "ar")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	genreTracks, err := c.GenreTracks(ctx, "jazz")
	require.NoError(t, err)
	assert.Len(t, genreTracks, 1)
	assert.Equal(t, 20, client.genreLimit)

	empty, err := c.Tracks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// genreTrackSpotify answers genre searches with tracks from two albums.
type genreTrackSpotify struct {
	fakeSpotify
}

func (f *genreTrackSpotify) SearchGenre(ctx context.Context, genre string, limit int) ([]track.Track, error) {
	return []track.Track{
		{ID: "t1", AlbumID: "al1", AlbumTitle: "One", ArtistID: "ar1", ArtistName: "A"},
		{ID: "t2", AlbumID: "al2", AlbumTitle: "Two", ArtistID: "ar2", ArtistName: "B"},
		{ID: "t3", AlbumID: "al1", AlbumTitle: "One", ArtistID: "ar1", ArtistName: "A"},
		{ID: "t4"},
	}, nil
}

func TestSpotify_Browse(t *testing.T) {
	ctx := context.Background()

	t.Run("artist", func(t *testing.T) {
		client := &fakeSpotify{}
		c, err := NewSpotify(client, map[string]any{"album_limit": 5})
		require.NoError(t, err)

		a, err := c.Artist(ctx, "ar")
		require.NoError(t, err)
		assert.Equal(t, "Artist ar", a.Name)

		_, err = c.Artist(ctx, "missing")
		assert.True(t, errors.Is(err, ErrNotFound))

		albums, err := c.ArtistAlbums(ctx, "ar")
		require.NoError(t, err)
		assert.Len(t, albums, 2)
		assert.Equal(t, 5, client.albumLimit)
	})

	t.Run("genre is named after its id", func(t *testing.T) {
		c, err := NewSpotify(&fakeSpotify{}, nil)
		require.NoError(t, err)

		g, err := c.Genre(ctx, "hip-hop")
		require.NoError(t, err)
		assert.Equal(t, "hip-hop", g.ID)
		assert.Equal(t, "Hip Hop", g.Name)

		_, err = c.Genre(ctx, " ")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("genre albums are distinct albums of genre tracks", func(t *testing.T) {
		c, err := NewSpotify(&genreTrackSpotify{}, nil)
		require.NoError(t, err)

		albums, err := c.GenreAlbums(ctx, "rock")
		require.NoError(t, err)
		require.Len(t, albums, 2)
		assert.Equal(t, "al1", albums[0].ID)
		assert.Equal(t, "One", albums[0].Title)
		assert.Equal(t, "rock", albums[0].Genre)
		assert.Equal(t, "al2", albums[1].ID)
	})

	t.Run("genre artists", func(t *testing.T) {
		client := &fakeSpotify{}
		c, err := NewSpotify(client, map[string]any{"genre_limit": 7})
		require.NoError(t, err)

		artists, err := c.GenreArtists(ctx, "jazz")
		require.NoError(t, err)
		require.Len(t, artists, 1)
		assert.True(t, artists[0].HasGenre("jazz"))
		assert.Equal(t, 7, client.genreLimit)
	})

	t.Run("default listings", func(t *testing.T) {
		client := &fakeSpotify{}
		c, err := NewSpotify(client, nil)
		require.NoError(t, err)

		genres, err := c.Genres(ctx)
		require.NoError(t, err)
		assert.Len(t, genres, 5)
		assert.Equal(t, "Pop", genres[0].Name)

		artists, err := c.Artists(ctx)
		require.NoError(t, err)
		assert.Empty(t, artists)
		assert.Nil(t, client.artistIDs)

		albums, err := c.Albums(ctx)
		require.NoError(t, err)
		assert.Empty(t, albums)
		assert.Nil(t, client.albumIDs)
	})

	t.Run("configured listings", func(t *testing.T) {
		client := &fakeSpotify{}
		c, err := NewSpotify(client, map[string]any{
			"genres":  []string{"ambient"},
			"artists": []string{"x", "y"},
			"albums":  []string{"z"},
		})
		require.NoError(t, err)

		genres, err := c.Genres(ctx)
		require.NoError(t, err)
		require.Len(t, genres, 1)
		assert.Equal(t, "Ambient", genres[0].Name)

		artists, err := c.Artists(ctx)
		require.NoError(t, err)
		assert.Len(t, artists, 2)
		assert.Equal(t, []string{"x", "y"}, client.artistIDs)

		albums, err := c.Albums(ctx)
		require.NoError(t, err)
		assert.Len(t, albums, 1)
		assert.Equal(t, []string{"z"}, client.albumIDs)
	})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		catalogType string
		settings    map[string]any
		client      SpotifyClient
		wantName    string
		wantErr     bool
	}{
		{name: "memory", catalogType: "memory", wantName: "memory"},
		{name: "spotify", catalogType: "spotify", client: &fakeSpotify{}, wantName: "spotify"},
		{name: "spotify genre limit", catalogType: "spotify", client: &fakeSpotify{}, settings: map[string]any{"genre_limit": 10}, wantName: "spotify"},
		{name: "spotify genre limit out of range", catalogType: "spotify", client: &fakeSpotify{}, settings: map[string]any{"genre_limit": 500}, wantErr: true},
		{name: "spotify zero album limit takes default", catalogType: "spotify", client: &fakeSpotify{}, settings: map[string]any{"album_limit": 0}, wantName: "spotify"},
		{name: "spotify empty genre", catalogType: "spotify", client: &fakeSpotify{}, settings: map[string]any{"genres": []string{""}}, wantErr: true},
		{name: "spotify without client", catalogType: "spotify", wantErr: true},
		{name: "unknown", catalogType: "itunes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.catalogType, tt.settings, tt.client)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, c.Name())
		})
	}
}
