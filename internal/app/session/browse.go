package session

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/genre"
	"github.com/osa030/19player/internal/domain/track"
)

// ArtistPage is an artist together with its albums and tracks.
type ArtistPage struct {
	Artist *artist.Artist
	Albums []album.Album
	Tracks []track.Track
}

// GenrePage is a genre together with its albums, artists and tracks.
type GenrePage struct {
	Genre   *genre.Genre
	Albums  []album.Album
	Artists []artist.Artist
	Tracks  []track.Track
}

// Artist returns the artist page.
func (m *Manager) Artist(ctx context.Context, artistID string) (*ArtistPage, error) {
	if artistID == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "artist id is required")
	}

	a, err := m.catalog.Artist(ctx, artistID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve artist %s", artistID)
	}
	albums, err := m.catalog.ArtistAlbums(ctx, artistID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve albums of artist %s", artistID)
	}
	tracks, err := m.catalog.ArtistTracks(ctx, artistID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve tracks of artist %s", artistID)
	}
	return &ArtistPage{Artist: a, Albums: albums, Tracks: tracks}, nil
}

// Genre returns the genre page.
func (m *Manager) Genre(ctx context.Context, genreID string) (*GenrePage, error) {
	if genreID == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "genre id is required")
	}

	g, err := m.catalog.Genre(ctx, genreID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve genre %s", genreID)
	}
	albums, err := m.catalog.GenreAlbums(ctx, genreID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve albums of genre %s", genreID)
	}
	artists, err := m.catalog.GenreArtists(ctx, genreID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve artists of genre %s", genreID)
	}
	tracks, err := m.catalog.GenreTracks(ctx, genreID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve tracks of genre %s", genreID)
	}
	return &GenrePage{Genre: g, Albums: albums, Artists: artists, Tracks: tracks}, nil
}

// Genres returns the browsable genres.
func (m *Manager) Genres(ctx context.Context) ([]genre.Genre, error) {
	genres, err := m.catalog.Genres(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}
	return genres, nil
}

// Artists returns the browsable artists.
func (m *Manager) Artists(ctx context.Context) ([]artist.Artist, error) {
	artists, err := m.catalog.Artists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}
	return artists, nil
}

// Albums returns the browsable albums, without tracks.
func (m *Manager) Albums(ctx context.Context) ([]album.Album, error) {
	albums, err := m.catalog.Albums(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list albums")
	}
	return albums, nil
}
