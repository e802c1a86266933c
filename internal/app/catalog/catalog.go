// Package catalog resolves tracks, albums, artists, genres and queue contexts
// from a music catalog.
package catalog

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/genre"
	"github.com/osa030/19player/internal/domain/track"
)

// ErrNotFound is returned when an ID is unknown to the catalog.
var ErrNotFound = errors.New("catalog: not found")

// Catalog is a read-only source of catalog entities.
// Track lists are returned in play order. Album lists carry no tracks;
// Album returns them.
type Catalog interface {
	// Track returns a single track.
	Track(ctx context.Context, id string) (*track.Track, error)

	// Tracks returns the tracks with the given IDs in the given order.
	// Unknown IDs are skipped.
	Tracks(ctx context.Context, ids []string) ([]track.Track, error)

	// Album returns an album with its tracks sorted by track number.
	Album(ctx context.Context, id string) (*album.Album, error)

	// AlbumTracks returns the album's tracks sorted by track number.
	AlbumTracks(ctx context.Context, albumID string) ([]track.Track, error)

	// ArtistTracks returns the artist's tracks.
	ArtistTracks(ctx context.Context, artistID string) ([]track.Track, error)

	// GenreTracks returns the tracks of a genre.
	GenreTracks(ctx context.Context, genreID string) ([]track.Track, error)

	// Artist returns a single artist.
	Artist(ctx context.Context, id string) (*artist.Artist, error)

	// ArtistAlbums returns the artist's albums.
	ArtistAlbums(ctx context.Context, artistID string) ([]album.Album, error)

	// Genre returns a single genre.
	Genre(ctx context.Context, id string) (*genre.Genre, error)

	// GenreAlbums returns the albums of a genre.
	GenreAlbums(ctx context.Context, genreID string) ([]album.Album, error)

	// GenreArtists returns the artists tagged with a genre.
	GenreArtists(ctx context.Context, genreID string) ([]artist.Artist, error)

	// Genres returns the browsable genres.
	Genres(ctx context.Context) ([]genre.Genre, error)

	// Artists returns the browsable artists.
	Artists(ctx context.Context) ([]artist.Artist, error)

	// Albums returns the browsable albums.
	Albums(ctx context.Context) ([]album.Album, error)

	// Name returns the backend name (used in config).
	Name() string
}

var (
	_ Catalog = (*Memory)(nil)
	_ Catalog = (*Spotify)(nil)
)
