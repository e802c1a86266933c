package catalog

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/genre"
	"github.com/osa030/19player/internal/domain/track"
	"github.com/osa030/19player/internal/infra/spotify"
)

// SpotifyClient defines the Spotify operations needed by the spotify catalog.
type SpotifyClient interface {
	GetTrack(ctx context.Context, trackID string) (*track.Track, error)
	GetTracks(ctx context.Context, trackIDs []string) ([]track.Track, error)
	GetAlbum(ctx context.Context, albumID string) (*album.Album, error)
	GetArtistTopTracks(ctx context.Context, artistID string) ([]track.Track, error)
	SearchGenre(ctx context.Context, genre string, limit int) ([]track.Track, error)
	GetArtist(ctx context.Context, artistID string) (*artist.Artist, error)
	GetArtists(ctx context.Context, artistIDs []string) ([]artist.Artist, error)
	GetArtistAlbums(ctx context.Context, artistID string, limit int) ([]album.Album, error)
	GetAlbums(ctx context.Context, albumIDs []string) ([]album.Album, error)
	SearchGenreArtists(ctx context.Context, genre string, limit int) ([]artist.Artist, error)
}

var _ SpotifyClient = (*spotify.Client)(nil)

// SpotifyConfig is the settings block for the spotify catalog.
// Spotify has no browsable index, so the listings come from settings.
type SpotifyConfig struct {
	GenreLimit int      `yaml:"genre_limit" mapstructure:"genre_limit" default:"20" validate:"gte=1,lte=50"`
	AlbumLimit int      `yaml:"album_limit" mapstructure:"album_limit" default:"20" validate:"gte=1,lte=50"`
	Genres     []string `yaml:"genres" mapstructure:"genres" default:"[\"pop\",\"rock\",\"jazz\",\"hip-hop\",\"electronic\"]" validate:"dive,required"`
	Artists    []string `yaml:"artists" mapstructure:"artists" validate:"dive,required"` // Spotify artist IDs
	Albums     []string `yaml:"albums" mapstructure:"albums" validate:"dive,required"`   // Spotify album IDs
}

// Spotify serves the catalog from the Spotify Web API. Media references are
// preview clips, so some tracks may not be playable.
type Spotify struct {
	client SpotifyClient
	config SpotifyConfig
}

// NewSpotify creates a Spotify-backed catalog.
func NewSpotify(client SpotifyClient, settings map[string]any) (*Spotify, error) {
	var config SpotifyConfig
	if err := decodeSettings(settings, &config); err != nil {
		return nil, err
	}
	return &Spotify{client: client, config: config}, nil
}

// Name implements Catalog.
func (s *Spotify) Name() string { return "spotify" }

// Track implements Catalog.
func (s *Spotify) Track(ctx context.Context, id string) (*track.Track, error) {
	t, err := s.client.GetTrack(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

// Tracks implements Catalog.
func (s *Spotify) Tracks(ctx context.Context, ids []string) ([]track.Track, error) {
	if len(ids) == 0 {
		return []track.Track{}, nil
	}
	tracks, err := s.client.GetTracks(ctx, ids)
	if err != nil {
		return nil, translate(err)
	}
	return tracks, nil
}

// Album implements Catalog.
func (s *Spotify) Album(ctx context.Context, id string) (*album.Album, error) {
	a, err := s.client.GetAlbum(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

// AlbumTracks implements Catalog.
func (s *Spotify) AlbumTracks(ctx context.Context, albumID string) ([]track.Track, error) {
	a, err := s.Album(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return a.Tracks, nil
}

// ArtistTracks implements Catalog. Spotify only exposes the artist's top tracks.
func (s *Spotify) ArtistTracks(ctx context.Context, artistID string) ([]track.Track, error) {
	tracks, err := s.client.GetArtistTopTracks(ctx, artistID)
	if err != nil {
		return nil, translate(err)
	}
	return tracks, nil
}

// GenreTracks implements Catalog.
func (s *Spotify) GenreTracks(ctx context.Context, genreID string) ([]track.Track, error) {
	tracks, err := s.client.SearchGenre(ctx, genreID, s.config.GenreLimit)
	if err != nil {
		return nil, translate(err)
	}
	return tracks, nil
}

// Artist implements Catalog.
func (s *Spotify) Artist(ctx context.Context, id string) (*artist.Artist, error) {
	a, err := s.client.GetArtist(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

// ArtistAlbums implements Catalog.
func (s *Spotify) ArtistAlbums(ctx context.Context, artistID string) ([]album.Album, error) {
	albums, err := s.client.GetArtistAlbums(ctx, artistID, s.config.AlbumLimit)
	if err != nil {
		return nil, translate(err)
	}
	return albums, nil
}

// Genre implements Catalog. Spotify genres are bare names, so any ID resolves.
func (s *Spotify) Genre(ctx context.Context, id string) (*genre.Genre, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Wrap(ErrNotFound, "genre with empty id")
	}
	g := spotifyGenre(id)
	return &g, nil
}

// GenreAlbums implements Catalog. The albums are those of the genre's tracks.
func (s *Spotify) GenreAlbums(ctx context.Context, genreID string) ([]album.Album, error) {
	tracks, err := s.GenreTracks(ctx, genreID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(tracks))
	albums := make([]album.Album, 0)
	for _, t := range tracks {
		if t.AlbumID == "" {
			continue
		}
		if _, ok := seen[t.AlbumID]; ok {
			continue
		}
		seen[t.AlbumID] = struct{}{}
		albums = append(albums, album.Album{
			ID:         t.AlbumID,
			Title:      t.AlbumTitle,
			ArtistID:   t.ArtistID,
			ArtistName: t.ArtistName,
			ArtworkURL: t.ArtworkURL,
			Genre:      genreID,
		})
	}
	return albums, nil
}

// GenreArtists implements Catalog.
func (s *Spotify) GenreArtists(ctx context.Context, genreID string) ([]artist.Artist, error) {
	artists, err := s.client.SearchGenreArtists(ctx, genreID, s.config.GenreLimit)
	if err != nil {
		return nil, translate(err)
	}
	return artists, nil
}

// Genres implements Catalog.
func (s *Spotify) Genres(ctx context.Context) ([]genre.Genre, error) {
	genres := make([]genre.Genre, 0, len(s.config.Genres))
	for _, id := range s.config.Genres {
		genres = append(genres, spotifyGenre(id))
	}
	return genres, nil
}

// Artists implements Catalog.
func (s *Spotify) Artists(ctx context.Context) ([]artist.Artist, error) {
	if len(s.config.Artists) == 0 {
		return []artist.Artist{}, nil
	}
	artists, err := s.client.GetArtists(ctx, s.config.Artists)
	if err != nil {
		return nil, translate(err)
	}
	return artists, nil
}

// Albums implements Catalog.
func (s *Spotify) Albums(ctx context.Context) ([]album.Album, error) {
	if len(s.config.Albums) == 0 {
		return []album.Album{}, nil
	}
	albums, err := s.client.GetAlbums(ctx, s.config.Albums)
	if err != nil {
		return nil, translate(err)
	}
	return albums, nil
}

// spotifyGenre names a genre after its search term: "hip-hop" becomes "Hip Hop".
func spotifyGenre(id string) genre.Genre {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	return genre.Genre{
		ID:   id,
		Name: cases.Title(language.English).String(name),
	}
}

// translate marks Spotify misses with ErrNotFound.
func translate(err error) error {
	if errors.Is(err, spotify.ErrNotFound) {
		return errors.Mark(err, ErrNotFound)
	}
	return err
}
