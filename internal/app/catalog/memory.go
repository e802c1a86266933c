package catalog

import (
	"context"
	_ "embed"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/genre"
	"github.com/osa030/19player/internal/domain/track"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// MemoryConfig is the settings block for the memory catalog.
type MemoryConfig struct {
	Path      string `yaml:"path" mapstructure:"path"`             // YAML file; empty uses the built-in catalog
	MediaBase string `yaml:"media_base" mapstructure:"media_base"` // Overrides media_base from the file
}

// Document is the YAML layout of a catalog file.
type Document struct {
	MediaBase string        `yaml:"media_base" validate:"omitempty,url"`
	Genres    []GenreEntry  `yaml:"genres" validate:"dive"`
	Artists   []ArtistEntry `yaml:"artists" validate:"dive"`
	Albums    []AlbumEntry  `yaml:"albums" validate:"dive"`
	Tracks    []TrackEntry  `yaml:"tracks" validate:"required,min=1,dive"`
}

type GenreEntry struct {
	ID          string `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"` // HSL triple, e.g. "300 100% 50%"
	ImageURL    string `yaml:"image_url" validate:"omitempty,url"`
}

type ArtistEntry struct {
	ID       string   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name" validate:"required"`
	Bio      string   `yaml:"bio"`
	Genres   []string `yaml:"genres"`
	ImageURL string   `yaml:"image_url" validate:"omitempty,url"`
}

type AlbumEntry struct {
	ID          string `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	ArtistID    string `yaml:"artist_id" validate:"required"`
	ReleaseYear int    `yaml:"release_year"`
	Genre       string `yaml:"genre"`
	ArtworkURL  string `yaml:"artwork_url"`
}

type TrackEntry struct {
	ID          string `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	ArtistID    string `yaml:"artist_id" validate:"required"`
	AlbumID     string `yaml:"album_id"`
	TrackNumber int    `yaml:"track_number" validate:"gte=0"`
	DurationSec int    `yaml:"duration_sec" validate:"gte=0"`
	Genre       string `yaml:"genre"`
	Media       string `yaml:"media"` // absolute URL, or a path under media_base
}

// Memory serves a catalog held entirely in memory.
// Listings follow document order.
type Memory struct {
	tracks  []track.Track // catalog order
	byID    map[string]int
	albums  map[string]album.Album
	artists map[string]artist.Artist
	genres  map[string]genre.Genre

	albumIDs  []string
	artistIDs []string
	genreIDs  []string
}

// NewMemoryFromSettings creates a memory catalog from plugin settings.
func NewMemoryFromSettings(settings map[string]any) (*Memory, error) {
	var config MemoryConfig
	if err := decodeSettings(settings, &config); err != nil {
		return nil, err
	}

	data := defaultCatalog
	if config.Path != "" {
		b, err := os.ReadFile(config.Path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read catalog file")
		}
		data = b
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	if config.MediaBase != "" {
		doc.MediaBase = config.MediaBase
	}
	return NewMemory(doc)
}

// ParseDocument parses and validates a YAML catalog.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog")
	}
	if err := validator.New().Struct(&doc); err != nil {
		return nil, errors.Wrap(err, "catalog validation failed")
	}
	return &doc, nil
}

// NewMemory builds the in-memory indexes. Every reference between entries must resolve.
func NewMemory(doc *Document) (*Memory, error) {
	m := &Memory{
		byID:    make(map[string]int, len(doc.Tracks)),
		albums:  make(map[string]album.Album, len(doc.Albums)),
		artists: make(map[string]artist.Artist, len(doc.Artists)),
		genres:  make(map[string]genre.Genre, len(doc.Genres)),
	}

	for _, g := range doc.Genres {
		if _, dup := m.genres[g.ID]; dup {
			return nil, errors.Newf("duplicate genre id: %s", g.ID)
		}
		m.genres[g.ID] = genre.Genre{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Color:       g.Color,
			ImageURL:    g.ImageURL,
		}
		m.genreIDs = append(m.genreIDs, g.ID)
	}
	for _, a := range doc.Artists {
		if _, dup := m.artists[a.ID]; dup {
			return nil, errors.Newf("duplicate artist id: %s", a.ID)
		}
		m.artists[a.ID] = artist.Artist{
			ID:       a.ID,
			Name:     a.Name,
			Bio:      a.Bio,
			ImageURL: a.ImageURL,
			Genres:   a.Genres,
		}
		m.artistIDs = append(m.artistIDs, a.ID)
	}
	for _, a := range doc.Albums {
		owner, ok := m.artists[a.ArtistID]
		if !ok {
			return nil, errors.Newf("album %s: unknown artist %s", a.ID, a.ArtistID)
		}
		if _, dup := m.albums[a.ID]; dup {
			return nil, errors.Newf("duplicate album id: %s", a.ID)
		}
		m.albums[a.ID] = album.Album{
			ID:          a.ID,
			Title:       a.Title,
			ArtistID:    a.ArtistID,
			ArtistName:  owner.Name,
			ArtworkURL:  a.ArtworkURL,
			ReleaseYear: a.ReleaseYear,
			Genre:       a.Genre,
		}
		m.albumIDs = append(m.albumIDs, a.ID)
	}

	for _, e := range doc.Tracks {
		if _, dup := m.byID[e.ID]; dup {
			return nil, errors.Newf("duplicate track id: %s", e.ID)
		}
		owner, ok := m.artists[e.ArtistID]
		if !ok {
			return nil, errors.Newf("track %s: unknown artist %s", e.ID, e.ArtistID)
		}

		t := track.Track{
			ID:          e.ID,
			Title:       e.Title,
			ArtistID:    e.ArtistID,
			ArtistName:  owner.Name,
			Duration:    time.Duration(e.DurationSec) * time.Second,
			MediaURL:    resolveMedia(doc.MediaBase, e.Media),
			Genre:       e.Genre,
			TrackNumber: e.TrackNumber,
		}
		if e.AlbumID != "" {
			a, ok := m.albums[e.AlbumID]
			if !ok {
				return nil, errors.Newf("track %s: unknown album %s", e.ID, e.AlbumID)
			}
			t.AlbumID = a.ID
			t.AlbumTitle = a.Title
			t.ArtworkURL = a.ArtworkURL
			a.Tracks = append(a.Tracks, t)
			m.albums[a.ID] = a
		}

		m.byID[t.ID] = len(m.tracks)
		m.tracks = append(m.tracks, t)
	}

	for id, a := range m.albums {
		track.SortByTrackNumber(a.Tracks)
		m.albums[id] = a
	}

	zlog.Debug().Msgf("catalog: memory catalog loaded: tracks=%d albums=%d artists=%d genres=%d",
		len(m.tracks), len(m.albums), len(m.artists), len(m.genres))

	return m, nil
}

func resolveMedia(base, media string) string {
	if media == "" || strings.Contains(media, "://") || base == "" {
		return media
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(media, "/")
}

// Name implements Catalog.
func (m *Memory) Name() string { return "memory" }

// Track implements Catalog.
func (m *Memory) Track(ctx context.Context, id string) (*track.Track, error) {
	i, ok := m.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "track %s", id)
	}
	t := m.tracks[i]
	return &t, nil
}

// Tracks implements Catalog.
func (m *Memory) Tracks(ctx context.Context, ids []string) ([]track.Track, error) {
	result := make([]track.Track, 0, len(ids))
	for _, id := range ids {
		if i, ok := m.byID[id]; ok {
			result = append(result, m.tracks[i])
		}
	}
	return result, nil
}

// Album implements Catalog.
func (m *Memory) Album(ctx context.Context, id string) (*album.Album, error) {
	a, ok := m.albums[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "album %s", id)
	}
	a.Tracks = append([]track.Track(nil), a.Tracks...)
	return &a, nil
}

// AlbumTracks implements Catalog.
func (m *Memory) AlbumTracks(ctx context.Context, albumID string) ([]track.Track, error) {
	a, err := m.Album(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return a.Tracks, nil
}

// ArtistTracks implements Catalog.
func (m *Memory) ArtistTracks(ctx context.Context, artistID string) ([]track.Track, error) {
	if _, ok := m.artists[artistID]; !ok {
		return nil, errors.Wrapf(ErrNotFound, "artist %s", artistID)
	}
	return m.filter(func(t track.Track) bool { return t.ArtistID == artistID }), nil
}

// GenreTracks implements Catalog.
func (m *Memory) GenreTracks(ctx context.Context, genreID string) ([]track.Track, error) {
	if _, ok := m.genres[genreID]; !ok {
		return nil, errors.Wrapf(ErrNotFound, "genre %s", genreID)
	}
	return m.filter(func(t track.Track) bool { return t.Genre == genreID }), nil
}

func (m *Memory) filter(keep func(track.Track) bool) []track.Track {
	result := make([]track.Track, 0)
	for _, t := range m.tracks {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// Artist implements Catalog.
func (m *Memory) Artist(ctx context.Context, id string) (*artist.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "artist %s", id)
	}
	a.Genres = append([]string(nil), a.Genres...)
	return &a, nil
}

// ArtistAlbums implements Catalog.
func (m *Memory) ArtistAlbums(ctx context.Context, artistID string) ([]album.Album, error) {
	if _, ok := m.artists[artistID]; !ok {
		return nil, errors.Wrapf(ErrNotFound, "artist %s", artistID)
	}
	return m.filterAlbums(func(a album.Album) bool { return a.ArtistID == artistID }), nil
}

// Genre implements Catalog.
func (m *Memory) Genre(ctx context.Context, id string) (*genre.Genre, error) {
	g, ok := m.genres[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "genre %s", id)
	}
	return &g, nil
}

// GenreAlbums implements Catalog.
func (m *Memory) GenreAlbums(ctx context.Context, genreID string) ([]album.Album, error) {
	if _, ok := m.genres[genreID]; !ok {
		return nil, errors.Wrapf(ErrNotFound, "genre %s", genreID)
	}
	return m.filterAlbums(func(a album.Album) bool { return a.Genre == genreID }), nil
}

// GenreArtists implements Catalog.
func (m *Memory) GenreArtists(ctx context.Context, genreID string) ([]artist.Artist, error) {
	if _, ok := m.genres[genreID]; !ok {
		return nil, errors.Wrapf(ErrNotFound, "genre %s", genreID)
	}
	return m.filterArtists(func(a artist.Artist) bool { return a.HasGenre(genreID) }), nil
}

// Genres implements Catalog.
func (m *Memory) Genres(ctx context.Context) ([]genre.Genre, error) {
	result := make([]genre.Genre, 0, len(m.genreIDs))
	for _, id := range m.genreIDs {
		result = append(result, m.genres[id])
	}
	return result, nil
}

// Artists implements Catalog.
func (m *Memory) Artists(ctx context.Context) ([]artist.Artist, error) {
	return m.filterArtists(func(artist.Artist) bool { return true }), nil
}

// Albums implements Catalog.
func (m *Memory) Albums(ctx context.Context) ([]album.Album, error) {
	return m.filterAlbums(func(album.Album) bool { return true }), nil
}

// filterAlbums returns matching albums in document order, without tracks.
func (m *Memory) filterAlbums(keep func(album.Album) bool) []album.Album {
	result := make([]album.Album, 0)
	for _, id := range m.albumIDs {
		a := m.albums[id]
		if keep(a) {
			a.Tracks = nil
			result = append(result, a)
		}
	}
	return result
}

func (m *Memory) filterArtists(keep func(artist.Artist) bool) []artist.Artist {
	result := make([]artist.Artist, 0)
	for _, id := range m.artistIDs {
		a := m.artists[id]
		if keep(a) {
			a.Genres = append([]string(nil), a.Genres...)
			result = append(result, a)
		}
	}
	return result
}
