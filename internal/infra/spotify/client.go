// Package spotify provides a read-only catalog client for the Spotify Web API.
package spotify

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/osa030/19player/internal/domain/album"
	"github.com/osa030/19player/internal/domain/artist"
	"github.com/osa030/19player/internal/domain/track"
)

// ErrNotFound is returned when Spotify does not know the requested ID.
var ErrNotFound = errors.New("spotify: not found")

const (
	albumPageLimit = 50
	tracksPerCall  = 50
	artistsPerCall = 50
	albumsPerCall  = 20
)

// Client is a Spotify API client.
type Client struct {
	client     *spotify.Client
	market     string
	maxRetries int
	retryDelay time.Duration
}

// Config represents Spotify client configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	Market       string
}

// New creates a client authenticated with the client credentials flow.
// No user login is involved; only public catalog data is read.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("spotify credentials are required")
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	// Verify credentials early so a misconfiguration fails at startup
	if _, err := creds.Token(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to obtain spotify token")
	}

	return newClient(creds.Client(ctx), "", cfg.Market), nil
}

// newClient wraps an already authenticated HTTP client. An empty baseURL uses the public API.
func newClient(httpClient *http.Client, baseURL, market string) *Client {
	var opts []spotify.ClientOption
	if baseURL != "" {
		opts = append(opts, spotify.WithBaseURL(baseURL))
	}
	if market == "" {
		market = "JP"
	}
	return &Client{
		client:     spotify.New(httpClient, opts...),
		market:     market,
		maxRetries: 3,
		retryDelay: time.Second,
	}
}

// GetTrack retrieves track information by ID, URL, or URI.
func (c *Client) GetTrack(ctx context.Context, trackID string) (*track.Track, error) {
	id := extractID(trackID, "track")

	var result *spotify.FullTrack
	err := c.retry(func() error {
		t, err := c.client.GetTrack(ctx, spotify.ID(id), spotify.Market(c.market))
		if err != nil {
			return err
		}
		result = t
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(mapError(err), "failed to get track %s", id)
	}

	return convertFullTrack(result), nil
}

// GetTracks retrieves several tracks, preserving the requested order.
// IDs Spotify does not know are skipped.
func (c *Client) GetTracks(ctx context.Context, trackIDs []string) ([]track.Track, error) {
	tracks := make([]track.Track, 0, len(trackIDs))

	// Spotify allows max 50 tracks per request
	for i := 0; i < len(trackIDs); i += tracksPerCall {
		end := i + tracksPerCall
		if end > len(trackIDs) {
			end = len(trackIDs)
		}
		ids := make([]spotify.ID, 0, end-i)
		for _, raw := range trackIDs[i:end] {
			ids = append(ids, spotify.ID(extractID(raw, "track")))
		}

		var batch []*spotify.FullTrack
		err := c.retry(func() error {
			r, err := c.client.GetTracks(ctx, ids, spotify.Market(c.market))
			if err != nil {
				return err
			}
			batch = r
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(mapError(err), "failed to get tracks")
		}

		for _, t := range batch {
			if t != nil && t.ID != "" {
				tracks = append(tracks, *convertFullTrack(t))
			}
		}
	}

	return tracks, nil
}

// GetAlbum retrieves an album with every track, sorted by track number.
func (c *Client) GetAlbum(ctx context.Context, albumID string) (*album.Album, error) {
	id := extractID(albumID, "album")

	var full *spotify.FullAlbum
	err := c.retry(func() error {
		a, err := c.client.GetAlbum(ctx, spotify.ID(id), spotify.Market(c.market))
		if err != nil {
			return err
		}
		full = a
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(mapError(err), "failed to get album %s", id)
	}

	a := convertAlbum(&full.SimpleAlbum)
	if len(full.Genres) > 0 {
		a.Genre = full.Genres[0]
	}

	simple := full.Tracks.Tracks
	// The embedded page holds the first batch only
	if int(full.Tracks.Total) > len(simple) {
		rest, err := c.albumTrackPages(ctx, id, len(simple))
		if err != nil {
			return nil, err
		}
		simple = append(simple, rest...)
	}

	a.Tracks = make([]track.Track, 0, len(simple))
	for i := range simple {
		a.Tracks = append(a.Tracks, convertSimpleTrack(&simple[i], &full.SimpleAlbum))
	}
	track.SortByTrackNumber(a.Tracks)

	return a, nil
}

// GetAlbumTracks retrieves all tracks of an album, sorted by track number.
func (c *Client) GetAlbumTracks(ctx context.Context, albumID string) ([]track.Track, error) {
	a, err := c.GetAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	return a.Tracks, nil
}

// albumTrackPages pages through an album's tracks starting at offset.
func (c *Client) albumTrackPages(ctx context.Context, albumID string, offset int) ([]spotify.SimpleTrack, error) {
	var tracks []spotify.SimpleTrack

	for {
		var page *spotify.SimpleTrackPage
		err := c.retry(func() error {
			p, err := c.client.GetAlbumTracks(ctx, spotify.ID(albumID),
				spotify.Limit(albumPageLimit),
				spotify.Offset(offset),
				spotify.Market(c.market),
			)
			if err != nil {
				return err
			}
			page = p
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(mapError(err), "failed to get album tracks")
		}

		tracks = append(tracks, page.Tracks...)

		if len(page.Tracks) < albumPageLimit {
			break
		}
		offset += albumPageLimit
	}

	return tracks, nil
}

// GetArtistTopTracks retrieves the artist's most popular tracks in the configured market.
func (c *Client) GetArtistTopTracks(ctx context.Context, artistID string) ([]track.Track, error) {
	id := extractID(artistID, "artist")

	var result []spotify.FullTrack
	err := c.retry(func() error {
		r, err := c.client.GetArtistsTopTracks(ctx, spotify.ID(id), c.market)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(mapError(err), "failed to get top tracks for artist %s", id)
	}

	tracks := make([]track.Track, 0, len(result))
	for i := range result {
		tracks = append(tracks, *convertFullTrack(&result[i]))
	}
	return tracks, nil
}

// GetArtist retrieves artist information by ID, URL, or URI.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*artist.Artist, error) {
	id := extractID(artistID, "artist")

	var result *spotify.FullArtist
	err := c.retry(func() error {
		a, err := c.client.GetArtist(ctx, spotify.ID(id))
		if err != nil {
			return err
		}
		result = a
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(mapError(err), "failed to get artist %s", id)
	}

	a := convertArtist(result)
	return &a, nil
}

// GetArtists retrieves several artists, preserving the requested order.
// IDs Spotify does not know are skipped.
func (c *Client) GetArtists(ctx context.Context, artistIDs []string) ([]artist.Artist, error) {
	artists := make([]artist.Artist, 0, len(artistIDs))

	for i := 0; i < len(artistIDs); i += artistsPerCall {
		end := min(i+artistsPerCall, len(artistIDs))
		ids := make([]spotify.ID, 0, end-i)
		for _, raw := range artistIDs[i:end] {
			ids = append(ids, spotify.ID(extractID(raw, "artist")))
		}

		var batch []*spotify.FullArtist
		err := c.retry(func() error {
			r, err := c.client.GetArtists(ctx, ids...)
			if err != nil {
				return err
			}
			batch = r
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(mapError(err), "failed to get artists")
		}

		for _, a := range batch {
			if a != nil && a.ID != "" {
				artists = append(artists, convertArtist(a))
			}
		}
	}

	return artists, nil
}

// GetArtistAlbums retrieves the first page of an artist's albums and singles.
// Albums come without tracks.
func (c *Client) GetArtistAlbums(ctx context.Context, artistID string, limit int) ([]album.Album, error) {
	id := extractID(artistID, "artist")

	var page *spotify.SimpleAlbumPage
	err := c.retry(func() error {
		p, err := c.client.GetArtistAlbums(ctx, spotify.ID(id),
			[]spotify.AlbumType{spotify.AlbumTypeAlbum, spotify.AlbumTypeSingle},
			spotify.Limit(clampLimit(limit)),
			spotify.Market(c.market),
		)
		if err != nil {
			return err
		}
		page = p
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(mapError(err), "failed to get albums for artist %s", id)
	}

	albums := make([]album.Album, 0, len(page.Albums))
	for i := range page.Albums {
		albums = append(albums, *convertAlbum(&page.Albums[i]))
	}
	return albums, nil
}

// GetAlbums retrieves several albums without their tracks, preserving the
// requested order. IDs Spotify does not know are skipped.
func (c *Client) GetAlbums(ctx context.Context, albumIDs []string) ([]album.Album, error) {
	albums := make([]album.Album, 0, len(albumIDs))

	for i := 0; i < len(albumIDs); i += albumsPerCall {
		end := min(i+albumsPerCall, len(albumIDs))
		ids := make([]spotify.ID, 0, end-i)
		for _, raw := range albumIDs[i:end] {
			ids = append(ids, spotify.ID(extractID(raw, "album")))
		}

		var batch []*spotify.FullAlbum
		err := c.retry(func() error {
			r, err := c.client.GetAlbums(ctx, ids, spotify.Market(c.market))
			if err != nil {
				return err
			}
			batch = r
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(mapError(err), "failed to get albums")
		}

		for _, full := range batch {
			if full == nil || full.ID == "" {
				continue
			}
			a := convertAlbum(&full.SimpleAlbum)
			if len(full.Genres) > 0 {
				a.Genre = full.Genres[0]
			}
			albums = append(albums, *a)
		}
	}

	return albums, nil
}

// SearchGenreArtists returns artists tagged with the given genre.
func (c *Client) SearchGenreArtists(ctx context.Context, genre string, limit int) ([]artist.Artist, error) {
	result, err := c.searchGenre(ctx, genre, spotify.SearchTypeArtist, limit)
	if err != nil {
		return nil, err
	}

	if result.Artists == nil {
		return []artist.Artist{}, nil
	}
	artists := make([]artist.Artist, 0, len(result.Artists.Artists))
	for i := range result.Artists.Artists {
		artists = append(artists, convertArtist(&result.Artists.Artists[i]))
	}
	return artists, nil
}

// SearchGenre returns tracks tagged with the given genre.
func (c *Client) SearchGenre(ctx context.Context, genre string, limit int) ([]track.Track, error) {
	result, err := c.searchGenre(ctx, genre, spotify.SearchTypeTrack, limit)
	if err != nil {
		return nil, err
	}

	if result.Tracks == nil {
		return []track.Track{}, nil
	}
	tracks := make([]track.Track, 0, len(result.Tracks.Tracks))
	for i := range result.Tracks.Tracks {
		t := convertFullTrack(&result.Tracks.Tracks[i])
		t.Genre = genre
		tracks = append(tracks, *t)
	}
	return tracks, nil
}

func (c *Client) searchGenre(ctx context.Context, genre string, t spotify.SearchType, limit int) (*spotify.SearchResult, error) {
	if genre == "" {
		return nil, errors.New("genre is required")
	}

	var result *spotify.SearchResult
	err := c.retry(func() error {
		r, err := c.client.Search(ctx, "genre:"+strconv.Quote(genre), t,
			spotify.Limit(clampLimit(limit)),
			spotify.Market(c.market),
		)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(mapError(err), "failed to search genre")
	}
	return result, nil
}

// clampLimit keeps a page size within what the API accepts.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	return min(limit, 50)
}

// convertFullTrack converts a Spotify FullTrack to domain Track.
// The media reference is the 30 second preview, which may be empty.
func convertFullTrack(t *spotify.FullTrack) *track.Track {
	result := convertSimpleTrack(&t.SimpleTrack, &t.Album)
	return &result
}

func convertSimpleTrack(t *spotify.SimpleTrack, a *spotify.SimpleAlbum) track.Track {
	result := track.Track{
		ID:          string(t.ID),
		Title:       t.Name,
		Duration:    time.Duration(t.Duration) * time.Millisecond,
		MediaURL:    t.PreviewURL,
		TrackNumber: int(t.TrackNumber),
	}
	if len(t.Artists) > 0 {
		result.ArtistID = string(t.Artists[0].ID)
		result.ArtistName = joinArtists(t.Artists)
	}
	if a != nil {
		result.AlbumID = string(a.ID)
		result.AlbumTitle = a.Name
		result.ArtworkURL = artwork(a.Images)
	}
	return result
}

func convertAlbum(a *spotify.SimpleAlbum) *album.Album {
	result := &album.Album{
		ID:         string(a.ID),
		Title:      a.Name,
		ArtworkURL: artwork(a.Images),
	}
	if len(a.Artists) > 0 {
		result.ArtistID = string(a.Artists[0].ID)
		result.ArtistName = joinArtists(a.Artists)
	}
	// release_date is "YYYY", "YYYY-MM" or "YYYY-MM-DD"
	if len(a.ReleaseDate) >= 4 {
		if year, err := strconv.Atoi(a.ReleaseDate[:4]); err == nil {
			result.ReleaseYear = year
		}
	}
	return result
}

func convertArtist(a *spotify.FullArtist) artist.Artist {
	return artist.Artist{
		ID:       string(a.ID),
		Name:     a.Name,
		ImageURL: artwork(a.Images),
		Genres:   a.Genres,
	}
}

func joinArtists(artists []spotify.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

func artwork(images []spotify.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

// mapError turns a Spotify 404 (or a malformed ID, reported as 400) into ErrNotFound.
func mapError(err error) error {
	var serr spotify.Error
	if errors.As(err, &serr) && (serr.Status == http.StatusNotFound || serr.Status == http.StatusBadRequest) {
		return errors.Mark(err, ErrNotFound)
	}
	return err
}

// retry retries an operation with linear backoff.
func (c *Client) retry(fn func() error) error {
	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if i < c.maxRetries-1 {
			time.Sleep(c.retryDelay * time.Duration(i+1))
		}
	}
	return errors.Wrap(lastErr, "max retries exceeded")
}

// isRetryable checks if an error is retryable.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var serr spotify.Error
	if errors.As(err, &serr) && serr.Status != 0 {
		return serr.Status == http.StatusTooManyRequests || serr.Status >= 500
	}
	// Rate limit errors and server errors are retryable
	errStr := err.Error()
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "504")
}

// extractID extracts a Spotify ID of the given kind ("track", "album", "artist")
// from a URL, a URI, or a bare ID.
func extractID(input, kind string) string {
	input = strings.TrimSpace(input)
	// Handle Spotify URI format: spotify:<kind>:ID
	if prefix := "spotify:" + kind + ":"; strings.HasPrefix(input, prefix) {
		return strings.TrimPrefix(input, prefix)
	}

	// Handle URL format: https://open.spotify.com/<kind>/ID or https://open.spotify.com/intl-XX/<kind>/ID
	marker := "/" + kind + "/"
	if strings.Contains(input, "open.spotify.com") && strings.Contains(input, marker) {
		parts := strings.Split(input, marker)
		// Remove query parameters and trailing slashes
		id := strings.Split(parts[len(parts)-1], "?")[0]
		return strings.TrimRight(id, "/")
	}

	// Assume it's already an ID
	return input
}
