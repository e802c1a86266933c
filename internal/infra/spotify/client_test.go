package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     string
		expected string
	}{
		{
			name:     "Spotify URI format",
			input:    "spotify:track:6rqhFgbbKwnb9MLmUQDhG6",
			kind:     "track",
			expected: "6rqhFgbbKwnb9MLmUQDhG6",
		},
		{
			name:     "Spotify URL format",
			input:    "https://open.spotify.com/album/4aawyAB9vmqN3uQ7FjRGTy",
			kind:     "album",
			expected: "4aawyAB9vmqN3uQ7FjRGTy",
		},
		{
			name:     "Spotify URL with locale and query params",
			input:    "https://open.spotify.com/intl-ja/artist/0TnOYISbd1XYRBk9myaseg?si=abc123",
			kind:     "artist",
			expected: "0TnOYISbd1XYRBk9myaseg",
		},
		{
			name:     "Plain ID",
			input:    "  6rqhFgbbKwnb9MLmUQDhG6 ",
			kind:     "track",
			expected: "6rqhFgbbKwnb9MLmUQDhG6",
		},
		{
			name:     "URI of another kind is left alone",
			input:    "spotify:album:abc",
			kind:     "track",
			expected: "spotify:album:abc",
		},
		{
			name:     "Empty string",
			input:    "",
			kind:     "track",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractID(tt.input, tt.kind))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "rate limit text", err: errors.New("rate limit exceeded"), expected: true},
		{name: "server error 503", err: errors.New("503 Service Unavailable"), expected: true},
		{name: "client error 400", err: errors.New("400 Bad Request"), expected: false},
		{name: "generic error", err: errors.New("something went wrong"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRetryable(tt.err))
		})
	}
}

const albumJSON = `{
  "id": "alb1",
  "name": "Neon Dreams",
  "release_date": "2024-03-01",
  "genres": ["electronic"],
  "artists": [{"id": "art1", "name": "Neon Pulse"}],
  "images": [{"url": "https://img.example.com/alb1.jpg", "height": 640, "width": 640}],
  "tracks": {
    "total": 3,
    "limit": 2,
    "offset": 0,
    "items": [
      {"id": "t2", "name": "Cyber Rain", "duration_ms": 198000, "track_number": 2, "preview_url": "https://p.example.com/t2.mp3", "artists": [{"id": "art1", "name": "Neon Pulse"}]},
      {"id": "t1", "name": "Digital Horizon", "duration_ms": 234000, "track_number": 1, "preview_url": "https://p.example.com/t1.mp3", "artists": [{"id": "art1", "name": "Neon Pulse"}]}
    ]
  }
}`

const albumTracksPageJSON = `{
  "total": 3,
  "limit": 50,
  "offset": 2,
  "items": [
    {"id": "t3", "name": "Neon Streets", "duration_ms": 267000, "track_number": 3, "preview_url": "", "artists": [{"id": "art1", "name": "Neon Pulse"}]}
  ]
}`

func fullTrackJSON(id, name string, number int) string {
	return fmt.Sprintf(`{
  "id": %q, "name": %q, "duration_ms": 200000, "track_number": %d,
  "preview_url": "https://p.example.com/%s.mp3",
  "artists": [{"id": "art1", "name": "Neon Pulse"}, {"id": "art2", "name": "Guest"}],
  "album": {"id": "alb1", "name": "Neon Dreams", "images": [{"url": "https://img.example.com/alb1.jpg"}]}
}`, id, name, number, id)
}

func fullArtistJSON(id, name string) string {
	return fmt.Sprintf(`{
  "id": %q, "name": %q, "genres": ["electronic", "synthwave"],
  "images": [{"url": "https://img.example.com/%s.jpg"}]
}`, id, name, id)
}

func simpleAlbumJSON(id, name string) string {
	return fmt.Sprintf(`{
  "id": %q, "name": %q, "release_date": "2023",
  "artists": [{"id": "art1", "name": "Neon Pulse"}],
  "images": [{"url": "https://img.example.com/%s.jpg"}]
}`, id, name, id)
}

func newTestServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/albums/alb1", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, albumJSON)
	})
	mux.HandleFunc("/albums/alb1/tracks", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "2", r.URL.Query().Get("offset"))
		fmt.Fprint(w, albumTracksPageJSON)
	})
	mux.HandleFunc("/albums/missing", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": {"status": 404, "message": "Non existing id"}}`)
	})
	mux.HandleFunc("/tracks/t1", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "JP", r.URL.Query().Get("market"))
		fmt.Fprint(w, fullTrackJSON("t1", "Digital Horizon", 1))
	})
	mux.HandleFunc("/tracks", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		items := make([]string, len(ids))
		for i, id := range ids {
			if id == "gone" {
				items[i] = "null"
				continue
			}
			items[i] = fullTrackJSON(id, "Track "+id, i+1)
		}
		fmt.Fprintf(w, `{"tracks": [%s]}`, strings.Join(items, ","))
	})
	mux.HandleFunc("/artists/art1/top-tracks", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "JP", r.URL.Query().Get("country"))
		fmt.Fprintf(w, `{"tracks": [%s, %s]}`, fullTrackJSON("t9", "Hit", 4), fullTrackJSON("t1", "Digital Horizon", 1))
	})
	mux.HandleFunc("/artists/art1", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, fullArtistJSON("art1", "Neon Pulse"))
	})
	mux.HandleFunc("/artists/missing", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": {"status": 404, "message": "Non existing id"}}`)
	})
	mux.HandleFunc("/artists", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		items := make([]string, len(ids))
		for i, id := range ids {
			if id == "gone" {
				items[i] = "null"
				continue
			}
			items[i] = fullArtistJSON(id, "Artist "+id)
		}
		fmt.Fprintf(w, `{"artists": [%s]}`, strings.Join(items, ","))
	})
	mux.HandleFunc("/artists/art1/albums", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "album,single", r.URL.Query().Get("include_groups"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		fmt.Fprintf(w, `{"total": 2, "items": [%s, %s]}`, simpleAlbumJSON("alb1", "Neon Dreams"), simpleAlbumJSON("alb2", "Afterglow"))
	})
	mux.HandleFunc("/albums", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		items := make([]string, len(ids))
		for i, id := range ids {
			if id == "gone" {
				items[i] = "null"
				continue
			}
			items[i] = simpleAlbumJSON(id, "Album "+id)
		}
		fmt.Fprintf(w, `{"albums": [%s]}`, strings.Join(items, ","))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Contains(t, r.URL.Query().Get("q"), "genre:")
		if r.URL.Query().Get("type") == "artist" {
			fmt.Fprintf(w, `{"artists": {"total": 1, "items": [%s]}}`, fullArtistJSON("art7", "Stellar"))
			return
		}
		fmt.Fprintf(w, `{"tracks": {"total": 1, "items": [%s]}}`, fullTrackJSON("t5", "Groove", 1))
	})
	mux.HandleFunc("/albums/flaky", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error": {"status": 503, "message": "try later"}}`)
			return
		}
		fmt.Fprint(w, strings.Replace(albumJSON, `"total": 3`, `"total": 2`, 1))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestClient(t *testing.T) (*Client, *atomic.Int32) {
	srv, calls := newTestServer(t)
	c := newClient(srv.Client(), srv.URL+"/", "")
	c.retryDelay = time.Millisecond
	return c, calls
}

func TestClient_GetAlbum(t *testing.T) {
	c, calls := newTestClient(t)

	a, err := c.GetAlbum(context.Background(), "https://open.spotify.com/album/alb1")
	require.NoError(t, err)

	assert.Equal(t, "alb1", a.ID)
	assert.Equal(t, "Neon Dreams", a.Title)
	assert.Equal(t, "Neon Pulse", a.ArtistName)
	assert.Equal(t, 2024, a.ReleaseYear)
	assert.Equal(t, "electronic", a.Genre)
	require.Len(t, a.Tracks, 3)
	assert.Equal(t, []string{"t1", "t2", "t3"}, a.TrackIDs())
	assert.Equal(t, "Neon Dreams", a.Tracks[0].AlbumTitle)
	assert.Equal(t, "https://img.example.com/alb1.jpg", a.Tracks[0].ArtworkURL)
	assert.Equal(t, 234*time.Second, a.Tracks[0].Duration)
	assert.False(t, a.Tracks[2].IsPlayable())
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_GetAlbum_NotFound(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.GetAlbum(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClient_GetAlbum_RetriesServerErrors(t *testing.T) {
	c, calls := newTestClient(t)

	a, err := c.GetAlbum(context.Background(), "spotify:album:flaky")
	require.NoError(t, err)
	assert.Len(t, a.Tracks, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_GetTrack(t *testing.T) {
	c, _ := newTestClient(t)

	tr, err := c.GetTrack(context.Background(), "spotify:track:t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", tr.ID)
	assert.Equal(t, "Digital Horizon", tr.Title)
	assert.Equal(t, "art1", tr.ArtistID)
	assert.Equal(t, "Neon Pulse, Guest", tr.ArtistName)
	assert.Equal(t, "alb1", tr.AlbumID)
	assert.Equal(t, "https://p.example.com/t1.mp3", tr.MediaURL)
}

func TestClient_GetTracks_SkipsUnknown(t *testing.T) {
	c, _ := newTestClient(t)

	tracks, err := c.GetTracks(context.Background(), []string{"a", "gone", "b"})
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "a", tracks[0].ID)
	assert.Equal(t, "b", tracks[1].ID)
}

func TestClient_GetArtistTopTracks(t *testing.T) {
	c, _ := newTestClient(t)

	tracks, err := c.GetArtistTopTracks(context.Background(), "art1")
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "t9", tracks[0].ID)
}

func TestClient_SearchGenre(t *testing.T) {
	c, _ := newTestClient(t)

	tracks, err := c.SearchGenre(context.Background(), "afrobeats", 10)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "afrobeats", tracks[0].Genre)

	_, err = c.SearchGenre(context.Background(), "", 10)
	assert.Error(t, err)
}

func TestClient_GetArtist(t *testing.T) {
	c, _ := newTestClient(t)

	a, err := c.GetArtist(context.Background(), "https://open.spotify.com/artist/art1")
	require.NoError(t, err)
	assert.Equal(t, "art1", a.ID)
	assert.Equal(t, "Neon Pulse", a.Name)
	assert.Equal(t, "https://img.example.com/art1.jpg", a.ImageURL)
	assert.Equal(t, []string{"electronic", "synthwave"}, a.Genres)

	_, err = c.GetArtist(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClient_GetArtists_SkipsUnknown(t *testing.T) {
	c, _ := newTestClient(t)

	artists, err := c.GetArtists(context.Background(), []string{"x", "gone", "spotify:artist:y"})
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "x", artists[0].ID)
	assert.Equal(t, "y", artists[1].ID)
}

func TestClient_GetArtistAlbums(t *testing.T) {
	c, _ := newTestClient(t)

	albums, err := c.GetArtistAlbums(context.Background(), "art1", 5)
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "Neon Dreams", albums[0].Title)
	assert.Equal(t, 2023, albums[0].ReleaseYear)
	assert.Equal(t, "Neon Pulse", albums[1].ArtistName)
	assert.Empty(t, albums[0].Tracks)
}

func TestClient_GetAlbums_SkipsUnknown(t *testing.T) {
	c, _ := newTestClient(t)

	albums, err := c.GetAlbums(context.Background(), []string{"a1", "gone", "a2"})
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "a1", albums[0].ID)
	assert.Equal(t, "a2", albums[1].ID)
}

func TestClient_SearchGenreArtists(t *testing.T) {
	c, _ := newTestClient(t)

	artists, err := c.SearchGenreArtists(context.Background(), "pop", 10)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Stellar", artists[0].Name)

	_, err = c.SearchGenreArtists(context.Background(), "", 10)
	assert.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 20},
		{-3, 20},
		{10, 10},
		{50, 50},
		{80, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampLimit(tt.in), "limit %d", tt.in)
	}
}
