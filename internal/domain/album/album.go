// Package album provides the Album domain entity.
package album

import (
	"time"

	"github.com/osa030/19player/internal/domain/track"
)

// Album represents a catalog album with its tracks in play order.
type Album struct {
	ID          string        // Catalog album ID
	Title       string        // Album title
	ArtistID    string        // Artist ID
	ArtistName  string        // Artist display name
	ArtworkURL  string        // Artwork image URL
	ReleaseYear int           // Release year
	Genre       string        // Genre ID
	Tracks      []track.Track // Tracks sorted by track number
}

// TrackIDs returns all track IDs in the album.
func (a *Album) TrackIDs() []string {
	return track.IDs(a.Tracks)
}

// TotalDuration returns the total duration of all tracks.
func (a *Album) TotalDuration() time.Duration {
	var total time.Duration
	for _, t := range a.Tracks {
		total += t.Duration
	}
	return total
}
