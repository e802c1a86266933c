// Package track provides the Track domain entity.
package track

import (
	"sort"
	"time"
)

// Track represents a catalog song.
// Tracks are immutable once loaded from the catalog.
type Track struct {
	ID          string        // Catalog track ID
	Title       string        // Track title
	ArtistID    string        // Artist ID
	ArtistName  string        // Artist display name
	AlbumID     string        // Album ID
	AlbumTitle  string        // Album title
	ArtworkURL  string        // Artwork image URL
	Duration    time.Duration // Track duration
	MediaURL    string        // Playable media reference
	Genre       string        // Genre ID
	TrackNumber int           // Position within the album (1-based)
}

// Media is what the audio handle needs to load a track.
type Media struct {
	URL      string
	Duration time.Duration // Catalog duration, used as a hint before the handle knows better
}

// Media returns the media reference of the track.
func (t Track) Media() Media {
	return Media{URL: t.MediaURL, Duration: t.Duration}
}

// IsPlayable reports whether the track has a media reference.
func (t Track) IsPlayable() bool {
	return t.MediaURL != ""
}

// IndexOf returns the position of the track with the given ID, or -1.
func IndexOf(tracks []Track, id string) int {
	for i, t := range tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// SortByTrackNumber sorts tracks by album position. Equal numbers keep their order.
func SortByTrackNumber(tracks []Track) {
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].TrackNumber < tracks[j].TrackNumber
	})
}

// IDs returns the IDs of the given tracks in order.
func IDs(tracks []Track) []string {
	ids := make([]string, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}
	return ids
}
