package playback

import "github.com/osa030/19player/internal/domain/track"

// Queue is the ordered play sequence and the current position within it.
// The index is always within [0, len) unless the queue is empty.
type Queue struct {
	tracks []track.Track
	index  int
}

// NewQueue creates a queue positioned at the track with startID, or at 0 when absent.
func NewQueue(tracks []track.Track, startID string) Queue {
	q := Queue{}
	q.Replace(tracks, startID)
	return q
}

// Replace swaps the queue contents and positions it at startID (0 when absent).
func (q *Queue) Replace(tracks []track.Track, startID string) {
	q.tracks = make([]track.Track, len(tracks))
	copy(q.tracks, tracks)
	q.index = 0
	if i := track.IndexOf(q.tracks, startID); i >= 0 {
		q.index = i
	}
}

// Append adds a track to the end without moving the position.
func (q *Queue) Append(t track.Track) {
	q.tracks = append(q.tracks, t)
}

// Clear empties the queue and resets the position.
func (q *Queue) Clear() {
	q.tracks = nil
	q.index = 0
}

// Next moves one position forward. It reports false at the last position.
func (q *Queue) Next() bool {
	if q.index >= len(q.tracks)-1 {
		return false
	}
	q.index++
	return true
}

// Previous moves one position back. It reports false at the first position.
func (q *Queue) Previous() bool {
	if q.index <= 0 || len(q.tracks) == 0 {
		return false
	}
	q.index--
	return true
}

// Current returns the track at the current position.
func (q *Queue) Current() (track.Track, bool) {
	if q.index < 0 || q.index >= len(q.tracks) {
		return track.Track{}, false
	}
	return q.tracks[q.index], true
}

// AtEnd reports whether there is no track after the current position.
func (q *Queue) AtEnd() bool {
	return q.index >= len(q.tracks)-1
}

// Index returns the current position.
func (q *Queue) Index() int {
	return q.index
}

// Len returns the number of tracks.
func (q *Queue) Len() int {
	return len(q.tracks)
}

// Tracks returns a copy of the queued tracks.
func (q *Queue) Tracks() []track.Track {
	result := make([]track.Track, len(q.tracks))
	copy(result, q.tracks)
	return result
}
