package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/19player/internal/domain/track"
)

func TestDuplicateTrackFilter_ExactIDMatch(t *testing.T) {
	queued := []track.Track{
		{ID: "track123", Title: "Bohemian Rhapsody", ArtistName: "Queen"},
	}

	result := NewDuplicateTrackFilter().Check(context.Background(),
		track.Track{ID: "track123", Title: "Bohemian Rhapsody", ArtistName: "Queen"}, queued)

	assert.False(t, result.Accepted)
	assert.Equal(t, "duplicate_track", result.Code)
}

func TestDuplicateTrackFilter_RemasterDetection(t *testing.T) {
	tests := []struct {
		name         string
		queued       track.Track
		requested    track.Track
		shouldReject bool
	}{
		{
			name:         "Standard remaster pattern",
			queued:       track.Track{ID: "original", Title: "Bohemian Rhapsody", ArtistName: "Queen"},
			requested:    track.Track{ID: "remaster", Title: "Bohemian Rhapsody - 2011 Remaster", ArtistName: "Queen"},
			shouldReject: true,
		},
		{
			name:         "Remastered in parentheses",
			queued:       track.Track{ID: "original", Title: "Yesterday", ArtistName: "The Beatles"},
			requested:    track.Track{ID: "remaster", Title: "Yesterday (Remastered 2023)", ArtistName: "The Beatles"},
			shouldReject: true,
		},
		{
			name:         "Radio edit",
			queued:       track.Track{ID: "original", Title: "Midnight Drive", ArtistID: "a1"},
			requested:    track.Track{ID: "edit", Title: "Midnight Drive (Radio Edit)", ArtistID: "a1"},
			shouldReject: true,
		},
		{
			name:         "Live recording",
			queued:       track.Track{ID: "original", Title: "Neon Lights", ArtistName: "Luna Wave"},
			requested:    track.Track{ID: "live", Title: "Neon Lights - Live at Budokan", ArtistName: "luna wave"},
			shouldReject: true,
		},
		{
			name:         "Cover song - different artist",
			queued:       track.Track{ID: "original", Title: "Yesterday", ArtistName: "The Beatles"},
			requested:    track.Track{ID: "cover", Title: "Yesterday", ArtistName: "Paul McCartney"},
			shouldReject: false,
		},
		{
			name:         "Cover song - different artist ID",
			queued:       track.Track{ID: "original", Title: "Yesterday", ArtistID: "a1", ArtistName: "Same"},
			requested:    track.Track{ID: "cover", Title: "Yesterday", ArtistID: "a2", ArtistName: "Same"},
			shouldReject: false,
		},
		{
			name:         "Different songs - similar names",
			queued:       track.Track{ID: "track1", Title: "Love", ArtistName: "John Lennon"},
			requested:    track.Track{ID: "track2", Title: "Love Song", ArtistName: "John Lennon"},
			shouldReject: false,
		},
		{
			name:         "Unknown artist",
			queued:       track.Track{ID: "track1", Title: "Untitled"},
			requested:    track.Track{ID: "track2", Title: "Untitled"},
			shouldReject: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewDuplicateTrackFilter().Check(context.Background(), tt.requested, []track.Track{tt.queued})
			assert.Equal(t, !tt.shouldReject, result.Accepted)
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Bohemian Rhapsody", "bohemian rhapsody"},
		{"Bohemian Rhapsody - 2011 Remaster", "bohemian rhapsody"},
		{"Yesterday (Remastered 2009)", "yesterday"},
		{"Hey Jude [Remastered]", "hey jude"},
		{"Song (Single Version)", "song"},
		{"Song (Radio Edit)", "song"},
		{"Song (Live)", "song"},
		{"Alive", "alive"},
		{"  Spaced   Out  ", "spaced out"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTitle(tt.input))
		})
	}
}
