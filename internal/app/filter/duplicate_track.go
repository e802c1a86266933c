package filter

import (
	"context"
	"regexp"
	"strings"

	"github.com/osa030/19player/internal/domain/track"
)

// DuplicateTrackFilterName is the config name of DuplicateTrackFilter.
const DuplicateTrackFilterName = "duplicate_track_filter"

// DuplicateTrackFilter checks for duplicate tracks in the queue.
// Detects:
// - Exact track ID matches
// - Remasters (normalized title + same artist)
// Excludes:
// - Cover songs (same title but different artist)
type DuplicateTrackFilter struct{}

// NewDuplicateTrackFilter creates a new duplicate track filter.
func NewDuplicateTrackFilter() *DuplicateTrackFilter {
	return &DuplicateTrackFilter{}
}

// Name returns the filter name.
func (f *DuplicateTrackFilter) Name() string {
	return DuplicateTrackFilterName
}

// Description returns the filter description.
func (f *DuplicateTrackFilter) Description() string {
	return "Skips tracks already queued, remasters included. Covers by other artists are kept"
}

// ReturnCodes returns possible return codes.
func (f *DuplicateTrackFilter) ReturnCodes() []string {
	return []string{"duplicate_track"}
}

// AppliesTo returns which origins this filter applies to.
func (f *DuplicateTrackFilter) AppliesTo(origin Origin) bool {
	return true
}

// ValidateConfig validates the filter configuration.
func (f *DuplicateTrackFilter) ValidateConfig(settings map[string]any) error {
	// No configuration needed
	return nil
}

// Check checks if the track is a duplicate.
func (f *DuplicateTrackFilter) Check(ctx context.Context, t track.Track, queued []track.Track) Result {
	for _, q := range queued {
		// 1. Exact track ID match
		if q.ID == t.ID {
			return Reject("duplicate_track")
		}

		// 2. Remaster detection: normalized title + same artist
		if isRemaster(q, t) {
			return Reject("duplicate_track")
		}
	}
	return Accept()
}

// isRemaster checks if two tracks are the same song (remaster/different version).
func isRemaster(track1, track2 track.Track) bool {
	if normalizeTitle(track1.Title) != normalizeTitle(track2.Title) {
		return false
	}

	// Same normalized title - check if same artist
	// If different artists, it's a cover song (allowed)
	return isSameArtist(track1, track2)
}

var (
	remasterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\s*-?\s*\d{4}\s+remaster(ed)?`),      // "- 2011 Remaster"
		regexp.MustCompile(`\s*\(remaster(ed)?\s*\d{0,4}\)`),     // "(Remastered 2023)"
		regexp.MustCompile(`\s*\[remaster(ed)?\s*\d{0,4}\]`),     // "[Remastered]"
		regexp.MustCompile(`\s*-?\s*remaster(ed)?(\s+version)?`), // "- Remastered"
		regexp.MustCompile(`\s*\(.*?remaster.*?\)`),              // "(Any Remaster text)"
		regexp.MustCompile(`\s*\[.*?remaster.*?\]`),              // "[Any Remaster text]"
	}
	versionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\s*\(.*?version\)`),        // "(Single Version)"
		regexp.MustCompile(`\s*\(.*?edit\)`),           // "(Radio Edit)"
		regexp.MustCompile(`\s*\(live\)`),              // "(Live)"
		regexp.MustCompile(`\s+-\s*live\b.*$`),         // "- Live at Wembley"
		regexp.MustCompile(`\s*-?\s*radio\s+edit`),     // "- Radio Edit"
		regexp.MustCompile(`\s*-?\s*single\s+version`), // "- Single Version"
	}
	whitespace = regexp.MustCompile(`\s+`)
)

// normalizeTitle removes remaster information and version details.
func normalizeTitle(title string) string {
	normalized := strings.ToLower(title)

	for _, pattern := range remasterPatterns {
		normalized = pattern.ReplaceAllString(normalized, "")
	}
	for _, pattern := range versionPatterns {
		normalized = pattern.ReplaceAllString(normalized, "")
	}

	normalized = strings.TrimSpace(normalized)
	normalized = whitespace.ReplaceAllString(normalized, " ")
	return strings.TrimRight(normalized, " -")
}

// isSameArtist compares artist IDs, falling back to names case-insensitively.
func isSameArtist(track1, track2 track.Track) bool {
	if track1.ArtistID != "" && track2.ArtistID != "" {
		return track1.ArtistID == track2.ArtistID
	}
	if track1.ArtistName == "" || track2.ArtistName == "" {
		return false
	}
	return strings.EqualFold(track1.ArtistName, track2.ArtistName)
}

func init() {
	Register(DuplicateTrackFilterName, func() Filter {
		return NewDuplicateTrackFilter()
	})
}
