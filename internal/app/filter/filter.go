// Package filter provides the queue filter chain. Filters decide which catalog
// tracks may enter the play queue.
package filter

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/osa030/19player/internal/domain/track"
)

// ErrRejected is returned when a filter refuses a track added to the queue.
var ErrRejected = errors.New("track rejected by queue filter")

// Origin tells a filter how the track reaches the queue.
type Origin int

const (
	OriginContext Origin = iota // Part of a resolved album, artist, genre, liked or tracks context
	OriginAdded                 // Appended with AddToQueue
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginContext:
		return "context"
	case OriginAdded:
		return "added"
	default:
		return "unknown"
	}
}

// Result represents the result of a filter check.
type Result struct {
	Accepted bool
	Code     string // e.g., "duplicate_track", "not_playable"
}

// Accept returns an accepted result.
func Accept() Result {
	return Result{Accepted: true}
}

// Reject returns a rejected result with the given code.
func Reject(code string) Result {
	return Result{Accepted: false, Code: code}
}

// Filter is the interface for queue filters.
type Filter interface {
	// Name returns the filter name (used in config).
	Name() string
	// Description returns a human-readable description.
	Description() string
	// ReturnCodes returns the codes this filter can return.
	ReturnCodes() []string
	// ValidateConfig validates and applies the filter configuration.
	ValidateConfig(settings map[string]any) error
	// AppliesTo returns true if this filter should be applied to tracks of the given origin.
	AppliesTo(origin Origin) bool
	// Check checks t against the tracks already queued ahead of it.
	Check(ctx context.Context, t track.Track, queued []track.Track) Result
}

// registry holds registered filter factories.
var registry = make(map[string]func() Filter)

// Register registers a filter factory.
func Register(name string, factory func() Filter) {
	registry[name] = factory
}

// GetRegistered returns all registered filter factories.
func GetRegistered() map[string]func() Filter {
	return registry
}

// Names returns the registered filter names in chain order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}

// order lists the built-in filters cheapest first.
var order = []string{PlayableFilterName, DurationLimitFilterName, DuplicateTrackFilterName}

func rank(name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return len(order)
}
