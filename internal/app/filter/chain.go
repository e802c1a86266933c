package filter

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/domain/track"
)

// Chain executes filters in sequence.
type Chain struct {
	filters []Filter
}

// NewChain creates a new filter chain.
func NewChain() *Chain {
	return &Chain{
		filters: make([]Filter, 0),
	}
}

// Build creates a chain from the enabled filters and their settings, in chain order.
func Build(enabled map[string]map[string]any) (*Chain, error) {
	c := NewChain()
	for _, name := range Names() {
		settings, ok := enabled[name]
		if !ok {
			continue
		}
		f := registry[name]()
		if err := f.ValidateConfig(settings); err != nil {
			return nil, errors.Wrapf(err, "invalid settings for filter %s", name)
		}
		c.Add(f)
	}
	for name := range enabled {
		if _, ok := registry[name]; !ok {
			return nil, errors.Newf("unknown filter: %s", name)
		}
	}
	return c, nil
}

// Add adds a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Execute runs all filters in sequence.
// Returns immediately if any filter rejects the track.
// Filters are only applied if they declare they apply to the given origin.
func (c *Chain) Execute(ctx context.Context, t track.Track, queued []track.Track, origin Origin) Result {
	for _, f := range c.filters {
		// Skip filters that don't apply to this origin
		if !f.AppliesTo(origin) {
			continue
		}

		result := f.Check(ctx, t, queued)
		if !result.Accepted {
			return result
		}
	}
	return Accept()
}

// Apply filters a resolved context in order. The track with keepID is the
// listener's explicit choice and is never dropped.
func (c *Chain) Apply(ctx context.Context, tracks []track.Track, keepID string) []track.Track {
	if len(c.filters) == 0 {
		return tracks
	}

	accepted := make([]track.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.ID != keepID {
			if result := c.Execute(ctx, t, accepted, OriginContext); !result.Accepted {
				zlog.Debug().Msgf("filter: dropped track=%s code=%s", t.ID, result.Code)
				continue
			}
		}
		accepted = append(accepted, t)
	}
	return accepted
}

// Filters returns all filters in the chain.
func (c *Chain) Filters() []Filter {
	return c.filters
}
