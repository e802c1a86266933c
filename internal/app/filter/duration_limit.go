package filter

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/domain/track"
)

// DurationLimitFilterName is the config name of DurationLimitFilter.
const DurationLimitFilterName = "duration_limit_filter"

// DurationLimitConfig represents the configuration for DurationLimitFilter.
// A zero MaxMinutes means no upper limit.
type DurationLimitConfig struct {
	MinMinutes float64 `yaml:"min_minutes" mapstructure:"min_minutes" validate:"gte=0"`
	MaxMinutes float64 `yaml:"max_minutes" mapstructure:"max_minutes" validate:"gte=0"`
}

// DurationLimitFilter checks if track duration is within allowed limits.
type DurationLimitFilter struct {
	config *DurationLimitConfig
}

// NewDurationLimitFilter creates a new duration limit filter.
func NewDurationLimitFilter() *DurationLimitFilter {
	return &DurationLimitFilter{}
}

func (f *DurationLimitFilter) Name() string {
	return DurationLimitFilterName
}

func (f *DurationLimitFilter) Description() string {
	return "Skips tracks shorter or longer than the configured limits"
}

func (f *DurationLimitFilter) ReturnCodes() []string {
	return []string{"duration_limit_exceeded"}
}

func (f *DurationLimitFilter) ValidateConfig(settings map[string]any) error {
	var config DurationLimitConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}

	// Custom validation: min_minutes cannot be greater than max_minutes
	if config.MaxMinutes > 0 && config.MinMinutes > config.MaxMinutes {
		return errors.New("min_minutes cannot be greater than max_minutes")
	}
	f.config = &config
	zlog.Info().Msgf("filter: duration limit config min=%.1f max=%.1f", config.MinMinutes, config.MaxMinutes)
	return nil
}

// AppliesTo limits the filter to contexts; a track added by hand is always queued.
func (f *DurationLimitFilter) AppliesTo(origin Origin) bool {
	return origin == OriginContext
}

func (f *DurationLimitFilter) Check(ctx context.Context, t track.Track, queued []track.Track) Result {
	// If config is not set, accept all tracks
	if f.config == nil {
		return Accept()
	}

	durationMinutes := t.Duration.Minutes()

	if durationMinutes < f.config.MinMinutes {
		return Reject("duration_limit_exceeded")
	}
	if f.config.MaxMinutes > 0 && durationMinutes > f.config.MaxMinutes {
		return Reject("duration_limit_exceeded")
	}
	return Accept()
}

func init() {
	Register(DurationLimitFilterName, func() Filter {
		return NewDurationLimitFilter()
	})
}
