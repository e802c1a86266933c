package filter

import (
	"context"

	"github.com/osa030/19player/internal/domain/track"
)

// PlayableFilterName is the config name of PlayableFilter.
const PlayableFilterName = "playable_filter"

// PlayableFilter rejects tracks without a media reference.
type PlayableFilter struct{}

func (f *PlayableFilter) Name() string {
	return PlayableFilterName
}

func (f *PlayableFilter) Description() string {
	return "Skips tracks that have no playable media reference"
}

func (f *PlayableFilter) ReturnCodes() []string {
	return []string{"not_playable"}
}

func (f *PlayableFilter) ValidateConfig(settings map[string]any) error {
	return nil
}

func (f *PlayableFilter) AppliesTo(origin Origin) bool {
	return true
}

func (f *PlayableFilter) Check(ctx context.Context, t track.Track, queued []track.Track) Result {
	if !t.IsPlayable() {
		return Reject("not_playable")
	}
	return Accept()
}

func init() {
	Register(PlayableFilterName, func() Filter {
		return &PlayableFilter{}
	})
}
