package filter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/19player/internal/domain/track"
)

func TestPlayableFilter_Check(t *testing.T) {
	f := &PlayableFilter{}

	assert.True(t, f.Check(context.Background(), track.Track{ID: "a", MediaURL: "https://example.com/a.mp3"}, nil).Accepted)

	result := f.Check(context.Background(), track.Track{ID: "b"}, nil)
	assert.False(t, result.Accepted)
	assert.Equal(t, "not_playable", result.Code)
}

func TestFilter_AppliesTo(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		origin Origin
		want   bool
	}{
		{"playable context", &PlayableFilter{}, OriginContext, true},
		{"playable added", &PlayableFilter{}, OriginAdded, true},
		{"duration context", NewDurationLimitFilter(), OriginContext, true},
		{"duration added", NewDurationLimitFilter(), OriginAdded, false},
		{"duplicate context", NewDuplicateTrackFilter(), OriginContext, true},
		{"duplicate added", NewDuplicateTrackFilter(), OriginAdded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.AppliesTo(tt.origin))
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		PlayableFilterName,
		DurationLimitFilterName,
		DuplicateTrackFilterName,
	}, Names())
}

func TestBuild(t *testing.T) {
	t.Run("enabled filters in chain order", func(t *testing.T) {
		chain, err := Build(map[string]map[string]any{
			DuplicateTrackFilterName: nil,
			PlayableFilterName:       nil,
		})
		require.NoError(t, err)

		var names []string
		for _, f := range chain.Filters() {
			names = append(names, f.Name())
		}
		assert.Equal(t, []string{PlayableFilterName, DuplicateTrackFilterName}, names)
	})

	t.Run("nothing enabled", func(t *testing.T) {
		chain, err := Build(nil)
		require.NoError(t, err)
		assert.Empty(t, chain.Filters())
	})

	t.Run("unknown filter", func(t *testing.T) {
		_, err := Build(map[string]map[string]any{"kicked_listener_filter": nil})
		assert.Error(t, err)
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := Build(map[string]map[string]any{
			DurationLimitFilterName: {"min_minutes": 10, "max_minutes": 5},
		})
		assert.Error(t, err)
	})
}

func TestChain_Execute(t *testing.T) {
	chain := NewChain()
	chain.Add(&PlayableFilter{})
	limit := NewDurationLimitFilter()
	require.NoError(t, limit.ValidateConfig(map[string]any{"max_minutes": 5}))
	chain.Add(limit)

	long := track.Track{ID: "long", MediaURL: "x", Duration: 10 * time.Minute}

	result := chain.Execute(context.Background(), long, nil, OriginContext)
	assert.False(t, result.Accepted)
	assert.Equal(t, "duration_limit_exceeded", result.Code)

	// The duration limit does not apply to tracks added by hand
	assert.True(t, chain.Execute(context.Background(), long, nil, OriginAdded).Accepted)

	result = chain.Execute(context.Background(), track.Track{ID: "silent"}, nil, OriginAdded)
	assert.False(t, result.Accepted)
	assert.Equal(t, "not_playable", result.Code)
}

func TestChain_Apply(t *testing.T) {
	tracks := []track.Track{
		{ID: "1", Title: "Intro", MediaURL: "x"},
		{ID: "2", Title: "Hidden"},
		{ID: "3", Title: "Outro", MediaURL: "x"},
		{ID: "1", Title: "Intro", MediaURL: "x"},
	}

	t.Run("empty chain keeps everything", func(t *testing.T) {
		assert.Len(t, NewChain().Apply(context.Background(), tracks, "1"), 4)
	})

	t.Run("drops rejected tracks in order", func(t *testing.T) {
		chain := NewChain()
		chain.Add(&PlayableFilter{})
		chain.Add(NewDuplicateTrackFilter())

		got := chain.Apply(context.Background(), tracks, "3")
		assert.Equal(t, []string{"1", "3"}, track.IDs(got))
	})

	t.Run("keeps the chosen track", func(t *testing.T) {
		chain := NewChain()
		chain.Add(&PlayableFilter{})

		got := chain.Apply(context.Background(), tracks, "2")
		assert.Equal(t, []string{"1", "2", "3", "1"}, track.IDs(got))
	})
}
