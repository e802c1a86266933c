package filter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/19player/internal/domain/track"
)

func TestDurationLimitFilter_Check(t *testing.T) {
	tests := []struct {
		name          string
		minMinutes    float64
		maxMinutes    float64
		trackDuration time.Duration
		shouldReject  bool
	}{
		{"Within limits", 2.0, 5.0, 3 * time.Minute, false},
		{"Too short", 3.0, 0, 2 * time.Minute, true},
		{"Too long", 1.0, 5.0, 6 * time.Minute, true},
		{"Exact min", 3.0, 0, 3 * time.Minute, false},
		{"Exact max", 1.0, 5.0, 5 * time.Minute, false},
		{"No limits", 0, 0, 40 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDurationLimitFilter()
			f.config = &DurationLimitConfig{
				MinMinutes: tt.minMinutes,
				MaxMinutes: tt.maxMinutes,
			}

			result := f.Check(context.Background(), track.Track{Duration: tt.trackDuration}, nil)

			if tt.shouldReject {
				assert.False(t, result.Accepted)
				assert.Equal(t, "duration_limit_exceeded", result.Code)
			} else {
				assert.True(t, result.Accepted)
			}
		})
	}
}

func TestDurationLimitFilter_Unconfigured(t *testing.T) {
	f := NewDurationLimitFilter()
	assert.True(t, f.Check(context.Background(), track.Track{Duration: time.Second}, nil).Accepted)
}

func TestDurationLimitFilter_ValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		wantErr  bool
	}{
		{
			name:     "Valid config",
			settings: map[string]any{"min_minutes": 2.5, "max_minutes": 5.0},
		},
		{
			name:     "Valid integers",
			settings: map[string]any{"min_minutes": 2, "max_minutes": 5},
		},
		{
			name:     "Invalid min > max",
			settings: map[string]any{"min_minutes": 10.0, "max_minutes": 5.0},
			wantErr:  true,
		},
		{
			name:     "Invalid negative min",
			settings: map[string]any{"min_minutes": -1.0},
			wantErr:  true,
		},
		{
			name:     "Zero max (no limit)",
			settings: map[string]any{"max_minutes": 0.0},
		},
		{
			name:     "Invalid negative max",
			settings: map[string]any{"max_minutes": -1.0},
			wantErr:  true,
		},
		{
			name:     "Empty settings",
			settings: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDurationLimitFilter().ValidateConfig(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
