//go:build !((linux && cgo) || windows || darwin)

package audio

import (
	"context"
	"time"

	"github.com/osa030/19player/internal/app/playback"
	"github.com/osa030/19player/internal/domain/track"
)

// SpeakerAvailable indicates whether the speaker backend works in this build.
// Audio output needs cgo for the native sound libraries.
const SpeakerAvailable = false

// SpeakerConfig configures the speaker handle.
type SpeakerConfig struct {
	SampleRate      int   `mapstructure:"sample_rate" default:"44100" validate:"gte=8000"`
	BufferMs        int   `mapstructure:"buffer_ms" default:"100" validate:"gte=10"`
	FetchTimeoutSec int   `mapstructure:"fetch_timeout_sec" default:"15" validate:"gte=1"`
	MaxMediaBytes   int64 `mapstructure:"max_media_bytes" default:"52428800" validate:"gte=1"`
	TickMs          int   `mapstructure:"tick_ms" default:"250" validate:"gte=50"`
}

// Speaker is unavailable without cgo.
type Speaker struct{}

// NewSpeaker always fails in builds without cgo.
func NewSpeaker(config SpeakerConfig) (*Speaker, error) {
	return nil, ErrUnavailable
}

func (s *Speaker) Load(ctx context.Context, media track.Media) error { return ErrUnavailable }
func (s *Speaker) Play(ctx context.Context) error { return ErrUnavailable }
func (s *Speaker) Pause() error { return ErrUnavailable }
func (s *Speaker) Seek(pos time.Duration) error { return ErrUnavailable }
func (s *Speaker) SetVolume(level float64) error { return ErrUnavailable }
func (s *Speaker) Subscribe(l playback.AudioListener) func() { return func() {} }
func (s *Speaker) Close() error { return nil }
