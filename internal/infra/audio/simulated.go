package audio

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/app/playback"
	"github.com/osa030/19player/internal/domain/track"
)

// SimulatedConfig configures the simulated handle.
type SimulatedConfig struct {
	Manual             bool    `mapstructure:"manual"` // No internal clock; time moves only through Advance
	TickMs             int     `mapstructure:"tick_ms" default:"250" validate:"gte=1"`
	Speed              float64 `mapstructure:"speed" default:"1" validate:"gt=0"`
	DefaultDurationSec int     `mapstructure:"default_duration_sec" default:"30" validate:"gte=1"`
}

// Simulated is a silent handle that plays media on a virtual clock.
// It reports positions, durations and track ends like a real output.
type Simulated struct {
	mu sync.Mutex

	config    SimulatedConfig
	listeners listenerSet

	url      string
	position time.Duration
	duration time.Duration
	playing  bool
	volume   float64
	closed   bool

	stopTick chan struct{}
}

// NewSimulated creates a simulated handle.
func NewSimulated(config SimulatedConfig) *Simulated {
	if config.Speed <= 0 {
		config.Speed = 1
	}
	if config.DefaultDurationSec <= 0 {
		config.DefaultDurationSec = 30
	}
	return &Simulated{config: config, volume: 1}
}

// Load implements playback.AudioHandle.
func (s *Simulated) Load(ctx context.Context, media track.Media) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "load cancelled")
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if media.URL == "" {
		s.mu.Unlock()
		return ErrNoMedia
	}

	s.stopTickLocked()
	s.url = media.URL
	s.position = 0
	s.playing = false
	s.duration = media.Duration
	if s.duration <= 0 {
		s.duration = time.Duration(s.config.DefaultDurationSec) * time.Second
	}
	d := s.duration
	s.mu.Unlock()

	zlog.Debug().Msgf("audio: simulated load url=%s duration=%s", media.URL, d)
	s.listeners.each(func(l playback.AudioListener) { l.OnDurationChange(d) })
	return nil
}

// Play implements playback.AudioHandle.
func (s *Simulated) Play(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.url == "" {
		return ErrNotLoaded
	}
	if s.playing {
		return nil
	}
	if s.position >= s.duration {
		s.position = 0
	}
	s.playing = true
	s.startTickLocked()
	return nil
}

// Pause implements playback.AudioHandle.
func (s *Simulated) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.playing = false
	s.stopTickLocked()
	return nil
}

// Seek implements playback.AudioHandle.
func (s *Simulated) Seek(pos time.Duration) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.url == "" {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.position = min(max(pos, 0), s.duration)
	p := s.position
	s.mu.Unlock()

	s.listeners.each(func(l playback.AudioListener) { l.OnTimeUpdate(p) })
	return nil
}

// SetVolume implements playback.AudioHandle.
func (s *Simulated) SetVolume(level float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = level
	return nil
}

// Subscribe implements playback.AudioHandle.
func (s *Simulated) Subscribe(l playback.AudioListener) func() {
	return s.listeners.add(l)
}

// Close implements playback.AudioHandle.
func (s *Simulated) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.playing = false
	s.stopTickLocked()
	return nil
}

// Advance moves the virtual clock while playing. Reaching the end of the media
// stops playback and reports OnEnded.
func (s *Simulated) Advance(d time.Duration) {
	s.mu.Lock()
	if !s.playing || s.closed {
		s.mu.Unlock()
		return
	}
	s.position += d
	ended := s.position >= s.duration
	if ended {
		s.position = s.duration
		s.playing = false
		s.stopTickLocked()
	}
	p := s.position
	s.mu.Unlock()

	s.listeners.each(func(l playback.AudioListener) { l.OnTimeUpdate(p) })
	if ended {
		zlog.Debug().Msgf("audio: simulated media ended duration=%s", p)
		s.listeners.each(func(l playback.AudioListener) { l.OnEnded() })
	}
}

// Position returns the virtual playback position.
func (s *Simulated) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Volume returns the last level set.
func (s *Simulated) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// IsPlaying reports whether the virtual clock is running.
func (s *Simulated) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// startTickLocked must be called with lock held.
func (s *Simulated) startTickLocked() {
	if s.config.Manual || s.config.TickMs <= 0 || s.stopTick != nil {
		return
	}
	interval := time.Duration(s.config.TickMs) * time.Millisecond
	step := time.Duration(float64(interval) * s.config.Speed)
	stop := make(chan struct{})
	s.stopTick = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.Advance(step)
			}
		}
	}()
}

// stopTickLocked must be called with lock held.
func (s *Simulated) stopTickLocked() {
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
}
