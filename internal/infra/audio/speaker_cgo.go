//go:build (linux && cgo) || windows || darwin

package audio

import (
	"bytes"
	"context"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/app/playback"
	"github.com/osa030/19player/internal/domain/track"
)

// SpeakerAvailable indicates whether the speaker backend works in this build.
const SpeakerAvailable = true

// SpeakerConfig configures the speaker handle.
type SpeakerConfig struct {
	SampleRate      int   `mapstructure:"sample_rate" default:"44100" validate:"gte=8000"`
	BufferMs        int   `mapstructure:"buffer_ms" default:"100" validate:"gte=10"`
	FetchTimeoutSec int   `mapstructure:"fetch_timeout_sec" default:"15" validate:"gte=1"`
	MaxMediaBytes   int64 `mapstructure:"max_media_bytes" default:"52428800" validate:"gte=1"`
	TickMs          int   `mapstructure:"tick_ms" default:"250" validate:"gte=50"`
}

// ErrMediaTooLarge is returned when media exceeds max_media_bytes.
var ErrMediaTooLarge = errors.New("media exceeds the size limit")

// mixer is the part of the speaker package the handle drives.
type mixer interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
	Close()
}

// deviceMixer plays on the default output device.
type deviceMixer struct{}

func (deviceMixer) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (deviceMixer) Play(s ...beep.Streamer)                      { speaker.Play(s...) }
func (deviceMixer) Clear()                                       { speaker.Clear() }
func (deviceMixer) Lock()                                        { speaker.Lock() }
func (deviceMixer) Unlock()                                      { speaker.Unlock() }
func (deviceMixer) Close()                                       { speaker.Close() }

// Speaker plays MP3 media on the default output device.
type Speaker struct {
	mu sync.Mutex

	config     SpeakerConfig
	httpClient *http.Client
	sampleRate beep.SampleRate
	listeners  listenerSet
	mixer      mixer

	initialized bool
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	level       float64
	generation  uint64 // Bumped whenever a stream is queued; end callbacks of older streams are ignored
	playing     bool
	ended       bool // The mixer has drained the stream and dropped it
	closed      bool

	stopTick chan struct{}
}

// NewSpeaker creates a speaker handle. The output device is opened on the first load.
func NewSpeaker(config SpeakerConfig) (*Speaker, error) {
	return newSpeaker(config, deviceMixer{}), nil
}

func newSpeaker(config SpeakerConfig, m mixer) *Speaker {
	return &Speaker{
		config:     config,
		httpClient: &http.Client{Timeout: time.Duration(config.FetchTimeoutSec) * time.Second},
		sampleRate: beep.SampleRate(config.SampleRate),
		mixer:      m,
		level:      1,
	}
}

// Load implements playback.AudioHandle. The media is fetched and decoded
// before the previous media is released.
func (s *Speaker) Load(ctx context.Context, media track.Media) error {
	if media.URL == "" {
		return ErrNoMedia
	}

	data, err := s.fetch(ctx, media.URL)
	if err != nil {
		return err
	}
	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", media.URL)
	}
	d := format.SampleRate.D(streamer.Len())
	if err := s.load(streamer, format); err != nil {
		return err
	}

	zlog.Debug().Msgf("audio: loaded url=%s duration=%s rate=%d", media.URL, d, format.SampleRate)
	return nil
}

// load replaces the current media with a decoded stream, paused at its start.
func (s *Speaker) load(streamer beep.StreamSeekCloser, format beep.Format) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		streamer.Close()
		return ErrClosed
	}
	if err := s.initSpeakerLocked(); err != nil {
		s.mu.Unlock()
		streamer.Close()
		return err
	}

	s.releaseLocked()
	s.streamer = streamer
	s.format = format
	s.queueLocked(true)

	d := format.SampleRate.D(streamer.Len())
	s.mu.Unlock()

	s.listeners.each(func(l playback.AudioListener) { l.OnDurationChange(d) })
	return nil
}

// Play implements playback.AudioHandle.
func (s *Speaker) Play(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.ctrl == nil {
		return ErrNotLoaded
	}

	if s.ended {
		// Replay after the end: the drained stream is gone from the mixer.
		s.mixer.Lock()
		err := s.streamer.Seek(0)
		s.mixer.Unlock()
		if err != nil {
			return errors.Wrap(err, "failed to rewind")
		}
		s.queueLocked(false)
	} else {
		s.mixer.Lock()
		s.ctrl.Paused = false
		s.mixer.Unlock()
	}

	s.playing = true
	s.startTickLocked()
	return nil
}

// Pause implements playback.AudioHandle.
func (s *Speaker) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl != nil {
		s.mixer.Lock()
		s.ctrl.Paused = true
		s.mixer.Unlock()
	}
	s.playing = false
	s.stopTickLocked()
	return nil
}

// Seek implements playback.AudioHandle.
func (s *Speaker) Seek(pos time.Duration) error {
	s.mu.Lock()
	if s.streamer == nil {
		s.mu.Unlock()
		return ErrNotLoaded
	}

	s.mixer.Lock()
	n := min(max(s.format.SampleRate.N(pos), 0), max(s.streamer.Len()-1, 0))
	err := s.streamer.Seek(n)
	p := s.format.SampleRate.D(s.streamer.Position())
	s.mixer.Unlock()
	if err != nil {
		s.mu.Unlock()
		return errors.Wrap(err, "failed to seek")
	}
	// The resampler buffers ahead of the source, so the chain is rebuilt at the new position.
	s.queueLocked(!s.playing)
	s.mu.Unlock()

	s.listeners.each(func(l playback.AudioListener) { l.OnTimeUpdate(p) })
	return nil
}

// SetVolume implements playback.AudioHandle.
func (s *Speaker) SetVolume(level float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = level
	if s.volume != nil {
		s.mixer.Lock()
		applyLevel(s.volume, level)
		s.mixer.Unlock()
	}
	return nil
}

// Subscribe implements playback.AudioHandle.
func (s *Speaker) Subscribe(l playback.AudioListener) func() {
	return s.listeners.add(l)
}

// Close implements playback.AudioHandle.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.releaseLocked()
	if s.initialized {
		s.mixer.Close()
		s.initialized = false
	}
	return nil
}

func (s *Speaker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid media url %s", url)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("failed to fetch %s: status %d", url, resp.StatusCode)
	}
	if resp.ContentLength > s.config.MaxMediaBytes {
		return nil, errors.Wrapf(ErrMediaTooLarge, "%s: %d bytes", url, resp.ContentLength)
	}
	// One byte past the limit tells a truncated body from one that fits exactly.
	data, err := io.ReadAll(io.LimitReader(resp.Body, s.config.MaxMediaBytes+1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", url)
	}
	if int64(len(data)) > s.config.MaxMediaBytes {
		return nil, errors.Wrapf(ErrMediaTooLarge, "%s: over %d bytes", url, s.config.MaxMediaBytes)
	}
	return data, nil
}

// initSpeakerLocked must be called with lock held.
func (s *Speaker) initSpeakerLocked() error {
	if s.initialized {
		return nil
	}
	buffer := time.Duration(s.config.BufferMs) * time.Millisecond
	if err := s.mixer.Init(s.sampleRate, s.sampleRate.N(buffer)); err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}
	s.initialized = true
	return nil
}

// releaseLocked stops and closes the current media. Must be called with lock held.
func (s *Speaker) releaseLocked() {
	s.stopTickLocked()
	s.playing = false
	s.ended = false
	if s.initialized {
		s.mixer.Clear()
	}
	if s.streamer != nil {
		if err := s.streamer.Close(); err != nil {
			zlog.Debug().Msgf("audio: failed to close streamer: %v", err)
		}
	}
	s.streamer = nil
	s.ctrl = nil
	s.volume = nil
}

// queueLocked wraps the loaded stream in a fresh resample, volume and pause
// chain and hands it to the mixer. Must be called with lock held.
func (s *Speaker) queueLocked(paused bool) {
	s.mixer.Clear()
	s.generation++
	gen := s.generation
	s.ended = false

	s.volume = &effects.Volume{
		Streamer: beep.Resample(4, s.format.SampleRate, s.sampleRate, s.streamer),
		Base:     2,
	}
	applyLevel(s.volume, s.level)
	s.ctrl = &beep.Ctrl{Streamer: s.volume, Paused: paused}

	s.mixer.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		// Runs on the mixer goroutine with the mixer lock held.
		go s.finished(gen)
	})))
}

func (s *Speaker) finished(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.closed {
		s.mu.Unlock()
		return
	}
	s.ended = true
	s.playing = false
	s.stopTickLocked()
	s.mu.Unlock()

	s.listeners.each(func(l playback.AudioListener) { l.OnEnded() })
}

func (s *Speaker) position() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streamer == nil || !s.playing {
		return 0, false
	}
	s.mixer.Lock()
	p := s.format.SampleRate.D(s.streamer.Position())
	s.mixer.Unlock()
	return p, true
}

// startTickLocked must be called with lock held.
func (s *Speaker) startTickLocked() {
	if s.stopTick != nil {
		return
	}
	stop := make(chan struct{})
	s.stopTick = stop

	go func() {
		ticker := time.NewTicker(time.Duration(s.config.TickMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if p, ok := s.position(); ok {
					s.listeners.each(func(l playback.AudioListener) { l.OnTimeUpdate(p) })
				}
			}
		}
	}()
}

// stopTickLocked must be called with lock held.
func (s *Speaker) stopTickLocked() {
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
}

// applyLevel maps a linear level in [0,1] onto a base-2 volume effect.
func applyLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(level)
}
