// Package audio provides the audio output handles driven by the playback controller.
package audio

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/osa030/19player/internal/app/playback"
)

var (
	ErrUnavailable = errors.New("audio backend is not available in this build")
	ErrNotLoaded   = errors.New("no media loaded")
	ErrNoMedia     = errors.New("track has no media reference")
	ErrClosed      = errors.New("audio handle is closed")
)

// Backend names accepted by New.
const (
	BackendSimulated = "simulated"
	BackendSpeaker   = "speaker"
)

// Backends returns the known backend names and whether each works in this build.
func Backends() map[string]bool {
	return map[string]bool{
		BackendSimulated: true,
		BackendSpeaker:   SpeakerAvailable,
	}
}

// BackendNames returns the known backend names, sorted.
func BackendNames() []string {
	names := make([]string, 0, 2)
	for name := range Backends() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the audio handle for a backend from its settings block.
func New(backend string, settings map[string]any) (playback.AudioHandle, error) {
	switch backend {
	case BackendSimulated, "":
		var config SimulatedConfig
		if err := decodeSettings(settings, &config); err != nil {
			return nil, err
		}
		return NewSimulated(config), nil
	case BackendSpeaker:
		var config SpeakerConfig
		if err := decodeSettings(settings, &config); err != nil {
			return nil, err
		}
		s, err := NewSpeaker(config)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Newf("unknown audio backend: %s", backend)
	}
}

func decodeSettings(settings map[string]any, out any) error {
	if settings != nil {
		if err := mapstructure.Decode(settings, out); err != nil {
			return errors.Wrap(err, "failed to decode audio settings")
		}
	}
	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set audio defaults")
	}
	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "invalid audio settings")
	}
	return nil
}

// listenerSet fans handle notifications out to subscribed listeners.
type listenerSet struct {
	mu   sync.Mutex
	next int
	m    map[int]playback.AudioListener
}

func (s *listenerSet) add(l playback.AudioListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[int]playback.AudioListener)
	}
	id := s.next
	s.next++
	s.m[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.m, id)
	}
}

func (s *listenerSet) each(f func(playback.AudioListener)) {
	s.mu.Lock()
	ls := make([]playback.AudioListener, 0, len(s.m))
	for _, l := range s.m {
		ls = append(ls, l)
	}
	s.mu.Unlock()

	for _, l := range ls {
		f(l)
	}
}
