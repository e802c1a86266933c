// Package entitlement provides the sources that decide whether the listener
// may start or control audio playback.
package entitlement

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// ErrUnsupported is returned when a source cannot be changed the way the caller asked.
var ErrUnsupported = errors.New("operation not supported by entitlement source")

// Source reports whether playback is allowed.
type Source interface {
	IsEntitled() bool
	Name() string
}

// Setter is implemented by sources whose flag can be flipped at runtime.
type Setter interface {
	Set(entitled bool)
}

// TokenSetter is implemented by sources backed by a subscription token.
type TokenSetter interface {
	SetToken(token string) error
}

// FlagConfig is the settings block for the static and switch sources.
type FlagConfig struct {
	Entitled bool `yaml:"entitled" mapstructure:"entitled"`
}

// Static always returns the same answer.
type Static struct {
	entitled bool
}

// NewStatic creates a fixed source.
func NewStatic(entitled bool) *Static {
	return &Static{entitled: entitled}
}

// IsEntitled implements Source.
func (s *Static) IsEntitled() bool { return s.entitled }

// Name implements Source.
func (s *Static) Name() string { return "static" }

// Switch is a flag that the admin API can toggle.
type Switch struct {
	entitled atomic.Bool
}

// NewSwitch creates a switch with the given initial value.
func NewSwitch(entitled bool) *Switch {
	s := &Switch{}
	s.entitled.Store(entitled)
	return s
}

// IsEntitled implements Source.
func (s *Switch) IsEntitled() bool { return s.entitled.Load() }

// Name implements Source.
func (s *Switch) Name() string { return "switch" }

// Set implements Setter.
func (s *Switch) Set(entitled bool) { s.entitled.Store(entitled) }

// decodeSettings fills out from a plugin settings map, then applies defaults and validation.
func decodeSettings(settings map[string]any, out any) error {
	if err := mapstructure.Decode(settings, out); err != nil {
		return errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}
