// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server      ServerConfig            `yaml:"server"`
	Log         LogConfig               `yaml:"log"`
	Admin       AdminConfig             `yaml:"admin"`
	Playback    PlaybackConfig          `yaml:"playback"`
	Entitlement EntitlementConfig       `yaml:"entitlement"`
	Catalog     CatalogConfig           `yaml:"catalog"`
	Audio       AudioConfig             `yaml:"audio"`
	Library     LibraryConfig           `yaml:"library"`
	Spotify     SpotifyConfig           `yaml:"spotify"`
	Filters     map[string]FilterConfig `yaml:"filters"`
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Addr  string      `yaml:"addr" default:":8080"`
	Hooks HooksConfig `yaml:"hooks"`
}

// HooksConfig represents lifecycle hooks configuration.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Output string `yaml:"output" default:"stdout"`
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	File   string `yaml:"file"`
}

// AdminConfig represents admin-related configuration.
type AdminConfig struct {
	Token string `yaml:"token" validate:"required"`
}

// PlaybackConfig represents playback control configuration.
type PlaybackConfig struct {
	DefaultVolume      float64 `yaml:"default_volume" default:"0.7" validate:"gte=0,lte=1"`
	UpsellTimeoutMs    int     `yaml:"upsell_timeout_ms" default:"10000" validate:"gte=1000,lte=600000"`
	RestartThresholdMs int     `yaml:"restart_threshold_ms" default:"3000" validate:"gte=0,lte=60000"`
}

// UpsellTimeout returns the upsell auto-dismiss delay.
func (p PlaybackConfig) UpsellTimeout() time.Duration {
	return time.Duration(p.UpsellTimeoutMs) * time.Millisecond
}

// RestartThreshold returns the position past which Previous restarts the track.
func (p PlaybackConfig) RestartThreshold() time.Duration {
	return time.Duration(p.RestartThresholdMs) * time.Millisecond
}

// EntitlementConfig selects the entitlement source.
type EntitlementConfig struct {
	Type     string         `yaml:"type" default:"switch" validate:"required"`
	Settings map[string]any `yaml:"settings"`
}

// CatalogConfig selects the catalog backend.
type CatalogConfig struct {
	Type     string         `yaml:"type" default:"memory" validate:"required"`
	Settings map[string]any `yaml:"settings"`
}

// AudioConfig selects the audio output backend.
type AudioConfig struct {
	Backend  string         `yaml:"backend" default:"simulated" validate:"required"`
	Settings map[string]any `yaml:"settings"`
}

// LibraryConfig represents liked-songs storage configuration.
type LibraryConfig struct {
	Path string `yaml:"path" default:"19player.db" validate:"required"`
}

// SpotifyConfig represents Spotify API configuration.
// Credentials are only required when the spotify catalog is selected.
type SpotifyConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Market       string `yaml:"market" validate:"omitempty,len=2" default:"JP"`
}

// FilterConfig represents a queue filter's configuration.
type FilterConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// EnabledFilters returns the settings of every enabled filter keyed by name.
func (c *Config) EnabledFilters() map[string]map[string]any {
	enabled := make(map[string]map[string]any)
	for name, f := range c.Filters {
		if f.Enabled {
			enabled[name] = f.Settings
		}
	}
	return enabled
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values for sensitive fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse builds a configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		c.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		c.Spotify.ClientSecret = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}
	if v := os.Getenv("ENTITLEMENT_SECRET"); v != "" && c.Entitlement.Type == "token" {
		if c.Entitlement.Settings == nil {
			c.Entitlement.Settings = make(map[string]any)
		}
		c.Entitlement.Settings["secret"] = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if err := c.validateSpotify(); err != nil {
		return err
	}

	return nil
}

// validateSpotify checks that credentials exist when the spotify catalog is used.
func (c *Config) validateSpotify() error {
	if c.Catalog.Type != "spotify" {
		return nil
	}
	if c.Spotify.ClientID == "" {
		return errors.New("spotify.client_id is required for the spotify catalog")
	}
	if c.Spotify.ClientSecret == "" {
		return errors.New("spotify.client_secret is required for the spotify catalog")
	}
	return nil
}
