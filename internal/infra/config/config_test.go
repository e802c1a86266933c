package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Log:   LogConfig{Output: "stdout", Level: "info"},
		Admin: AdminConfig{Token: "test-admin-token"},
		Playback: PlaybackConfig{
			DefaultVolume:      0.7,
			UpsellTimeoutMs:    10000,
			RestartThresholdMs: 3000,
		},
		Entitlement: EntitlementConfig{Type: "switch"},
		Catalog:     CatalogConfig{Type: "memory"},
		Audio:       AudioConfig{Backend: "simulated"},
		Library:     LibraryConfig{Path: ":memory:"},
		Spotify:     SpotifyConfig{Market: "JP"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing admin token",
			modify:  func(c *Config) { c.Admin.Token = "" },
			wantErr: true,
			errMsg:  "Token",
		},
		{
			name:    "volume out of range",
			modify:  func(c *Config) { c.Playback.DefaultVolume = 1.5 },
			wantErr: true,
			errMsg:  "DefaultVolume",
		},
		{
			name:    "upsell timeout too short",
			modify:  func(c *Config) { c.Playback.UpsellTimeoutMs = 10 },
			wantErr: true,
			errMsg:  "UpsellTimeoutMs",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
			errMsg:  "Level",
		},
		{
			name:    "invalid market length",
			modify:  func(c *Config) { c.Spotify.Market = "JAPAN" },
			wantErr: true,
			errMsg:  "Market",
		},
		{
			name:    "spotify catalog without client id",
			modify:  func(c *Config) { c.Catalog.Type = "spotify" },
			wantErr: true,
			errMsg:  "client_id",
		},
		{
			name: "spotify catalog without client secret",
			modify: func(c *Config) {
				c.Catalog.Type = "spotify"
				c.Spotify.ClientID = "id"
			},
			wantErr: true,
			errMsg:  "client_secret",
		},
		{
			name: "spotify catalog with credentials",
			modify: func(c *Config) {
				c.Catalog.Type = "spotify"
				c.Spotify.ClientID = "id"
				c.Spotify.ClientSecret = "secret"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()

			if tt.wantErr {
				require.Error(t, err, "expected validation to fail")
				assert.Contains(t, err.Error(), tt.errMsg,
					"error message should mention the problematic field")
			} else {
				assert.NoError(t, err, "expected validation to pass")
			}
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("admin:\n  token: secret\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 0.7, cfg.Playback.DefaultVolume)
	assert.Equal(t, 10*time.Second, cfg.Playback.UpsellTimeout())
	assert.Equal(t, 3*time.Second, cfg.Playback.RestartThreshold())
	assert.Equal(t, "switch", cfg.Entitlement.Type)
	assert.Equal(t, "memory", cfg.Catalog.Type)
	assert.Equal(t, "simulated", cfg.Audio.Backend)
	assert.Equal(t, "19player.db", cfg.Library.Path)
	assert.Equal(t, "JP", cfg.Spotify.Market)
}

func TestParse_EnvOverride(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "from-env")
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")
	t.Setenv("ENTITLEMENT_SECRET", "env-signing-key")

	data := []byte(`
admin:
  token: from-file
catalog:
  type: spotify
entitlement:
  type: token
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Admin.Token)
	assert.Equal(t, "env-id", cfg.Spotify.ClientID)
	assert.Equal(t, "env-secret", cfg.Spotify.ClientSecret)
	assert.Equal(t, "env-signing-key", cfg.Entitlement.Settings["secret"])
}

func TestParse_SettingsMaps(t *testing.T) {
	data := []byte(`
admin:
  token: secret
audio:
  backend: speaker
  settings:
    fetch_timeout_sec: 20
entitlement:
  type: static
  settings:
    entitled: true
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "speaker", cfg.Audio.Backend)
	assert.Equal(t, 20, cfg.Audio.Settings["fetch_timeout_sec"])
	assert.Equal(t, true, cfg.Entitlement.Settings["entitled"])
}

func TestConfig_EnabledFilters(t *testing.T) {
	data := []byte(`
admin:
  token: secret
filters:
  playable_filter:
    enabled: true
  duplicate_track_filter:
    enabled: false
  duration_limit_filter:
    enabled: true
    settings:
      max_minutes: 12
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	enabled := cfg.EnabledFilters()
	assert.Len(t, enabled, 2)
	assert.Contains(t, enabled, "playable_filter")
	assert.NotContains(t, enabled, "duplicate_track_filter")
	assert.Equal(t, 12, enabled["duration_limit_filter"]["max_minutes"])
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("admin: [unclosed"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("admin:\n  token: t\nserver:\n  addr: \":9090\"\n"), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
	})
}
