package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
)

// Types lists the backend types accepted by New.
var Types = []string{"memory", "spotify"}

// New creates a catalog from its config type and settings.
// The spotify client is only used, and only required, by the spotify backend.
func New(catalogType string, settings map[string]any, spotifyClient SpotifyClient) (Catalog, error) {
	zlog.Debug().Msgf("creating catalog: type=%s settings=%+v", catalogType, settings)

	var (
		c   Catalog
		err error
	)
	switch catalogType {
	case "memory":
		c, err = NewMemoryFromSettings(settings)

	case "spotify":
		if spotifyClient == nil {
			return nil, errors.New("spotify catalog requires a spotify client")
		}
		c, err = NewSpotify(spotifyClient, settings)

	default:
		return nil, errors.Newf("unsupported catalog type: %s", catalogType)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create catalog (type %s)", catalogType)
	}

	zlog.Info().Msgf("catalog ready: type=%s", c.Name())
	return c, nil
}

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
