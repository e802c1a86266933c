package entitlement

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

// Types lists the source types accepted by New.
var Types = []string{"static", "switch", "token"}

// New creates an entitlement source from its config type and settings.
func New(sourceType string, settings map[string]any) (Source, error) {
	zlog.Debug().Msgf("creating entitlement source: type=%s", sourceType)

	switch sourceType {
	case "static", "switch":
		var config FlagConfig
		if err := decodeSettings(settings, &config); err != nil {
			return nil, errors.Wrapf(err, "entitlement source %s", sourceType)
		}
		if sourceType == "static" {
			return NewStatic(config.Entitled), nil
		}
		return NewSwitch(config.Entitled), nil

	case "token":
		var config TokenConfig
		if err := decodeSettings(settings, &config); err != nil {
			return nil, errors.Wrap(err, "entitlement source token")
		}
		t, err := NewToken(config)
		if err != nil {
			return nil, err
		}
		return t, nil

	default:
		return nil, errors.Newf("unsupported entitlement source type: %s", sourceType)
	}
}
