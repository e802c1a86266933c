package playback

import (
	"context"
	"time"

	"github.com/osa030/19player/internal/domain/track"
)

// AudioListener receives asynchronous notifications from an audio handle.
type AudioListener interface {
	// OnTimeUpdate is called periodically with the playback position.
	OnTimeUpdate(pos time.Duration)
	// OnDurationChange is called once the handle knows the media duration.
	OnDurationChange(d time.Duration)
	// OnEnded is called when the media reaches its natural end.
	OnEnded()
}

// AudioHandle is the audio output resource driven by the controller.
// Implementations must be safe for use from the controller's media worker
// while delivering notifications from their own goroutines.
type AudioHandle interface {
	// Load replaces the current media. Playback does not start until Play.
	Load(ctx context.Context, media track.Media) error
	// Play starts or resumes playback of the loaded media.
	Play(ctx context.Context) error
	// Pause pauses playback.
	Pause() error
	// Seek moves the playback position.
	Seek(pos time.Duration) error
	// SetVolume sets the output level in [0,1].
	SetVolume(level float64) error
	// Subscribe registers a listener. The returned function detaches it.
	Subscribe(l AudioListener) (unsubscribe func())
	// Close stops playback and releases the handle.
	Close() error
}

// Entitlement tells whether real audio playback is allowed.
type Entitlement interface {
	IsEntitled() bool
}

// EntitlementFunc adapts a function to Entitlement.
type EntitlementFunc func() bool

// IsEntitled implements Entitlement.
func (f EntitlementFunc) IsEntitled() bool {
	return f()
}
