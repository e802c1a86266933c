package playback

// EventType represents a playback event type.
type EventType int

const (
	EventTrackChanged  EventType = iota // Current track changed
	EventStateChanged                   // Play/pause/stop or volume/mute changed
	EventQueueChanged                   // Queue contents or position changed
	EventProgress                       // Handle reported a new position or duration
	EventUpsellChanged                  // Upsell prompt raised or cleared
	EventMediaError                     // A handle operation failed
	EventViewChanged                    // Expanded view or mini player visibility changed
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventTrackChanged:
		return "track_changed"
	case EventStateChanged:
		return "state_changed"
	case EventQueueChanged:
		return "queue_changed"
	case EventProgress:
		return "progress"
	case EventUpsellChanged:
		return "upsell_changed"
	case EventMediaError:
		return "media_error"
	case EventViewChanged:
		return "view_changed"
	default:
		return "unknown"
	}
}

// Event represents a playback event.
type Event struct {
	Type   EventType
	Status Status // Snapshot taken when the event was emitted
}
