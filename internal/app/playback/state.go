// Package playback provides the playback controller: transport state, the play
// queue and the entitlement gate in front of a single audio handle.
package playback

// State represents the transport state of the current track.
type State int

const (
	StateIdle    State = iota // Nothing loaded, or the queue finished
	StateLoading              // Media requested, handle has not started yet
	StatePlaying              // Track is playing
	StatePaused               // Track is loaded but paused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
