package playback

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/19player/internal/domain/track"
)

// Defaults applied by DefaultConfig and for unset durations.
const (
	DefaultVolume           = 0.7
	DefaultUpsellTimeout    = 10 * time.Second
	DefaultRestartThreshold = 3 * time.Second
)

// Config holds controller configuration.
type Config struct {
	DefaultVolume    float64       // Initial output level in [0,1]
	UpsellTimeout    time.Duration // How long the upsell prompt stays up
	RestartThreshold time.Duration // Previous restarts the track past this position
	AfterFunc        AfterFunc     // Scheduler for the upsell timer (nil uses time.AfterFunc)
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DefaultVolume:    DefaultVolume,
		UpsellTimeout:    DefaultUpsellTimeout,
		RestartThreshold: DefaultRestartThreshold,
	}
}

// Status is a point-in-time snapshot of the controller.
type Status struct {
	State               State
	CurrentTrack        *track.Track
	Queue               []track.Track
	QueueIndex          int
	IsPlaying           bool
	CurrentTime         time.Duration
	Duration            time.Duration
	Volume              float64
	IsMuted             bool
	IsExpandedView      bool
	IsMiniPlayerVisible bool
	ShowUpsell          bool
	LastError           string
}

// Controller owns the transport state, the play queue and the entitlement gate,
// and drives a single audio handle.
type Controller struct {
	mu sync.RWMutex

	// Collaborators
	audio       AudioHandle
	entitlement Entitlement
	unsubscribe func()
	media       *mediaWorker

	// Queue and current track
	queue        Queue
	currentTrack *track.Track
	loadedID     string // Track whose media the handle currently holds
	loadSeq      uint64 // Bumped on every load; stale media results are dropped

	// Transport state
	state       State
	isPlaying   bool
	currentTime time.Duration
	duration    time.Duration
	volume      float64
	isMuted     bool
	lastErr     error

	// View state
	isExpandedView      bool
	isMiniPlayerVisible bool
	showUpsell          bool
	upsell              upsellTimer

	config Config

	// Events
	eventCh chan Event

	closed    bool
	closeOnce sync.Once
}

// NewController creates a controller bound to the given audio handle.
// A nil entitlement denies playback.
func NewController(config Config, audio AudioHandle, entitlement Entitlement) *Controller {
	if config.UpsellTimeout <= 0 {
		config.UpsellTimeout = DefaultUpsellTimeout
	}
	if config.RestartThreshold <= 0 {
		config.RestartThreshold = DefaultRestartThreshold
	}
	afterFunc := config.AfterFunc
	if afterFunc == nil {
		afterFunc = defaultAfterFunc
	}

	c := &Controller{
		audio:       audio,
		entitlement: entitlement,
		media:       newMediaWorker(),
		state:       StateIdle,
		volume:      clampVolume(config.DefaultVolume),
		upsell: upsellTimer{
			afterFunc: afterFunc,
			timeout:   config.UpsellTimeout,
		},
		config:  config,
		eventCh: make(chan Event, 64),
	}

	c.unsubscribe = audio.Subscribe(c)
	c.applyVolumeLocked(c.volume)

	return c
}

// Events returns the event channel. It is closed by Close.
func (c *Controller) Events() <-chan Event {
	return c.eventCh
}

// PlayTrack plays t. With a non-empty queueContext the queue is replaced by it and
// positioned at t (or at 0 when t is not part of it); otherwise the queue becomes t alone.
// When not entitled, t is only shown and the upsell prompt is raised.
func (c *Controller) PlayTrack(t track.Track, queueContext []track.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if !c.entitledLocked() {
		zlog.Debug().Msgf("playback: not entitled, showing track without playing: track=%s", t.ID)
		c.setCurrentLocked(t)
		c.isMiniPlayerVisible = true
		c.raiseUpsellLocked()
		c.sendEventLocked(EventTrackChanged)
		c.sendEventLocked(EventUpsellChanged)
		return
	}

	if len(queueContext) > 0 {
		c.queue.Replace(queueContext, t.ID)
	} else {
		c.queue.Replace([]track.Track{t}, t.ID)
	}

	c.setCurrentLocked(t)
	c.isMiniPlayerVisible = true
	c.isPlaying = true
	c.loadLocked(t, true)

	zlog.Debug().Msgf("playback: play track: track=%s queue_size=%d queue_index=%d",
		t.ID, c.queue.Len(), c.queue.Index())

	c.sendEventLocked(EventQueueChanged)
	c.sendEventLocked(EventTrackChanged)
}

// Play resumes playback of the current track. No-op when not entitled.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.entitledLocked() {
		return
	}
	c.playLocked()
}

// Pause pauses playback. Pausing is never gated.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.pauseLocked()
}

// TogglePlay flips between play and pause. When not entitled it raises the
// upsell prompt instead.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if !c.entitledLocked() {
		c.raiseUpsellLocked()
		c.sendEventLocked(EventUpsellChanged)
		return
	}

	if c.isPlaying {
		c.pauseLocked()
	} else {
		c.playLocked()
	}
}

// Stop pauses playback, rewinds the current track and returns to idle.
// The queue and the current track are kept.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.isPlaying = false
	c.state = StateIdle
	c.currentTime = 0
	if c.loadedID != "" {
		seq := c.loadSeq
		c.media.submit(func(ctx context.Context) {
			if err := c.audio.Pause(); err != nil {
				c.mediaFailed(seq, "pause", err)
				return
			}
			if err := c.audio.Seek(0); err != nil {
				c.mediaFailed(seq, "seek", err)
			}
		})
	}
	c.sendEventLocked(EventStateChanged)
}

// Next moves to the next queue position. No-op at the last position.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.queue.Next() {
		c.advanceLocked()
		c.sendEventLocked(EventQueueChanged)
	}
}

// Previous restarts the current track when it has played past the restart
// threshold, otherwise moves to the previous queue position.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.currentTime > c.config.RestartThreshold {
		if c.entitledLocked() {
			c.seekLocked(0)
		}
		return
	}

	if c.queue.Previous() {
		c.advanceLocked()
		c.sendEventLocked(EventQueueChanged)
	}
}

// Seek moves the playback position. No-op when not entitled.
func (c *Controller) Seek(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.entitledLocked() {
		return
	}
	c.seekLocked(pos)
}

// SetVolume sets the output level, clamped to [0,1]. Any level above zero unmutes.
func (c *Controller) SetVolume(level float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.volume = clampVolume(level)
	if c.volume > 0 {
		c.isMuted = false
	}
	c.applyVolumeLocked(c.volume)
	c.sendEventLocked(EventStateChanged)
}

// ToggleMute silences or restores the output. The stored volume is kept.
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.isMuted = !c.isMuted
	if c.isMuted {
		c.applyVolumeLocked(0)
	} else {
		c.applyVolumeLocked(c.volume)
	}
	c.sendEventLocked(EventStateChanged)
}

// AddToQueue appends t to the queue without touching the position or playback.
func (c *Controller) AddToQueue(t track.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.queue.Append(t)
	c.sendEventLocked(EventQueueChanged)
}

// ClearQueue empties the queue. Current playback continues.
func (c *Controller) ClearQueue() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.queue.Clear()
	c.sendEventLocked(EventQueueChanged)
}

// SetExpandedView sets the full-screen player flag.
func (c *Controller) SetExpandedView(expanded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.isExpandedView = expanded
	c.sendEventLocked(EventViewChanged)
}

// ToggleExpandedView flips the full-screen player flag.
func (c *Controller) ToggleExpandedView() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.isExpandedView = !c.isExpandedView
	c.sendEventLocked(EventViewChanged)
}

// DismissUpsell hides the upsell prompt immediately.
func (c *Controller) DismissUpsell() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.upsell.cancel()
	if c.showUpsell {
		c.showUpsell = false
		c.sendEventLocked(EventUpsellChanged)
	}
}

// OnTimeUpdate implements AudioListener.
func (c *Controller) OnTimeUpdate(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.currentTime = pos
	c.sendEventLocked(EventProgress)
}

// OnDurationChange implements AudioListener.
func (c *Controller) OnDurationChange(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.duration = d
	c.sendEventLocked(EventProgress)
}

// OnEnded implements AudioListener. It advances to the next queue position,
// or stops at the end of the queue. The queue never wraps around.
func (c *Controller) OnEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if !c.queue.AtEnd() {
		zlog.Debug().Msgf("playback: track ended, advancing: queue_index=%d queue_size=%d",
			c.queue.Index(), c.queue.Len())
		c.queue.Next()
		c.advanceLocked()
		c.sendEventLocked(EventQueueChanged)
		return
	}

	zlog.Debug().Msg("playback: track ended at end of queue, stopping")
	c.isPlaying = false
	c.state = StateIdle
	c.sendEventLocked(EventStateChanged)
}

// Status returns a snapshot of the controller state.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statusLocked()
}

// GetState returns the current transport state.
func (c *Controller) GetState() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Flush blocks until every media operation requested so far has completed.
func (c *Controller) Flush() {
	c.media.flush()
}

// Close releases the audio handle and cancels pending timers.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.upsell.cancel()
		c.media.submit(func(ctx context.Context) {
			if err := c.audio.Pause(); err != nil {
				zlog.Warn().Msgf("playback: failed to pause on close: %v", err)
			}
		})
		c.mu.Unlock()

		c.media.stop()
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		if err := c.audio.Close(); err != nil {
			zlog.Warn().Msgf("playback: failed to close audio handle: %v", err)
		}
		close(c.eventCh)
	})
}

// playLocked starts playback of the current track, loading it first if the
// handle holds other media. Must be called with lock held.
func (c *Controller) playLocked() {
	if c.currentTrack == nil {
		return
	}

	c.isPlaying = true
	if c.loadedID != c.currentTrack.ID {
		c.loadLocked(*c.currentTrack, true)
		c.sendEventLocked(EventStateChanged)
		return
	}

	c.state = StatePlaying
	seq := c.loadSeq
	c.media.submit(func(ctx context.Context) {
		if err := c.audio.Play(ctx); err != nil {
			c.mediaFailed(seq, "play", err)
			return
		}
		c.mediaStarted(seq)
	})
	c.sendEventLocked(EventStateChanged)
}

// pauseLocked must be called with lock held.
func (c *Controller) pauseLocked() {
	c.isPlaying = false
	if c.state == StatePlaying || c.state == StateLoading {
		c.state = StatePaused
	}
	seq := c.loadSeq
	c.media.submit(func(ctx context.Context) {
		if err := c.audio.Pause(); err != nil {
			c.mediaFailed(seq, "pause", err)
		}
	})
	c.sendEventLocked(EventStateChanged)
}

// seekLocked must be called with lock held.
func (c *Controller) seekLocked(pos time.Duration) {
	if pos < 0 {
		pos = 0
	}
	if c.duration > 0 && pos > c.duration {
		pos = c.duration
	}

	c.currentTime = pos
	seq := c.loadSeq
	c.media.submit(func(ctx context.Context) {
		if err := c.audio.Seek(pos); err != nil {
			c.mediaFailed(seq, "seek", err)
		}
	})
	c.sendEventLocked(EventProgress)
}

// advanceLocked applies the queue position to the current track. When the
// track differs it becomes current and, if entitled, its media is loaded and
// resumed when playback was running. Must be called with lock held.
func (c *Controller) advanceLocked() {
	t, ok := c.queue.Current()
	if !ok {
		return
	}
	if c.currentTrack != nil && c.currentTrack.ID == t.ID {
		return
	}

	c.setCurrentLocked(t)
	if c.entitledLocked() {
		c.loadLocked(t, c.isPlaying)
	}
	c.sendEventLocked(EventTrackChanged)
}

// setCurrentLocked must be called with lock held.
func (c *Controller) setCurrentLocked(t track.Track) {
	c.currentTrack = &t
	c.currentTime = 0
	c.duration = 0
}

// loadLocked hands the track's media to the handle and optionally starts it.
// Must be called with lock held.
func (c *Controller) loadLocked(t track.Track, autoplay bool) {
	c.loadSeq++
	seq := c.loadSeq
	media := t.Media()

	c.loadedID = t.ID
	c.lastErr = nil
	if autoplay {
		c.state = StateLoading
	} else {
		c.state = StatePaused
	}

	c.media.submit(func(ctx context.Context) {
		if err := c.audio.Load(ctx, media); err != nil {
			c.mediaFailed(seq, "load", err)
			return
		}
		if !autoplay {
			return
		}
		if err := c.audio.Play(ctx); err != nil {
			c.mediaFailed(seq, "play", err)
			return
		}
		c.mediaStarted(seq)
	})
}

// mediaStarted is called from the media worker once the handle accepted Play.
func (c *Controller) mediaStarted(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seq != c.loadSeq || !c.isPlaying {
		return
	}
	if c.state != StatePlaying {
		c.state = StatePlaying
		c.sendEventLocked(EventStateChanged)
	}
}

// mediaFailed is called from the media worker when a handle operation fails.
// The failure is logged and recorded; it never reaches the caller of the
// operation that caused it.
func (c *Controller) mediaFailed(seq uint64, op string, err error) {
	zlog.Error().Err(err).Msgf("playback: media %s failed", op)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || seq != c.loadSeq {
		return
	}

	c.lastErr = errors.Wrapf(err, "media %s failed", op)
	switch op {
	case "load":
		c.loadedID = ""
		c.isPlaying = false
		c.state = StateIdle
	case "play":
		c.isPlaying = false
		c.state = StatePaused
	}
	c.sendEventLocked(EventMediaError)
}

// applyVolumeLocked must be called with lock held.
func (c *Controller) applyVolumeLocked(level float64) {
	seq := c.loadSeq
	c.media.submit(func(ctx context.Context) {
		if err := c.audio.SetVolume(level); err != nil {
			c.mediaFailed(seq, "volume", err)
		}
	})
}

// raiseUpsellLocked shows the upsell prompt and (re)arms its expiry.
// Must be called with lock held.
func (c *Controller) raiseUpsellLocked() {
	c.showUpsell = true
	c.upsell.schedule(c.expireUpsell)
}

// expireUpsell runs on the upsell timer.
func (c *Controller) expireUpsell(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.upsell.current(generation) {
		return
	}
	c.upsell.timer = nil
	c.showUpsell = false
	c.sendEventLocked(EventUpsellChanged)
}

// entitledLocked must be called with lock held.
func (c *Controller) entitledLocked() bool {
	return c.entitlement != nil && c.entitlement.IsEntitled()
}

// statusLocked must be called with lock held (RLock or Lock).
func (c *Controller) statusLocked() Status {
	s := Status{
		State:               c.state,
		Queue:               c.queue.Tracks(),
		QueueIndex:          c.queue.Index(),
		IsPlaying:           c.isPlaying,
		CurrentTime:         c.currentTime,
		Duration:            c.duration,
		Volume:              c.volume,
		IsMuted:             c.isMuted,
		IsExpandedView:      c.isExpandedView,
		IsMiniPlayerVisible: c.isMiniPlayerVisible,
		ShowUpsell:          c.showUpsell,
	}
	if c.currentTrack != nil {
		t := *c.currentTrack
		s.CurrentTrack = &t
	}
	if c.lastErr != nil {
		s.LastError = c.lastErr.Error()
	}
	return s
}

// sendEventLocked sends an event without blocking.
// Must be called with lock held.
func (c *Controller) sendEventLocked(t EventType) {
	if c.closed {
		return
	}
	select {
	case c.eventCh <- Event{Type: t, Status: c.statusLocked()}:
	default:
		// Channel full, drop event
	}
}

func clampVolume(level float64) float64 {
	if math.IsNaN(level) || level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}
