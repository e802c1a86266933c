package audio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/19player/internal/domain/track"
)

type recordingListener struct {
	mu        sync.Mutex
	times     []time.Duration
	durations []time.Duration
	ended     int
}

func (l *recordingListener) OnTimeUpdate(pos time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.times = append(l.times, pos)
}

func (l *recordingListener) OnDurationChange(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.durations = append(l.durations, d)
}

func (l *recordingListener) OnEnded() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ended++
}

func (l *recordingListener) endedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ended
}

func manualHandle(t *testing.T) (*Simulated, *recordingListener) {
	t.Helper()
	h := NewSimulated(SimulatedConfig{Manual: true, DefaultDurationSec: 30})
	l := &recordingListener{}
	unsubscribe := h.Subscribe(l)
	t.Cleanup(func() {
		unsubscribe()
		_ = h.Close()
	})
	return h, l
}

func TestSimulated_LoadReportsDuration(t *testing.T) {
	h, l := manualHandle(t)
	ctx := context.Background()

	require.NoError(t, h.Load(ctx, track.Media{URL: "a.mp3", Duration: 3 * time.Minute}))
	require.NoError(t, h.Load(ctx, track.Media{URL: "b.mp3"}))

	assert.Equal(t, []time.Duration{3 * time.Minute, 30 * time.Second}, l.durations)
	assert.False(t, h.IsPlaying())
}

func TestSimulated_AdvanceToEnd(t *testing.T) {
	h, l := manualHandle(t)
	ctx := context.Background()
	require.NoError(t, h.Load(ctx, track.Media{URL: "a.mp3", Duration: 10 * time.Second}))

	h.Advance(time.Second)
	assert.Empty(t, l.times, "paused handle does not advance")

	require.NoError(t, h.Play(ctx))
	h.Advance(4 * time.Second)
	h.Advance(4 * time.Second)
	assert.Equal(t, 8*time.Second, h.Position())
	assert.Equal(t, 0, l.endedCount())

	h.Advance(4 * time.Second)
	assert.Equal(t, 10*time.Second, h.Position())
	assert.Equal(t, 1, l.endedCount())
	assert.False(t, h.IsPlaying())
	assert.Equal(t, []time.Duration{4 * time.Second, 8 * time.Second, 10 * time.Second}, l.times)

	require.NoError(t, h.Play(ctx))
	assert.Equal(t, time.Duration(0), h.Position(), "playing after the end restarts")
}

func TestSimulated_Seek(t *testing.T) {
	h, l := manualHandle(t)
	ctx := context.Background()

	assert.True(t, errors.Is(h.Seek(time.Second), ErrNotLoaded))

	require.NoError(t, h.Load(ctx, track.Media{URL: "a.mp3", Duration: 10 * time.Second}))
	require.NoError(t, h.Seek(5*time.Second))
	require.NoError(t, h.Seek(-time.Second))
	require.NoError(t, h.Seek(time.Minute))

	assert.Equal(t, []time.Duration{5 * time.Second, 0, 10 * time.Second}, l.times)
}

func TestSimulated_Errors(t *testing.T) {
	h, _ := manualHandle(t)
	ctx := context.Background()

	assert.True(t, errors.Is(h.Play(ctx), ErrNotLoaded))
	assert.True(t, errors.Is(h.Load(ctx, track.Media{}), ErrNoMedia))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, h.Load(cancelled, track.Media{URL: "a.mp3"}))

	require.NoError(t, h.Close())
	assert.True(t, errors.Is(h.Load(ctx, track.Media{URL: "a.mp3"}), ErrClosed))
	assert.True(t, errors.Is(h.Play(ctx), ErrClosed))
}

func TestSimulated_SetVolume(t *testing.T) {
	h, _ := manualHandle(t)
	require.NoError(t, h.SetVolume(0.25))
	assert.Equal(t, 0.25, h.Volume())
}

func TestSimulated_Clock(t *testing.T) {
	h := NewSimulated(SimulatedConfig{TickMs: 5, Speed: 100})
	l := &recordingListener{}
	h.Subscribe(l)
	defer h.Close()

	ctx := context.Background()
	require.NoError(t, h.Load(ctx, track.Media{URL: "a.mp3", Duration: 2 * time.Second}))
	require.NoError(t, h.Play(ctx))

	require.Eventually(t, func() bool { return l.endedCount() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.False(t, h.IsPlaying())
}

func TestNew(t *testing.T) {
	h, err := New(BackendSimulated, map[string]any{"manual": true, "default_duration_sec": 12})
	require.NoError(t, err)
	sim, ok := h.(*Simulated)
	require.True(t, ok)
	assert.True(t, sim.config.Manual)
	assert.Equal(t, 12, sim.config.DefaultDurationSec)
	assert.Equal(t, 250, sim.config.TickMs)
	assert.Equal(t, 1.0, sim.config.Speed)

	_, err = New(BackendSimulated, map[string]any{"speed": -1})
	assert.Error(t, err)

	_, err = New("tape", nil)
	assert.Error(t, err)

	if !SpeakerAvailable {
		_, err = New(BackendSpeaker, nil)
		assert.True(t, errors.Is(err, ErrUnavailable))
	}
	assert.Equal(t, []string{BackendSimulated, BackendSpeaker}, BackendNames())
}
