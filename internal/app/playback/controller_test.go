package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	c     *Controller
	audio *fakeAudio
	ent   *switchEntitlement
	clock *fakeScheduler
}

func newHarness(t *testing.T, entitled bool) *harness {
	t.Helper()

	h := &harness{
		audio: newFakeAudio(),
		ent:   newSwitch(entitled),
		clock: &fakeScheduler{},
	}
	cfg := DefaultConfig()
	cfg.AfterFunc = h.clock.AfterFunc
	h.c = NewController(cfg, h.audio, h.ent)
	t.Cleanup(h.c.Close)

	h.c.Flush()
	h.audio.Reset()
	return h
}

func TestController_PlayTrack_Entitled(t *testing.T) {
	h := newHarness(t, true)
	queue := testTracks("a", "b", "c")

	h.c.PlayTrack(queue[1], queue)

	st := h.c.Status()
	assert.True(t, st.IsPlaying)
	assert.True(t, st.IsMiniPlayerVisible)
	assert.Equal(t, 1, st.QueueIndex)
	assert.Equal(t, []string{"a", "b", "c"}, ids(st))
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "b", st.CurrentTrack.ID)

	h.c.Flush()
	assert.Equal(t, []string{"load:https://media.example.com/b.mp3", "play"}, h.audio.Calls())
	assert.Equal(t, StatePlaying, h.c.GetState())
}

func TestController_PlayTrack_QueueContext(t *testing.T) {
	tests := []struct {
		name          string
		play          string
		context       []string
		expectedQueue []string
		expectedIndex int
	}{
		{name: "track in context", play: "c", context: []string{"a", "b", "c"}, expectedQueue: []string{"a", "b", "c"}, expectedIndex: 2},
		{name: "track absent from context", play: "z", context: []string{"a", "b"}, expectedQueue: []string{"a", "b"}, expectedIndex: 0},
		{name: "no context", play: "a", context: nil, expectedQueue: []string{"a"}, expectedIndex: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, true)

			h.c.PlayTrack(testTrack(tt.play, 1), testTracks(tt.context...))

			st := h.c.Status()
			assert.Equal(t, tt.expectedQueue, ids(st))
			assert.Equal(t, tt.expectedIndex, st.QueueIndex)
			require.NotNil(t, st.CurrentTrack)
			assert.Equal(t, tt.play, st.CurrentTrack.ID)
			assert.True(t, st.IsPlaying)
		})
	}
}

func TestController_PlayTrack_NotEntitled(t *testing.T) {
	h := newHarness(t, true)
	queue := testTracks("a", "b")
	h.c.PlayTrack(queue[0], queue)
	h.c.Pause()
	h.c.Flush()
	h.audio.Reset()

	h.ent.v.Store(false)
	h.c.PlayTrack(testTrack("x", 1), testTracks("x", "y"))

	st := h.c.Status()
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "x", st.CurrentTrack.ID)
	assert.False(t, st.IsPlaying)
	assert.True(t, st.ShowUpsell)
	assert.True(t, st.IsMiniPlayerVisible)
	assert.Equal(t, []string{"a", "b"}, ids(st))
	assert.Equal(t, 0, st.QueueIndex)

	h.c.Flush()
	assert.Empty(t, h.audio.CallsMatching("load"))
	assert.Empty(t, h.audio.CallsMatching("play"))
}

func TestController_TogglePlay_NotEntitled(t *testing.T) {
	h := newHarness(t, false)

	h.c.TogglePlay()

	st := h.c.Status()
	assert.False(t, st.IsPlaying)
	assert.True(t, st.ShowUpsell)
	assert.Nil(t, st.CurrentTrack)
	assert.Empty(t, st.Queue)

	h.c.Flush()
	assert.Empty(t, h.audio.Calls())
}

func TestController_TogglePlay(t *testing.T) {
	h := newHarness(t, true)
	h.c.PlayTrack(testTrack("a", 1), nil)
	h.c.Flush()
	h.audio.Reset()

	h.c.TogglePlay()
	assert.False(t, h.c.Status().IsPlaying)
	assert.Equal(t, StatePaused, h.c.GetState())

	h.c.TogglePlay()
	assert.True(t, h.c.Status().IsPlaying)

	h.c.Flush()
	assert.Equal(t, []string{"pause", "play"}, h.audio.Calls())
	assert.Equal(t, StatePlaying, h.c.GetState())
}

func TestController_GatedTransport(t *testing.T) {
	h := newHarness(t, true)
	h.c.PlayTrack(testTrack("a", 1), nil)
	h.c.OnTimeUpdate(42 * time.Second)
	h.c.Flush()
	h.audio.Reset()

	h.ent.v.Store(false)

	h.c.Seek(10 * time.Second)
	assert.Equal(t, 42*time.Second, h.c.Status().CurrentTime)

	h.c.Pause()
	assert.False(t, h.c.Status().IsPlaying)

	h.c.Play()
	assert.False(t, h.c.Status().IsPlaying)

	h.c.Flush()
	assert.Equal(t, []string{"pause"}, h.audio.Calls())
}

func TestController_Next(t *testing.T) {
	h := newHarness(t, true)
	queue := testTracks("a", "b", "c")
	h.c.PlayTrack(queue[0], queue)

	h.c.Next()
	h.c.Next()

	st := h.c.Status()
	assert.Equal(t, 2, st.QueueIndex)
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "c", st.CurrentTrack.ID)

	h.c.Next()
	st = h.c.Status()
	assert.Equal(t, 2, st.QueueIndex)
	assert.Equal(t, "c", st.CurrentTrack.ID)

	h.c.Flush()
	assert.Equal(t, []string{
		"load:https://media.example.com/a.mp3",
		"load:https://media.example.com/b.mp3",
		"load:https://media.example.com/c.mp3",
	}, h.audio.CallsMatching("load"))
}

func TestController_Next_WhilePausedLoadsWithoutPlaying(t *testing.T) {
	h := newHarness(t, true)
	queue := testTracks("a", "b")
	h.c.PlayTrack(queue[0], queue)
	h.c.Pause()
	h.c.Flush()
	h.audio.Reset()

	h.c.Next()
	h.c.Flush()

	assert.Equal(t, []string{"load:https://media.example.com/b.mp3"}, h.audio.Calls())
	assert.False(t, h.c.Status().IsPlaying)
	assert.Equal(t, StatePaused, h.c.GetState())
}

func TestController_Next_NotEntitledUpdatesTrackOnly(t *testing.T) {
	h := newHarness(t, true)
	queue := testTracks("a", "b")
	h.c.PlayTrack(queue[0], queue)
	h.c.Flush()
	h.audio.Reset()

	h.ent.v.Store(false)
	h.c.Next()
	h.c.Flush()

	st := h.c.Status()
	assert.Equal(t, 1, st.QueueIndex)
	assert.Equal(t, "b", st.CurrentTrack.ID)
	assert.Empty(t, h.audio.CallsMatching("load"))
}

func TestController_Previous(t *testing.T) {
	tests := []struct {
		name          string
		startIndex    int
		currentTime   time.Duration
		expectedIndex int
		expectedTime  time.Duration
		expectSeek    bool
	}{
		{name: "early in track moves back", startIndex: 2, currentTime: 2 * time.Second, expectedIndex: 1},
		{name: "exactly at threshold moves back", startIndex: 1, currentTime: 3 * time.Second, expectedIndex: 0},
		{name: "first position stays", startIndex: 0, currentTime: time.Second, expectedIndex: 0, expectedTime: time.Second},
		{name: "past threshold restarts", startIndex: 2, currentTime: 3*time.Second + time.Millisecond, expectedIndex: 2, expectSeek: true},
		{name: "well past threshold restarts", startIndex: 1, currentTime: 90 * time.Second, expectedIndex: 1, expectSeek: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, true)
			queue := testTracks("a", "b", "c")
			h.c.PlayTrack(queue[tt.startIndex], queue)
			h.c.OnTimeUpdate(tt.currentTime)
			h.c.Flush()
			h.audio.Reset()

			h.c.Previous()

			st := h.c.Status()
			assert.Equal(t, tt.expectedIndex, st.QueueIndex)
			assert.Equal(t, queue[tt.expectedIndex].ID, st.CurrentTrack.ID)
			assert.Equal(t, tt.expectedTime, st.CurrentTime)

			h.c.Flush()
			if tt.expectSeek {
				assert.Equal(t, []string{"seek:0s"}, h.audio.Calls())
			} else {
				assert.Empty(t, h.audio.CallsMatching("seek"))
			}
		})
	}
}

func TestController_Seek(t *testing.T) {
	h := newHarness(t, true)
	h.c.PlayTrack(testTrack("a", 1), nil)
	h.c.OnDurationChange(200 * time.Second)

	h.c.Seek(30 * time.Second)
	assert.Equal(t, 30*time.Second, h.c.Status().CurrentTime)

	h.c.Seek(-5 * time.Second)
	assert.Equal(t, time.Duration(0), h.c.Status().CurrentTime)

	h.c.Seek(500 * time.Second)
	assert.Equal(t, 200*time.Second, h.c.Status().CurrentTime)

	h.c.Flush()
	assert.Equal(t, []string{"seek:30s", "seek:0s", "seek:3m20s"}, h.audio.CallsMatching("seek"))
}

func TestController_Stop(t *testing.T) {
	h := newHarness(t, true)
	queue := testTracks("a", "b")
	h.c.PlayTrack(queue[0], queue)
	h.c.OnTimeUpdate(40 * time.Second)
	h.c.Flush()
	h.audio.Reset()

	h.c.Stop()

	st := h.c.Status()
	assert.Equal(t, StateIdle, st.State)
	assert.False(t, st.IsPlaying)
	assert.Equal(t, time.Duration(0), st.CurrentTime)
	assert.Equal(t, []string{"a", "b"}, ids(st))
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "a", st.CurrentTrack.ID)

	h.c.Flush()
	assert.Equal(t, []string{"pause", "seek:0s"}, h.audio.Calls())

	// The media is still loaded, so Play resumes without reloading
	h.audio.Reset()
	h.c.Play()
	h.c.Flush()
	assert.Equal(t, []string{"play"}, h.audio.Calls())
	assert.Equal(t, StatePlaying, h.c.GetState())
}

func TestController_Volume(t *testing.T) {
	h := newHarness(t, true)
	assert.Equal(t, DefaultVolume, h.c.Status().Volume)

	t.Run("zero then positive unmutes", func(t *testing.T) {
		h.c.SetVolume(0)
		h.c.ToggleMute()
		assert.True(t, h.c.Status().IsMuted)

		h.c.SetVolume(0.5)
		st := h.c.Status()
		assert.False(t, st.IsMuted)
		assert.Equal(t, 0.5, st.Volume)
		h.c.Flush()
		assert.Equal(t, 0.5, h.audio.Volume())
	})

	t.Run("mute keeps stored volume", func(t *testing.T) {
		h.c.SetVolume(0.8)
		h.c.ToggleMute()
		st := h.c.Status()
		assert.True(t, st.IsMuted)
		assert.Equal(t, 0.8, st.Volume)
		h.c.Flush()
		assert.Equal(t, 0.0, h.audio.Volume())

		h.c.ToggleMute()
		assert.False(t, h.c.Status().IsMuted)
		h.c.Flush()
		assert.Equal(t, 0.8, h.audio.Volume())
	})

	t.Run("clamped", func(t *testing.T) {
		h.c.SetVolume(1.7)
		assert.Equal(t, 1.0, h.c.Status().Volume)
		h.c.SetVolume(-0.3)
		assert.Equal(t, 0.0, h.c.Status().Volume)
	})
}

func TestController_QueueManagement(t *testing.T) {
	h := newHarness(t, true)
	queue := testTracks("a", "b")
	h.c.PlayTrack(queue[1], queue)

	h.c.AddToQueue(testTrack("c", 3))
	st := h.c.Status()
	assert.Equal(t, []string{"a", "b", "c"}, ids(st))
	assert.Equal(t, 1, st.QueueIndex)
	assert.Equal(t, "b", st.CurrentTrack.ID)

	h.c.ClearQueue()
	st = h.c.Status()
	assert.Empty(t, st.Queue)
	assert.Equal(t, 0, st.QueueIndex)
	assert.True(t, st.IsPlaying)
	assert.Equal(t, "b", st.CurrentTrack.ID)

	h.c.Flush()
	assert.Empty(t, h.audio.CallsMatching("pause"))
}

func TestController_OnEnded(t *testing.T) {
	t.Run("advances mid queue", func(t *testing.T) {
		h := newHarness(t, true)
		queue := testTracks("a", "b", "c")
		h.c.PlayTrack(queue[1], queue)
		h.c.OnDurationChange(200 * time.Second)
		h.c.OnTimeUpdate(200 * time.Second)
		h.c.Flush()
		h.audio.Reset()

		h.c.OnEnded()

		st := h.c.Status()
		assert.Equal(t, 2, st.QueueIndex)
		assert.Equal(t, "c", st.CurrentTrack.ID)
		assert.True(t, st.IsPlaying)
		assert.Equal(t, time.Duration(0), st.CurrentTime)

		h.c.Flush()
		assert.Equal(t, []string{"load:https://media.example.com/c.mp3", "play"}, h.audio.Calls())
	})

	t.Run("stops at end without looping", func(t *testing.T) {
		h := newHarness(t, true)
		queue := testTracks("a", "b")
		h.c.PlayTrack(queue[1], queue)
		h.c.Flush()
		h.audio.Reset()

		h.c.OnEnded()

		st := h.c.Status()
		assert.Equal(t, 1, st.QueueIndex)
		assert.Equal(t, "b", st.CurrentTrack.ID)
		assert.False(t, st.IsPlaying)
		assert.Equal(t, StateIdle, st.State)

		h.c.Flush()
		assert.Empty(t, h.audio.CallsMatching("load"))
	})
}

func TestController_UpsellExpiry(t *testing.T) {
	t.Run("clears after timeout", func(t *testing.T) {
		h := newHarness(t, false)
		h.c.TogglePlay()
		assert.True(t, h.c.Status().ShowUpsell)

		h.clock.Advance(9 * time.Second)
		assert.True(t, h.c.Status().ShowUpsell)

		h.clock.Advance(time.Second)
		assert.False(t, h.c.Status().ShowUpsell)
	})

	t.Run("re-raise extends expiry", func(t *testing.T) {
		h := newHarness(t, false)
		h.c.TogglePlay()

		h.clock.Advance(5 * time.Second)
		h.c.PlayTrack(testTrack("a", 1), nil)
		assert.Equal(t, 1, h.clock.Pending())

		h.clock.Advance(5 * time.Second)
		assert.True(t, h.c.Status().ShowUpsell)

		h.clock.Advance(5 * time.Second)
		assert.False(t, h.c.Status().ShowUpsell)
	})

	t.Run("dismiss cancels timer", func(t *testing.T) {
		h := newHarness(t, false)
		h.c.TogglePlay()

		h.c.DismissUpsell()
		assert.False(t, h.c.Status().ShowUpsell)
		assert.Equal(t, 0, h.clock.Pending())
	})
}

func TestController_MediaErrors(t *testing.T) {
	t.Run("play failure is recorded", func(t *testing.T) {
		h := newHarness(t, true)
		h.audio.playErr = errors.New("autoplay blocked")

		h.c.PlayTrack(testTrack("a", 1), nil)
		assert.True(t, h.c.Status().IsPlaying)

		h.c.Flush()
		st := h.c.Status()
		assert.False(t, st.IsPlaying)
		assert.Equal(t, StatePaused, st.State)
		assert.Contains(t, st.LastError, "autoplay blocked")
	})

	t.Run("load failure is recorded", func(t *testing.T) {
		h := newHarness(t, true)
		bad := testTrack("a", 1)
		h.audio.loadErrs[bad.MediaURL] = errors.New("decode failed")

		h.c.PlayTrack(bad, nil)
		h.c.Flush()

		st := h.c.Status()
		assert.False(t, st.IsPlaying)
		assert.Equal(t, StateIdle, st.State)
		assert.Contains(t, st.LastError, "decode failed")
		assert.Empty(t, h.audio.CallsMatching("play"))
	})

	t.Run("superseded failure is ignored", func(t *testing.T) {
		h := newHarness(t, true)
		queue := testTracks("a", "b")
		h.audio.loadErrs[queue[0].MediaURL] = errors.New("not found")

		h.c.PlayTrack(queue[0], queue)
		h.c.Next()
		h.c.Flush()

		st := h.c.Status()
		assert.True(t, st.IsPlaying)
		assert.Empty(t, st.LastError)
		assert.Equal(t, StatePlaying, st.State)
	})
}

func TestController_PlayAfterPreviewLoadsTrack(t *testing.T) {
	h := newHarness(t, false)
	h.c.PlayTrack(testTrack("a", 1), nil)

	h.ent.v.Store(true)
	h.c.Play()

	assert.True(t, h.c.Status().IsPlaying)
	h.c.Flush()
	assert.Equal(t, []string{"load:https://media.example.com/a.mp3", "play"}, h.audio.Calls())
}

func TestController_ExpandedView(t *testing.T) {
	h := newHarness(t, false)

	h.c.ToggleExpandedView()
	assert.True(t, h.c.Status().IsExpandedView)
	h.c.SetExpandedView(false)
	assert.False(t, h.c.Status().IsExpandedView)

	h.c.Flush()
	assert.Empty(t, h.audio.Calls())
}

func TestController_Events(t *testing.T) {
	h := newHarness(t, true)

	h.c.PlayTrack(testTrack("a", 1), nil)

	var types []EventType
	for len(types) < 2 {
		select {
		case ev := <-h.c.Events():
			types = append(types, ev.Type)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for events")
		}
	}
	assert.Equal(t, []EventType{EventQueueChanged, EventTrackChanged}, types)
}

func TestController_Close(t *testing.T) {
	h := newHarness(t, false)
	h.c.TogglePlay()
	require.Equal(t, 1, h.clock.Pending())

	h.c.Close()

	assert.Equal(t, 0, h.clock.Pending())
	assert.True(t, h.audio.closed)
	assert.True(t, h.audio.detached)
	assert.Contains(t, h.audio.Calls(), "pause")

	for range h.c.Events() {
	}

	h.c.PlayTrack(testTrack("a", 1), nil)
	h.c.OnEnded()
	assert.Nil(t, h.c.Status().CurrentTrack)

	h.c.Close()
}

func ids(st Status) []string {
	result := make([]string, len(st.Queue))
	for i, t := range st.Queue {
		result[i] = t.ID
	}
	return result
}
