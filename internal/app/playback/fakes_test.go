package playback

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osa030/19player/internal/domain/track"
)

// fakeAudio records every handle operation.
type fakeAudio struct {
	mu       sync.Mutex
	calls    []string
	volume   float64
	listener AudioListener
	loadErrs map[string]error
	playErr  error
	closed   bool
	detached bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{loadErrs: make(map[string]error)}
}

func (f *fakeAudio) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeAudio) Load(ctx context.Context, media track.Media) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("load:" + media.URL)
	return f.loadErrs[media.URL]
}

func (f *fakeAudio) Play(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("play")
	return f.playErr
}

func (f *fakeAudio) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("pause")
	return nil
}

func (f *fakeAudio) Seek(pos time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("seek:%s", pos))
	return nil
}

func (f *fakeAudio) SetVolume(level float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = level
	f.record(fmt.Sprintf("volume:%.2f", level))
	return nil
}

func (f *fakeAudio) Subscribe(l AudioListener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listener = l
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.listener = nil
		f.detached = true
	}
}

func (f *fakeAudio) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.record("close")
	return nil
}

func (f *fakeAudio) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]string, len(f.calls))
	copy(result, f.calls)
	return result
}

// CallsMatching returns the recorded calls that start with prefix.
func (f *fakeAudio) CallsMatching(prefix string) []string {
	var result []string
	for _, c := range f.Calls() {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			result = append(result, c)
		}
	}
	return result
}

func (f *fakeAudio) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *fakeAudio) Volume() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.volume
}

// fakeScheduler is a manual clock for the upsell timer.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock and runs every timer that became due.
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of armed timers.
func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type switchEntitlement struct {
	v atomic.Bool
}

func (e *switchEntitlement) IsEntitled() bool { return e.v.Load() }

func newSwitch(v bool) *switchEntitlement {
	e := &switchEntitlement{}
	e.v.Store(v)
	return e
}

func testTrack(id string, n int) track.Track {
	return track.Track{
		ID:          id,
		Title:       "Title " + id,
		ArtistName:  "Artist",
		AlbumID:     "album1",
		AlbumTitle:  "Album",
		Duration:    200 * time.Second,
		MediaURL:    "https://media.example.com/" + id + ".mp3",
		TrackNumber: n,
	}
}

func testTracks(ids ...string) []track.Track {
	tracks := make([]track.Track, len(ids))
	for i, id := range ids {
		tracks[i] = testTrack(id, i+1)
	}
	return tracks
}
