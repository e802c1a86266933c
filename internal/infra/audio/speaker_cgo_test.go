//go:build (linux && cgo) || windows || darwin

package audio

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMixer stands in for the output device. drain plays the queued streams
// the way the device goroutine does, holding the mixer lock.
type fakeMixer struct {
	mu sync.Mutex // the mixer lock

	state  sync.Mutex
	active []beep.Streamer
	played int
	inits  int
}

func (m *fakeMixer) Init(sr beep.SampleRate, bufferSize int) error {
	m.state.Lock()
	defer m.state.Unlock()
	m.inits++
	return nil
}

func (m *fakeMixer) Play(s ...beep.Streamer) {
	m.state.Lock()
	defer m.state.Unlock()
	m.active = append(m.active, s...)
	m.played += len(s)
}

func (m *fakeMixer) Clear() {
	m.state.Lock()
	defer m.state.Unlock()
	m.active = nil
}

func (m *fakeMixer) Lock()   { m.mu.Lock() }
func (m *fakeMixer) Unlock() { m.mu.Unlock() }
func (m *fakeMixer) Close()  {}

func (m *fakeMixer) playedCount() int {
	m.state.Lock()
	defer m.state.Unlock()
	return m.played
}

// drain streams every queued stream and reports whether all of them finished.
// A paused stream never finishes and stays queued.
func (m *fakeMixer) drain() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Lock()
	active := m.active
	m.active = nil
	m.state.Unlock()

	buf := make([][2]float64, 512)
	var pending []beep.Streamer
	for _, st := range active {
		finished := false
		for i := 0; i < 64; i++ {
			if _, ok := st.Stream(buf); !ok {
				finished = true
				break
			}
		}
		if !finished {
			pending = append(pending, st)
		}
	}

	m.state.Lock()
	m.active = append(pending, m.active...)
	m.state.Unlock()
	return len(pending) == 0
}

// toneStreamer is a seekable constant signal of n samples.
type toneStreamer struct {
	n, pos int
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.n {
		return 0, false
	}
	k := min(len(samples), t.n-t.pos)
	for i := range samples[:k] {
		samples[i] = [2]float64{0.5, 0.5}
	}
	t.pos += k
	return k, true
}

func (t *toneStreamer) Err() error       { return nil }
func (t *toneStreamer) Len() int         { return t.n }
func (t *toneStreamer) Position() int    { return t.pos }
func (t *toneStreamer) Seek(p int) error { t.pos = p; return nil }
func (t *toneStreamer) Close() error     { return nil }

var testFormat = beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}

func newTestSpeaker(t *testing.T, maxBytes int64) (*Speaker, *fakeMixer, *recordingListener) {
	t.Helper()
	m := &fakeMixer{}
	s := newSpeaker(SpeakerConfig{
		SampleRate:      8000,
		BufferMs:        100,
		FetchTimeoutSec: 1,
		MaxMediaBytes:   maxBytes,
		TickMs:          1000,
	}, m)
	l := &recordingListener{}
	unsubscribe := s.Subscribe(l)
	t.Cleanup(func() {
		unsubscribe()
		_ = s.Close()
	})
	return s, m, l
}

func waitEnded(t *testing.T, l *recordingListener, want int) {
	t.Helper()
	require.Eventually(t, func() bool { return l.endedCount() == want }, time.Second, 5*time.Millisecond)
}

func TestSpeaker_Load(t *testing.T) {
	s, m, l := newTestSpeaker(t, 1024)

	require.NoError(t, s.load(&toneStreamer{n: 4000}, testFormat))
	require.NoError(t, s.load(&toneStreamer{n: 8000}, testFormat))

	l.mu.Lock()
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, l.durations)
	l.mu.Unlock()
	assert.Equal(t, 1, m.inits)
	assert.False(t, m.drain(), "loaded media waits paused")
}

func TestSpeaker_ReplayAfterEnd(t *testing.T) {
	s, m, l := newTestSpeaker(t, 1024)
	ctx := context.Background()
	src := &toneStreamer{n: 4000}

	require.NoError(t, s.load(src, testFormat))
	require.NoError(t, s.Play(ctx))
	require.True(t, m.drain())
	waitEnded(t, l, 1)

	require.NoError(t, s.Play(ctx))
	assert.Equal(t, 2, m.playedCount(), "finished stream is queued again")
	assert.Equal(t, 0, src.Position())

	require.True(t, m.drain())
	waitEnded(t, l, 2)
}

func TestSpeaker_SeekAfterEnd(t *testing.T) {
	s, m, l := newTestSpeaker(t, 1024)
	ctx := context.Background()

	require.NoError(t, s.load(&toneStreamer{n: 4000}, testFormat))
	require.NoError(t, s.Play(ctx))
	require.True(t, m.drain())
	waitEnded(t, l, 1)

	require.NoError(t, s.Seek(0))
	assert.Equal(t, 2, m.playedCount())
	assert.False(t, m.drain(), "rewound stream waits paused")

	require.NoError(t, s.Play(ctx))
	assert.Equal(t, 2, m.playedCount(), "unpausing needs no new stream")
	require.True(t, m.drain())
	waitEnded(t, l, 2)
}

func TestSpeaker_PauseHoldsStream(t *testing.T) {
	s, m, l := newTestSpeaker(t, 1024)

	require.NoError(t, s.load(&toneStreamer{n: 4000}, testFormat))
	require.NoError(t, s.Play(context.Background()))
	require.NoError(t, s.Pause())
	assert.False(t, m.drain())
	assert.Equal(t, 0, l.endedCount())
}

func TestSpeaker_Fetch(t *testing.T) {
	body := bytes.Repeat([]byte{0xff}, 2048)

	tests := []struct {
		name    string
		size    int
		chunked bool
		wantErr bool
	}{
		{name: "fits", size: 512},
		{name: "exactly the limit", size: 1024},
		{name: "declared too large", size: 2048, wantErr: true},
		{name: "streamed too large", size: 2048, chunked: true, wantErr: true},
		{name: "streamed one byte over", size: 1025, chunked: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.chunked {
					w.WriteHeader(http.StatusOK)
					w.(http.Flusher).Flush()
				} else {
					w.Header().Set("Content-Length", strconv.Itoa(tt.size))
				}
				_, _ = w.Write(body[:tt.size])
			}))
			defer srv.Close()

			s, _, _ := newTestSpeaker(t, 1024)
			data, err := s.fetch(context.Background(), srv.URL)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMediaTooLarge))
				return
			}
			require.NoError(t, err)
			assert.Len(t, data, tt.size)
		})
	}
}

func TestSpeaker_FetchStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	s, _, _ := newTestSpeaker(t, 1024)
	_, err := s.fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMediaTooLarge))
}
