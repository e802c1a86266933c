package notification

import (
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
)

type recordingStream struct {
	mu    sync.Mutex
	got   []*playerv1.Notification
	err   error
	calls int
	block chan struct{}
}

func (s *recordingStream) Send(n *playerv1.Notification) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, n)
	return nil
}

func (s *recordingStream) received() []*playerv1.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*playerv1.Notification(nil), s.got...)
}

func (s *recordingStream) sendCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitReceived(t *testing.T, s *recordingStream, n int) []*playerv1.Notification {
	t.Helper()
	require.Eventually(t, func() bool { return len(s.received()) >= n }, time.Second, 5*time.Millisecond)
	return s.received()
}

func TestManager_SubscribeUnsubscribe(t *testing.T) {
	m := NewManager()
	a := m.Subscribe(&recordingStream{}, nil)
	b := m.Subscribe(&recordingStream{}, nil)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, m.SubscriberCount())

	m.Unsubscribe(a)
	assert.Equal(t, 1, m.SubscriberCount())
	select {
	case <-m.Gone(a):
	default:
		t.Fatal("gone channel of an unsubscribed id is open")
	}

	m.Unsubscribe(a)
	m.Close()
	assert.Equal(t, 0, m.SubscriberCount())
}

func TestManager_InitialBeforeBroadcast(t *testing.T) {
	m := NewManager()
	m.Broadcast(&playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_PROGRESS})

	s := &recordingStream{}
	m.Subscribe(s, &playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_INITIAL_STATE})
	m.Broadcast(&playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_TRACK_CHANGED})

	got := waitReceived(t, s, 2)
	assert.Equal(t, playerv1.NotificationType_NOTIFICATION_TYPE_INITIAL_STATE, got[0].Type)
	assert.Equal(t, uint64(2), got[0].SequenceNo)
	assert.Equal(t, playerv1.NotificationType_NOTIFICATION_TYPE_TRACK_CHANGED, got[1].Type)
	assert.Equal(t, uint64(3), got[1].SequenceNo)
}

func TestManager_BroadcastSequence(t *testing.T) {
	m := NewManager()
	s1, s2 := &recordingStream{}, &recordingStream{}
	m.Subscribe(s1, nil)
	m.Subscribe(s2, nil)

	m.Broadcast(&playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_TRACK_CHANGED})
	m.Broadcast(&playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_STATE_CHANGED})

	for _, s := range []*recordingStream{s1, s2} {
		got := waitReceived(t, s, 2)
		require.Len(t, got, 2)
		assert.Equal(t, uint64(1), got[0].SequenceNo)
		assert.Equal(t, playerv1.NotificationType_NOTIFICATION_TYPE_TRACK_CHANGED, got[0].Type)
		assert.Equal(t, uint64(2), got[1].SequenceNo)
	}
}

func TestManager_SlowStreamDoesNotBlockOthers(t *testing.T) {
	m := NewManager()
	fast := &recordingStream{}
	slow := &recordingStream{block: make(chan struct{})}
	m.Subscribe(fast, nil)
	slowID := m.Subscribe(slow, nil)

	start := time.Now()
	total := mailboxSize + 10
	for i := 0; i < total; i++ {
		m.Broadcast(&playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_PROGRESS})
	}
	assert.Less(t, time.Since(start), time.Second)

	got := waitReceived(t, fast, total)
	assert.Len(t, got, total)
	assert.Equal(t, uint64(total), got[total-1].SequenceNo)

	// The slow stream keeps its mailbox and loses the overflow.
	close(slow.block)
	waitReceived(t, slow, mailboxSize)
	m.Unsubscribe(slowID)
	assert.Less(t, len(slow.received()), total)
}

func TestManager_EvictsFailingStream(t *testing.T) {
	m := NewManager()
	ok := &recordingStream{}
	failing := &recordingStream{err: errors.New("closed")}
	m.Subscribe(ok, nil)
	failingID := m.Subscribe(failing, nil)

	for i := 0; i < maxFailures; i++ {
		m.Broadcast(&playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_PROGRESS})
	}

	select {
	case <-m.Gone(failingID):
	case <-time.After(time.Second):
		t.Fatal("failing stream was not evicted")
	}
	assert.Equal(t, 1, m.SubscriberCount())

	m.Broadcast(&playerv1.Notification{Type: playerv1.NotificationType_NOTIFICATION_TYPE_PROGRESS})
	waitReceived(t, ok, maxFailures+1)
	assert.Equal(t, maxFailures, failing.sendCalls())

	m.Unsubscribe(failingID)
}

func TestManager_RecoversAfterTransientFailure(t *testing.T) {
	m := NewManager()
	s := &recordingStream{err: errors.New("hiccup")}
	id := m.Subscribe(s, nil)

	m.Broadcast(&playerv1.Notification{})
	require.Eventually(t, func() bool { return s.sendCalls() == 1 }, time.Second, 5*time.Millisecond)

	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()

	m.Broadcast(&playerv1.Notification{})
	waitReceived(t, s, 1)
	assert.Equal(t, 1, m.SubscriberCount())

	select {
	case <-m.Gone(id):
		t.Fatal("stream evicted after a single failure")
	default:
	}
}

func TestManager_CloseReleasesSubscribers(t *testing.T) {
	m := NewManager()
	id := m.Subscribe(&recordingStream{}, nil)
	gone := m.Gone(id)

	m.Close()

	select {
	case <-gone:
	case <-time.After(time.Second):
		t.Fatal("gone channel not closed")
	}
	assert.Equal(t, 0, m.SubscriberCount())
	m.Unsubscribe(id)
}
