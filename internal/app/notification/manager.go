// Package notification fans player notifications out to stream subscribers.
// Every subscriber owns a bounded mailbox drained by its own goroutine, so a
// slow stream delays nobody but itself.
package notification

import (
	"sync"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
)

const (
	// mailboxSize is the number of notifications a subscriber may lag behind.
	// Past it, new notifications are dropped for that subscriber.
	mailboxSize = 64

	// maxFailures consecutive failed sends evict a subscriber.
	maxFailures = 3
)

// Stream represents a notification stream for a subscriber.
type Stream interface {
	Send(*playerv1.Notification) error
}

type subscriber struct {
	id      string
	stream  Stream
	mailbox chan *playerv1.Notification
	gone    chan struct{} // closed on removal
	stopped chan struct{} // closed when deliver returns
	dropped uint64
}

// Manager manages notification subscriptions and broadcasting.
type Manager struct {
	mu          sync.Mutex
	subscribers map[string]*subscriber
	retired     map[string]*subscriber // removed, waiting for Unsubscribe
	sequenceNo  uint64
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscribers: make(map[string]*subscriber),
		retired:     make(map[string]*subscriber),
	}
}

// Subscribe registers a stream and returns its subscription ID. A non-nil
// initial notification is numbered and delivered before any broadcast.
func (m *Manager) Subscribe(stream Stream, initial *playerv1.Notification) string {
	sub := &subscriber{
		id:      uuid.New().String(),
		stream:  stream,
		mailbox: make(chan *playerv1.Notification, mailboxSize),
		gone:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	m.mu.Lock()
	if initial != nil {
		m.sequenceNo++
		initial.SequenceNo = m.sequenceNo
		sub.mailbox <- initial
	}
	m.subscribers[sub.id] = sub
	m.mu.Unlock()

	go m.deliver(sub)
	return sub.id
}

// Gone is closed once the subscription has been removed, either by
// Unsubscribe, by Close or because its stream kept failing. Unknown IDs
// yield a closed channel.
func (m *Manager) Gone(subscriptionID string) <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sub, ok := m.subscribers[subscriptionID]; ok {
		return sub.gone
	}
	if sub, ok := m.retired[subscriptionID]; ok {
		return sub.gone
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Unsubscribe removes a subscription and waits for its delivery goroutine,
// so the stream is not used after Unsubscribe returns.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.remove(subscriptionID)

	m.mu.Lock()
	sub, ok := m.retired[subscriptionID]
	delete(m.retired, subscriptionID)
	m.mu.Unlock()

	if ok {
		<-sub.stopped
	}
}

// Broadcast stamps the notification with the next sequence number and queues
// it for every subscriber. It never blocks on a stream.
func (m *Manager) Broadcast(n *playerv1.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sequenceNo++
	n.SequenceNo = m.sequenceNo

	for _, sub := range m.subscribers {
		select {
		case sub.mailbox <- n:
		default:
			sub.dropped++
			zlog.Debug().Msgf("notification: mailbox full id=%s type=%s dropped=%d", sub.id, n.Type, sub.dropped)
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers)
}

// Close removes all subscriptions. Sends in flight finish in the background;
// Unsubscribe still waits for them.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, sub := range m.subscribers {
		delete(m.subscribers, id)
		m.retired[id] = sub
		close(sub.gone)
	}
}

// remove retires an active subscription and closes its gone channel.
func (m *Manager) remove(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.subscribers[subscriptionID]
	if !ok {
		return
	}
	delete(m.subscribers, subscriptionID)
	m.retired[subscriptionID] = sub
	close(sub.gone)
}

func (m *Manager) deliver(sub *subscriber) {
	defer close(sub.stopped)

	failures := 0
	for {
		select {
		case <-sub.gone:
			return
		case n := <-sub.mailbox:
			if err := sub.stream.Send(n); err != nil {
				failures++
				zlog.Debug().Msgf("notification: send failed id=%s type=%s failures=%d: %v", sub.id, n.Type, failures, err)
				if failures >= maxFailures {
					zlog.Info().Msgf("notification: evicting subscriber id=%s", sub.id)
					m.remove(sub.id)
					return
				}
				continue
			}
			failures = 0
		}
	}
}
