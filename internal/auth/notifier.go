package auth

import (
	"sync"
	"time"
)

// EventType names an identity change
type EventType string

const (
	EventCurrent         EventType = "current"
	EventSignedIn        EventType = "signed_in"
	EventSignedOut       EventType = "signed_out"
	EventPasswordChanged EventType = "password_changed"
	EventStatusChanged   EventType = "profile_status_changed"
)

// Event is delivered to every subscriber of an identity
type Event struct {
	Type       EventType `json:"type"`
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role,omitempty"`
	Status     string    `json:"status,omitempty"`
	At         time.Time `json:"at"`
}

// Notifier fans identity-change events out to subscribers keyed by identity id
type Notifier struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]chan Event
	nextID uint64
	buffer int
}

// NewNotifier creates a Notifier whose subscriber channels hold up to buffer events
func NewNotifier(buffer int) *Notifier {
	if buffer <= 0 {
		buffer = 8
	}
	return &Notifier{
		subs:   make(map[string]map[uint64]chan Event),
		buffer: buffer,
	}
}

// Subscribe registers for events of one identity. The returned func unsubscribes and
// closes the channel; calling it more than once is safe.
func (n *Notifier) Subscribe(identityID string) (<-chan Event, func()) {
	ch := make(chan Event, n.buffer)

	n.mu.Lock()
	n.nextID++
	id := n.nextID
	if n.subs[identityID] == nil {
		n.subs[identityID] = make(map[uint64]chan Event)
	}
	n.subs[identityID][id] = ch
	n.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs[identityID], id)
			if len(n.subs[identityID]) == 0 {
				delete(n.subs, identityID)
			}
			close(ch)
			n.mu.Unlock()
		})
	}

	return ch, unsubscribe
}

// Publish delivers ev to the subscribers of ev.IdentityID. Slow subscribers miss events
// instead of blocking the publisher.
func (n *Notifier) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs[ev.IdentityID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers returns the number of open subscriptions for an identity
func (n *Notifier) Subscribers(identityID string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs[identityID])
}
