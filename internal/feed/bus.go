package feed

import (
	"sync"
)

// Publisher accepts events. Publishing never blocks on slow readers.
type Publisher interface {
	Publish(evt Event) error
}

// Bus is a Publisher that can also be subscribed to.
type Bus interface {
	Publisher
	Subscribe(buffer int) (*Subscription, error)
	Close() error
}

// Discard is a Publisher that drops everything.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Event) error { return nil }

// Subscription is a buffered stream of events for one reader. When the
// buffer is full the oldest event is dropped to make room.
type Subscription struct {
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
	onClose   func()
}

func newSubscription(buffer int) *Subscription {
	if buffer < 1 {
		buffer = 1
	}
	return &Subscription{
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
}

// Send delivers evt without blocking. Sends after Close are ignored.
func (s *Subscription) Send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events is the receive side of the stream.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Done is closed when the subscription is closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close detaches the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.onClose != nil {
			s.onClose()
		}
	})
}

// LocalBus delivers events in-process.
type LocalBus struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// NewLocalBus creates an empty in-process bus.
func NewLocalBus() *LocalBus {
	return &LocalBus{subs: make(map[*Subscription]struct{})}
}

// Publish fans evt out to every open subscription.
func (b *LocalBus) Publish(evt Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.subs {
		s.Send(evt)
	}
	return nil
}

// Subscribe registers a new reader.
func (b *LocalBus) Subscribe(buffer int) (*Subscription, error) {
	s := newSubscription(buffer)
	s.onClose = func() {
		b.mu.Lock()
		delete(b.subs, s)
		b.mu.Unlock()
	}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	return s, nil
}

// Close closes every subscription.
func (b *LocalBus) Close() error {
	b.mu.Lock()
	subs := make([]*Subscription, 0, len(b.subs))
	for s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
	return nil
}
