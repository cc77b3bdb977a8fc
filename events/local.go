package events

import (
	"context"
	"sync"
)

const subscriberBuffer = 8

// LocalBus is the in-process delivery channel, the counterpart of the
// original storefront's same-window custom event. Slow subscribers drop
// events rather than block the publishing mutation; every event is a cue to
// re-read the store, so a dropped one is covered by the next.
type LocalBus struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewLocalBus() *LocalBus {
	return &LocalBus{subs: make(map[chan Event]struct{})}
}

func (b *LocalBus) Publish(_ context.Context, ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *LocalBus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}
