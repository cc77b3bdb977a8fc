package events

import (
	"context"
	"testing"
	"time"
)

func TestLocalBusDelivers(t *testing.T) {
	bus := NewLocalBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(context.Background(), Event{Name: CartUpdated, SessionID: "s1"})

	select {
	case ev := <-ch:
		if ev.Name != CartUpdated || ev.SessionID != "s1" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestLocalBusUnsubscribe(t *testing.T) {
	bus := NewLocalBus()
	ch, cancel := bus.Subscribe()
	cancel()
	// cancel is idempotent; detaching twice must not panic
	cancel()

	bus.Publish(context.Background(), Event{Name: CartUpdated})

	if _, ok := <-ch; ok {
		t.Fatal("received event on cancelled subscription")
	}
}

func TestLocalBusSlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewLocalBus()
	_, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// more events than the subscriber buffer holds, never read
		for i := 0; i < subscriberBuffer*4; i++ {
			bus.Publish(context.Background(), Event{Name: CartUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
