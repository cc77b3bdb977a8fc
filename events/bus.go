package events

import "context"

// CartUpdated is the single logical event in the system, broadcast after
// every successful cart mutation so other active views can re-read the store.
const CartUpdated = "cartUpdated"

// Event carries the name of what happened and the session whose cart changed.
type Event struct {
	Name      string `json:"event"`
	SessionID string `json:"session_id"`
}

// Publisher is the write side of the bus; the cart store only needs this.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// Bus delivers cart-change events to in-process subscribers. Subscribe
// returns a receive channel and a cancel func; callers must defer the cancel
// so detaching (including on error paths) always unsubscribes.
type Bus interface {
	Publisher
	Subscribe() (<-chan Event, func())
}
