package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/regarstore/v0-xl-kuota-website/events"
	"github.com/regarstore/v0-xl-kuota-website/models"
)

// KeyPrefix namespaces every persisted cart. A session's cart lives under
// "xlCartItems:<sessionID>" as a JSON array of cart lines, the storefront's
// storage layout verbatim.
const KeyPrefix = "xlCartItems"

func storageKey(sessionID string) string {
	if sessionID == "" {
		return KeyPrefix
	}
	return KeyPrefix + ":" + sessionID
}

// DefaultCart is the demonstration cart shown when a session has no saved
// cart yet (or its saved cart is unreadable).
func DefaultCart() models.CartItems {
	return models.CartItems{
		{ID: 1, Name: "XL Regular", Data: "8 GB", Validity: "30 Hari", Price: 50000, Quantity: 1},
		{ID: 2, Name: "XL Mini", Data: "1 GB", Validity: "1 Hari", Price: 5000, Quantity: 2},
	}
}

// CartStore is what every view depends on; nothing outside this package
// touches the raw storage key. The persisted snapshot is the only
// authoritative state, read and written wholesale.
type CartStore interface {
	// Load returns the saved snapshot, or the default demo cart when none is
	// saved or the saved one is unreadable. It never fails.
	Load(ctx context.Context, sessionID string) models.CartItems
	// Peek returns the saved snapshot without the demo fallback. found is
	// false when nothing is saved; err is non-nil when something is saved but
	// unreadable.
	Peek(ctx context.Context, sessionID string) (items models.CartItems, found bool, err error)
	// Save overwrites the snapshot in full. No partial merge.
	Save(ctx context.Context, sessionID string, items models.CartItems) error
	// AddOrIncrement bumps the quantity of an existing line with the same
	// product id, or appends a new line with quantity 1. Reports whether the
	// line already existed.
	AddOrIncrement(ctx context.Context, sessionID string, line models.CartItem) (items models.CartItems, existed bool, err error)
	// Clear deletes the persisted snapshot entirely.
	Clear(ctx context.Context, sessionID string) error
}

// Backend is raw keyed-blob storage. Get reports found=false for an absent
// key without error.
type Backend interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

// Store implements CartStore over a Backend and emits a cart-changed event
// after every successful mutation. The mutex serializes read-modify-write
// cycles within this process; across processes the model stays
// last-writer-wins, as it was for the storefront's localStorage.
type Store struct {
	backend Backend
	bus     events.Publisher
	mu      sync.Mutex
}

func New(backend Backend, bus events.Publisher) *Store {
	return &Store{backend: backend, bus: bus}
}

func (s *Store) Load(ctx context.Context, sessionID string) models.CartItems {
	items, found, err := s.Peek(ctx, sessionID)
	if err != nil {
		log.Printf("cart %s unreadable, serving default cart: %v", storageKey(sessionID), err)
		return DefaultCart()
	}
	if !found {
		return DefaultCart()
	}
	return items
}

func (s *Store) Peek(ctx context.Context, sessionID string) (models.CartItems, bool, error) {
	payload, found, err := s.backend.Get(ctx, storageKey(sessionID))
	if err != nil {
		return nil, false, fmt.Errorf("read cart: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	var items models.CartItems
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("parse cart: %w", err)
	}
	return items, true, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, items models.CartItems) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, sessionID, items); err != nil {
		return err
	}
	s.notify(ctx, sessionID)
	return nil
}

func (s *Store) AddOrIncrement(ctx context.Context, sessionID string, line models.CartItem) (models.CartItems, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, _, err := s.Peek(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	existed := false
	for i := range items {
		if items[i].ID == line.ID {
			items[i].Quantity++
			existed = true
			break
		}
	}
	if !existed {
		line.Quantity = 1
		items = append(items, line)
	}

	if err := s.save(ctx, sessionID, items); err != nil {
		return nil, false, err
	}
	s.notify(ctx, sessionID)
	return items, existed, nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Delete(ctx, storageKey(sessionID)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.notify(ctx, sessionID)
	return nil
}

func (s *Store) save(ctx context.Context, sessionID string, items models.CartItems) error {
	if items == nil {
		items = models.CartItems{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.backend.Set(ctx, storageKey(sessionID), payload); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

// notify runs strictly after the write it reports on has completed, so a
// subscriber's re-read observes the just-written value.
func (s *Store) notify(ctx context.Context, sessionID string) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, events.Event{Name: events.CartUpdated, SessionID: sessionID})
}
