package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/regarstore/v0-xl-kuota-website/models"
	"github.com/regarstore/v0-xl-kuota-website/store"
)

// State is where a single checkout instance is in its lifecycle.
type State int

const (
	StateLoading     State = iota // reading the cart store
	StateReady                    // cart non-empty, waiting for the customer form
	StateRedirecting              // cart empty or unreadable; terminal for this instance
	StateCompleted                // submission accepted, cart cleared
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateRedirecting:
		return "redirecting"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

const (
	CartPath = "/cart"
	HomePath = "/"

	// RedirectDelay is how long the success notice stays up before the
	// client should navigate home.
	RedirectDelay = 2 * time.Second
)

// ErrIncompleteForm rejects a submission with any empty contact field. No
// state changes and the cart is untouched; the customer may retry at once.
var ErrIncompleteForm = errors.New("incomplete form")

// ErrNotReady rejects a submission against an instance that is not waiting
// for input.
var ErrNotReady = errors.New("checkout not ready for input")

// OrderRecorder persists the simulated order produced by an accepted
// submission.
type OrderRecorder interface {
	Record(ctx context.Context, order *models.Order) error
}

// Finalizer builds checkout instances over the cart store.
type Finalizer struct {
	store  store.CartStore
	orders OrderRecorder
}

func NewFinalizer(cartStore store.CartStore, orders OrderRecorder) *Finalizer {
	return &Finalizer{store: cartStore, orders: orders}
}

// Checkout is one instance of the checkout flow for one session.
type Checkout struct {
	f          *Finalizer
	sessionID  string
	state      State
	items      models.CartItems
	loadFailed bool
}

// Begin reads the cart store and decides the entry state: ReadyForInput when
// the cart has lines, Redirecting back to the cart view when it is empty,
// absent, or unreadable.
func (f *Finalizer) Begin(ctx context.Context, sessionID string) *Checkout {
	c := &Checkout{f: f, sessionID: sessionID, state: StateLoading}

	items, found, err := f.store.Peek(ctx, sessionID)
	if err != nil {
		log.Printf("checkout: cart for session %s unreadable: %v", sessionID, err)
		c.loadFailed = true
		c.state = StateRedirecting
		return c
	}
	if !found || len(items) == 0 {
		c.state = StateRedirecting
		return c
	}

	c.items = items
	c.state = StateReady
	return c
}

func (c *Checkout) State() State            { return c.state }
func (c *Checkout) Items() models.CartItems { return c.items }

// LoadFailed reports whether the redirect was caused by an unreadable cart
// rather than an empty one, so the view can show a dismissible notice.
func (c *Checkout) LoadFailed() bool { return c.loadFailed }

// RedirectTo is where the client should navigate for the current state, or
// "" when no navigation is pending.
func (c *Checkout) RedirectTo() string {
	switch c.state {
	case StateRedirecting:
		return CartPath
	case StateCompleted:
		return HomePath
	default:
		return ""
	}
}

// Result describes an accepted submission.
type Result struct {
	Reference  string
	Order      *models.Order
	RedirectTo string
	Delay      time.Duration
}

// Submit validates the customer form and finalizes the order. All three
// contact fields must be non-empty; the payment selection is accepted as-is,
// it is cosmetic. On acceptance the cart store is cleared (which broadcasts
// the change notification) and a simulated order is recorded. No payment
// call happens anywhere.
func (c *Checkout) Submit(ctx context.Context, info models.CustomerInfo, payment models.PaymentSelection) (*Result, error) {
	if c.state != StateReady {
		return nil, ErrNotReady
	}
	if strings.TrimSpace(info.Name) == "" ||
		strings.TrimSpace(info.Email) == "" ||
		strings.TrimSpace(info.Phone) == "" {
		return nil, ErrIncompleteForm
	}

	if payment.Provider == "" {
		payment.Provider = models.DefaultProvider(payment.Type)
	}

	subtotal := c.items.Subtotal()
	discount := 0
	order := &models.Order{
		Reference:     generateOrderRef(),
		SessionID:     c.sessionID,
		CustomerName:  info.Name,
		CustomerEmail: info.Email,
		CustomerPhone: info.Phone,
		PaymentType:   string(payment.Type),
		PaymentProv:   string(payment.Provider),
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         subtotal - discount,
	}
	for _, item := range c.items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Data:      item.Data,
			Validity:  item.Validity,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := c.f.store.Clear(ctx, c.sessionID); err != nil {
		// Storage failure is treated as absence, not a fault worth failing
		// the order over.
		log.Printf("checkout: clear cart for session %s: %v", c.sessionID, err)
	}
	if c.f.orders != nil {
		if err := c.f.orders.Record(ctx, order); err != nil {
			log.Printf("checkout: record order %s: %v", order.Reference, err)
		}
	}

	c.state = StateCompleted
	return &Result{
		Reference:  order.Reference,
		Order:      order,
		RedirectTo: HomePath,
		Delay:      RedirectDelay,
	}, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
