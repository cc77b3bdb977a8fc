package models

import "time"

// CartItem is one line of a shopping cart. Name, data, validity and price are
// copied from the product at the time the line was added and are never
// re-derived, so a later catalog price change does not touch existing lines.
// The JSON field names are the persisted wire format.
type CartItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Data     string `json:"data"`
	Validity string `json:"validity"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartItems is a full cart snapshot, ordered by insertion.
type CartItems []CartItem

// Subtotal sums price times quantity over all lines.
func (items CartItems) Subtotal() int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

// Count sums the quantities, the number shown on the header badge.
func (items CartItems) Count() int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// SetQuantity updates one line's quantity in place. A requested quantity
// below 1 is rejected and leaves the snapshot unchanged, as does an unknown
// id. Reports whether anything changed.
func (items CartItems) SetQuantity(id, quantity int) bool {
	if quantity < 1 {
		return false
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove returns the snapshot minus the line with the given id. Removing an
// absent id is a no-op.
func (items CartItems) Remove(id int) CartItems {
	out := make(CartItems, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// CartRecord is the persisted form of a cart snapshot: one row per storage
// key holding the serialized CartItems payload wholesale.
type CartRecord struct {
	Key       string `gorm:"primaryKey"`
	Payload   string
	UpdatedAt time.Time
}
