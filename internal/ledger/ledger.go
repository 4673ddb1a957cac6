// Package ledger implements the append-only, most-recent-first record of
// confirmed orders.
package ledger

import (
	"sync"

	"ethnic-elite/internal/model"
)

// Ledger is the in-memory order ledger. Orders are prepended, never
// updated or deleted. Safe for concurrent use.
type Ledger struct {
	mu     sync.Mutex
	orders []model.Order
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append records a confirmed order at the front of the ledger.
func (l *Ledger) Append(order model.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]model.Order{order}, l.orders...)
}

// Orders returns a read-only snapshot, most recent first.
func (l *Ledger) Orders() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len returns the number of recorded orders.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}
