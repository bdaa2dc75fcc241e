// Package cart owns the per-session line-item ledger: add/update/remove
// rules, derived totals, best-effort persistence, and mutation
// notifications for interested surfaces.
package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

// Storage persists a ledger's line items under a key. Implementations
// live in internal/repository; the ledger only needs these three calls.
type Storage interface {
	Load(key string) (items []domain.CartItem, found bool, err error)
	Save(key string, items []domain.CartItem) error
	Delete(key string) error
}

// Ledger holds one session's line items. The collection keeps insertion
// order and never contains two items with the same (productID, color,
// size) triple. Memory is the source of truth for the session; storage
// is best-effort durability for the next one, so a failed save never
// rolls a mutation back.
type Ledger struct {
	mu     sync.Mutex
	key    string
	items  []domain.CartItem
	store  Storage
	logger *zap.Logger
	subs   []func()
}

// NewLedger creates an empty ledger persisted under key.
func NewLedger(key string, store Storage, logger *zap.Logger) *Ledger {
	return &Ledger{
		key:    key,
		store:  store,
		logger: logger,
	}
}

// NewLedgerFrom rehydrates a ledger from previously persisted items.
func NewLedgerFrom(key string, items []domain.CartItem, store Storage, logger *zap.Logger) *Ledger {
	l := NewLedger(key, store, logger)
	l.items = append(l.items, items...)
	return l
}

// Subscribe registers fn to run after each successful mutation.
func (l *Ledger) Subscribe(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}

// AddItem merges quantity into an existing line for the (product, color,
// size) triple, or appends a new line with the unit price and image
// frozen from the product as it is right now. Callers validate the color
// exists and quantity >= 1 before invoking, and perform any stock check;
// the ledger does not clamp against stock.
func (l *Ledger) AddItem(product domain.Product, colorName, sizeLabel string, quantity int) {
	l.mu.Lock()
	for i := range l.items {
		if l.items[i].Matches(product.ID, colorName, sizeLabel) {
			l.items[i].Quantity += quantity
			l.persistLocked()
			l.mu.Unlock()
			l.notify()
			return
		}
	}

	l.items = append(l.items, domain.CartItem{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.UnitPrice(),
		Image:         product.ImageFor(colorName),
		SelectedColor: colorName,
		SelectedSize:  sizeLabel,
		Quantity:      quantity,
		ProductID:     product.ID,
	})
	l.persistLocked()
	l.mu.Unlock()
	l.notify()
}

// UpdateQuantity shifts the matching line's quantity by delta, floored at
// zero; a line driven to zero is removed. An unknown key is a no-op.
func (l *Ledger) UpdateQuantity(productID, colorName, sizeLabel string, delta int) {
	l.mu.Lock()
	for i := range l.items {
		if !l.items[i].Matches(productID, colorName, sizeLabel) {
			continue
		}
		newQty := l.items[i].Quantity + delta
		if newQty <= 0 {
			l.items = append(l.items[:i], l.items[i+1:]...)
		} else {
			l.items[i].Quantity = newQty
		}
		l.persistLocked()
		l.mu.Unlock()
		l.notify()
		return
	}
	l.mu.Unlock()
}

// RemoveItem drops the matching line if present; idempotent.
func (l *Ledger) RemoveItem(productID, colorName, sizeLabel string) {
	l.mu.Lock()
	for i := range l.items {
		if l.items[i].Matches(productID, colorName, sizeLabel) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persistLocked()
			l.mu.Unlock()
			l.notify()
			return
		}
	}
	l.mu.Unlock()
}

// Clear empties the collection and persists the empty state.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.items = nil
	l.persistLocked()
	l.mu.Unlock()
	l.notify()
}

// Items returns a snapshot copy in insertion order.
func (l *Ledger) Items() []domain.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

// Count is the sum of quantities across all lines.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price*quantity across all lines.
func (l *Ledger) Subtotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var subtotal float64
	for _, item := range l.items {
		subtotal += item.Subtotal()
	}
	return subtotal
}

func (l *Ledger) persistLocked() {
	if l.store == nil {
		return
	}
	if err := l.store.Save(l.key, l.items); err != nil {
		l.logger.Warn("cart persist failed, keeping in-memory state",
			zap.String("cart_key", l.key),
			zap.Error(err))
	}
}

func (l *Ledger) notify() {
	l.mu.Lock()
	subs := make([]func(), len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
