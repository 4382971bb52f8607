// Package cart implements the shopping cart: an ordered list of product
// lines with derived pricing, written through to storage on every mutation.
package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"techstore/internal/domain"
	"techstore/internal/storage"
)

// taxRateBasisPoints is the flat sales tax applied to the subtotal.
const taxRateBasisPoints = 1000 // 10%

// ErrInvalidQuantity is returned when an add is attempted with a quantity
// below one.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Engine owns the cart lines. Totals are derived on demand from the line
// list, never cached, so a read after a mutation can not observe stale
// values. Every mutation persists the full line list before returning;
// a failed write is logged and the in-memory state stands.
type Engine struct {
	mu     sync.Mutex
	lines  []domain.CartLine
	store  storage.Store
	logger *log.Logger
	subs   []func()
}

func New(store storage.Store, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{store: store, logger: logger}
}

// Load rehydrates the cart from storage. An absent key is an empty cart.
func (e *Engine) Load(ctx context.Context) error {
	var lines []domain.CartLine
	if err := storage.ReadJSON(ctx, e.store, storage.KeyCart, &lines); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	e.mu.Lock()
	e.lines = lines
	e.mu.Unlock()
	return nil
}

// Subscribe registers a callback invoked after every cart mutation. The
// presentation layer uses this to re-render instead of the engine reaching
// into display code.
func (e *Engine) Subscribe(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Add puts quantity units of the product into the cart. A product already in
// the cart gets its line quantity incremented; the line list never holds two
// lines for the same product id. No stock check happens here.
func (e *Engine) Add(ctx context.Context, p domain.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	e.mu.Lock()
	merged := false
	for i := range e.lines {
		if e.lines[i].ID == p.ID {
			e.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		e.lines = append(e.lines, domain.CartLine{Product: p, Quantity: quantity})
	}
	e.persist(ctx)
	e.mu.Unlock()
	e.notify()
	return nil
}

// Remove deletes the line for productID. Removing an absent id is a no-op.
func (e *Engine) Remove(ctx context.Context, productID int) {
	e.mu.Lock()
	kept := e.lines[:0]
	for _, l := range e.lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	changed := len(kept) != len(e.lines)
	e.lines = kept
	if changed {
		e.persist(ctx)
	}
	e.mu.Unlock()
	if changed {
		e.notify()
	}
}

// UpdateQuantity sets the line's quantity, flooring at one. Dropping a line
// goes through Remove, never through a decrement. Absent ids are a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, productID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	e.mu.Lock()
	changed := false
	for i := range e.lines {
		if e.lines[i].ID == productID {
			e.lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if changed {
		e.persist(ctx)
	}
	e.mu.Unlock()
	if changed {
		e.notify()
	}
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	e.lines = nil
	e.persist(ctx)
	e.mu.Unlock()
	e.notify()
}

// Lines returns a copy of the cart in add order.
func (e *Engine) Lines() []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make([]domain.CartLine, len(e.lines))
	copy(cp, e.lines)
	return cp
}

// Subtotal is the sum of line price times quantity, in cents.
func (e *Engine) Subtotal() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return subtotal(e.lines)
}

// Tax applies the flat rate to the subtotal, rounding half up to the cent.
func (e *Engine) Tax() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return tax(subtotal(e.lines))
}

// Total is subtotal plus tax.
func (e *Engine) Total() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	sub := subtotal(e.lines)
	return sub + tax(sub)
}

// TotalItems is the sum of line quantities, used for badge counts.
func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, l := range e.lines {
		total += l.Quantity
	}
	return total
}

// TotalCents prices a detached line list: subtotal plus tax, with the same
// rounding the engine applies. Checkout uses it so an order's total always
// agrees with the lines it captured.
func TotalCents(lines []domain.CartLine) int64 {
	sub := subtotal(lines)
	return sub + tax(sub)
}

func subtotal(lines []domain.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.LineTotalCents()
	}
	return total
}

func tax(subtotal int64) int64 {
	return (subtotal*taxRateBasisPoints + 5000) / 10000
}

// persist writes the full line list through. Caller holds the lock. A write
// failure degrades to "cart not persisted": the in-memory mutation stands.
func (e *Engine) persist(ctx context.Context) {
	lines := e.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	if err := storage.WriteJSON(ctx, e.store, storage.KeyCart, lines); err != nil {
		e.logger.Printf("cart: state not persisted: %v", err)
	}
}

func (e *Engine) notify() {
	e.mu.Lock()
	subs := make([]func(), len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
