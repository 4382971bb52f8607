// Package checkout turns the current cart into an order. Placement simulates
// a processing delay; while one placement is in flight any further attempt is
// rejected, so a double-invoked checkout can not mint duplicate orders.
package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"techstore/internal/cart"
	"techstore/internal/domain"
	"techstore/internal/storage"
)

// shippingAddress is the demo placeholder; there is no address book.
const shippingAddress = "123 Tech Street, Digital City"

var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrLoginRequired is returned for anonymous checkout attempts.
	ErrLoginRequired = errors.New("login required to checkout")
	// ErrCheckoutInProgress is returned while another placement is running.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

type cartEngine interface {
	Lines() []domain.CartLine
	Remove(ctx context.Context, productID int)
}

type sessionSource interface {
	Current(ctx context.Context) *domain.Session
}

// Service owns the order list and the placement flow.
type Service struct {
	mu       sync.Mutex
	inFlight bool
	orders   []domain.Order
	cart     cartEngine
	sessions sessionSource
	store    storage.Store
	delay    time.Duration
	logger   *log.Logger
	now      func() time.Time
	newID    func() string
}

func New(cart cartEngine, sessions sessionSource, store storage.Store, delay time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		cart:     cart,
		sessions: sessions,
		store:    store,
		delay:    delay,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Load rehydrates the order history, preferring the persisted list over the
// seed.
func (s *Service) Load(ctx context.Context, seed []domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order(nil), seed...)
	var saved []domain.Order
	if err := storage.ReadJSON(ctx, s.store, storage.KeyOrders, &saved); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	s.orders = saved
	return nil
}

// PlaceOrder creates an order from the current cart for the logged-in user,
// then removes the ordered lines from the cart. The lines are captured before
// the simulated processing delay and the order is priced from that capture,
// so cart mutations during the delay neither change the order nor get lost.
// The delay respects ctx: a cancelled checkout leaves cart and orders
// untouched.
func (s *Service) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	sess := s.sessions.Current(ctx)
	if sess == nil {
		return nil, ErrLoginRequired
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:              s.newID(),
		UserID:          sess.UserID,
		Lines:           lines,
		TotalCents:      cart.TotalCents(lines),
		Status:          domain.OrderStatusProcessing,
		Date:            s.now().UTC().Format("2006-01-02"),
		ShippingAddress: shippingAddress,
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	if err := storage.WriteJSON(ctx, s.store, storage.KeyOrders, s.orders); err != nil {
		s.logger.Printf("checkout: orders not persisted: %v", err)
	}
	s.mu.Unlock()

	// Only the captured lines leave the cart; anything added while the order
	// was processing stays.
	for _, l := range lines {
		s.cart.Remove(ctx, l.ID)
	}
	s.logger.Printf("checkout: order placed id=%s user=%d total=%d", order.ID, order.UserID, order.TotalCents)
	return &order, nil
}

// wait simulates order processing for the configured delay.
func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Orders returns a copy of the full order list.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

// History returns the given user's orders, oldest first.
func (s *Service) History(userID int) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
