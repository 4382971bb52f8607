package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"techstore/internal/cart"
	"techstore/internal/domain"
	"techstore/internal/session"
	"techstore/internal/storage"
	"techstore/internal/storage/memory"
)

var product = domain.Product{ID: 1, Name: "Phone", PriceCents: 1000, Category: domain.CategoryPhones}

func demoUser() domain.User {
	return domain.User{
		ID:          1,
		Email:       "demo@techstore.com",
		Password:    "demo123",
		Name:        "Demo User",
		Role:        "user",
		Preferences: domain.DefaultPreferences(),
	}
}

func newFixture(t *testing.T, delay time.Duration) (*Service, *cart.Engine, *session.Manager, storage.Store) {
	t.Helper()
	st := memory.New()
	engine := cart.New(st, nil)
	sessions := session.New([]domain.User{demoUser()}, st, nil, nil)
	svc := New(engine, sessions, st, delay, nil)
	return svc, engine, sessions, st
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions, _ := newFixture(t, 0)
	if _, err := sessions.Login(ctx, "demo@techstore.com", "demo123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.PlaceOrder(ctx); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceOrderRequiresLogin(t *testing.T) {
	ctx := context.Background()
	svc, engine, _, _ := newFixture(t, 0)
	if err := engine.Add(ctx, product, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.PlaceOrder(ctx); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
	if got := engine.TotalItems(); got != 1 {
		t.Fatalf("failed checkout touched the cart: %d", got)
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	ctx := context.Background()
	svc, engine, sessions, st := newFixture(t, 0)
	if _, err := sessions.Login(ctx, "demo@techstore.com", "demo123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := engine.Add(ctx, product, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := svc.PlaceOrder(ctx)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.ID == "" {
		t.Fatalf("order id not assigned")
	}
	if order.UserID != 1 || order.Status != domain.OrderStatusProcessing {
		t.Fatalf("unexpected order: %+v", order)
	}
	// 2 × 10.00 plus 10% tax.
	if order.TotalCents != 2200 {
		t.Fatalf("expected total 2200, got %d", order.TotalCents)
	}
	if len(order.Lines) != 1 || order.Lines[0].Quantity != 2 {
		t.Fatalf("cart lines not copied: %+v", order.Lines)
	}
	if got := engine.TotalItems(); got != 0 {
		t.Fatalf("cart not cleared after checkout: %d", got)
	}

	var persisted []domain.Order
	if err := storage.ReadJSON(ctx, st, storage.KeyOrders, &persisted); err != nil {
		t.Fatalf("orders not persisted: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != order.ID {
		t.Fatalf("persisted orders wrong: %+v", persisted)
	}
}

func TestPlaceOrderAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc, engine, sessions, _ := newFixture(t, 0)
	if _, err := sessions.Login(ctx, "demo@techstore.com", "demo123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		if err := engine.Add(ctx, product, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		order, err := svc.PlaceOrder(ctx)
		if err != nil {
			t.Fatalf("place order %d: %v", i, err)
		}
		if seen[order.ID] {
			t.Fatalf("duplicate order id %s", order.ID)
		}
		seen[order.ID] = true
	}
}

func TestDoubleCheckoutIsRejected(t *testing.T) {
	ctx := context.Background()
	svc, engine, sessions, _ := newFixture(t, 50*time.Millisecond)
	if _, err := sessions.Login(ctx, "demo@techstore.com", "demo123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := engine.Add(ctx, product, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PlaceOrder(ctx)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, rejected int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrCheckoutInProgress):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || rejected != 1 {
		t.Fatalf("expected exactly one placement, got ok=%d rejected=%d", ok, rejected)
	}
	if got := len(svc.Orders()); got != 1 {
		t.Fatalf("duplicate orders created: %d", got)
	}
}

func TestCartMutationDuringProcessingDoesNotSkewOrder(t *testing.T) {
	ctx := context.Background()
	svc, engine, sessions, _ := newFixture(t, 80*time.Millisecond)
	if _, err := sessions.Login(ctx, "demo@techstore.com", "demo123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := engine.Add(ctx, product, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	type result struct {
		order *domain.Order
		err   error
	}
	results := make(chan result, 1)
	go func() {
		order, err := svc.PlaceOrder(ctx)
		results <- result{order, err}
	}()

	// Land a second product in the cart while the order is processing.
	time.Sleep(20 * time.Millisecond)
	late := domain.Product{ID: 2, Name: "Laptop", PriceCents: 2000, Category: domain.CategoryComputers}
	if err := engine.Add(ctx, late, 3); err != nil {
		t.Fatalf("add during processing: %v", err)
	}

	res := <-results
	if res.err != nil {
		t.Fatalf("place order: %v", res.err)
	}
	if len(res.order.Lines) != 1 || res.order.Lines[0].ID != product.ID {
		t.Fatalf("order picked up lines it never captured: %+v", res.order.Lines)
	}
	// 10.00 plus 10% tax; the order is priced from its own lines.
	if res.order.TotalCents != 1100 {
		t.Fatalf("expected total 1100, got %d", res.order.TotalCents)
	}
	// The mid-processing addition survives the checkout.
	if got := engine.TotalItems(); got != 3 {
		t.Fatalf("late cart addition lost: %d items left", got)
	}
}

func TestCancelledCheckoutLeavesStateUntouched(t *testing.T) {
	svc, engine, sessions, _ := newFixture(t, time.Second)
	bg := context.Background()
	if _, err := sessions.Login(bg, "demo@techstore.com", "demo123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := engine.Add(bg, product, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	ctx, cancel := context.WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	if _, err := svc.PlaceOrder(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if got := engine.TotalItems(); got != 1 {
		t.Fatalf("cancelled checkout cleared the cart")
	}
	if got := len(svc.Orders()); got != 0 {
		t.Fatalf("cancelled checkout created an order")
	}
}

func TestHistoryFiltersByUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newFixture(t, 0)
	seed := []domain.Order{
		{ID: "a", UserID: 1, Status: domain.OrderStatusDelivered},
		{ID: "b", UserID: 2, Status: domain.OrderStatusProcessing},
		{ID: "c", UserID: 1, Status: domain.OrderStatusShipped},
	}
	if err := svc.Load(ctx, seed); err != nil {
		t.Fatalf("load: %v", err)
	}

	got := svc.History(1)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected history: %+v", got)
	}
	if got := svc.History(99); len(got) != 0 {
		t.Fatalf("expected empty history, got %+v", got)
	}
}

func TestLoadPrefersPersistedOrders(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	persisted := []domain.Order{{ID: "saved", UserID: 1}}
	if err := storage.WriteJSON(ctx, st, storage.KeyOrders, persisted); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	svc := New(cart.New(st, nil), session.New(nil, st, nil, nil), st, 0, nil)
	if err := svc.Load(ctx, []domain.Order{{ID: "seed", UserID: 1}}); err != nil {
		t.Fatalf("load: %v", err)
	}
	orders := svc.Orders()
	if len(orders) != 1 || orders[0].ID != "saved" {
		t.Fatalf("persisted orders not preferred: %+v", orders)
	}
}
