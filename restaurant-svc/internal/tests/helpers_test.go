package tests

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"restaurant-digital/restaurant-svc/internal/domain"
	"restaurant-digital/restaurant-svc/internal/service"
	"restaurant-digital/restaurant-svc/internal/storage"
)

const (
	burgerID = int64(1)
	pizzaID  = int64(2)
	cocaID   = int64(101)
	phone    = "90 00 00 00"
)

func newTestApp(t *testing.T, opts service.Options) (*service.App, *storage.MemoryRepository) {
	t.Helper()

	repo := storage.NewMemoryRepository()
	_, err := service.SeedMenu(repo)
	require.NoError(t, err)

	if opts.Catalog == nil {
		opts.Catalog = repo
	}
	if opts.Orders == nil {
		opts.Orders = repo
	}
	if opts.Gateway == nil {
		opts.Gateway = service.SimulatedGateway{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	return service.NewApp(opts), repo
}

func placeOrder(t *testing.T, app *service.App, req service.PlaceOrderRequest) *domain.Order {
	t.Helper()

	_, err := app.AddToCart(domain.CategoryMeals, burgerID)
	require.NoError(t, err)
	if req.Phone == "" {
		req.Phone = phone
	}
	order, err := app.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	return order
}

func noticeKinds(session *service.CheckoutSession) []string {
	kinds := make([]string, 0, len(session.Notices))
	for _, n := range session.Notices {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

func strconvFormat(id int64) string {
	return strconv.FormatInt(id, 10)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
