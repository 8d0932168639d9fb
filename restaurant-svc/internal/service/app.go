package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"restaurant-digital/restaurant-svc/internal/domain"
)

// TableNumber is printed on every order; the restaurant serves one table.
const TableNumber = "Table 5"

type Options struct {
	Catalog   CatalogRepository
	Orders    OrderRepository
	Publisher EventPublisher
	Gateway   PaymentGateway
	Notifier  Notifier
	QR        QRGenerator
	Now       func() time.Time
	Rand      *rand.Rand
}

// App owns the catalog, the cart, the orders and the checkout sessions.
// Every command takes mu, so commands run one at a time.
type App struct {
	mu sync.Mutex

	catalog   CatalogRepository
	orders    OrderRepository
	publisher EventPublisher
	gateway   PaymentGateway
	notifier  Notifier
	qr        QRGenerator
	now       func() time.Time

	ids      *IDGenerator
	locator  *Locator
	cart     *Cart
	sessions map[string]*checkout

	payments sync.WaitGroup
}

func NewApp(opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Gateway == nil {
		opts.Gateway = SimulatedGateway{Delay: DefaultPaymentDelay}
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{}
	}
	if opts.QR == nil {
		opts.QR = DefaultQRGenerator{}
	}
	return &App{
		catalog:   opts.Catalog,
		orders:    opts.Orders,
		publisher: opts.Publisher,
		gateway:   opts.Gateway,
		notifier:  opts.Notifier,
		qr:        opts.QR,
		now:       opts.Now,
		ids:       NewIDGenerator(opts.Now),
		locator:   NewLocator(opts.Rand),
		cart:      NewCart(),
		sessions:  make(map[string]*checkout),
	}
}

// Wait blocks until every confirmed payment has been finalised.
func (a *App) Wait() {
	a.payments.Wait()
}

func (a *App) Cart() domain.CartView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cart.View()
}

func (a *App) AddToCart(category domain.Category, id int64) (domain.CartView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	item, err := a.catalog.GetItem(category, id)
	if err != nil {
		return domain.CartView{}, menuItemError(err)
	}
	a.cart.Add(*item)
	return a.cart.View(), nil
}

func (a *App) SetCartQuantity(id int64, quantity int) (domain.CartView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.cart.SetQuantity(id, quantity); err != nil {
		return domain.CartView{}, err
	}
	return a.cart.View(), nil
}

func (a *App) Summary() (domain.Summary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	orders, err := a.orders.ListOrders()
	if err != nil {
		return domain.Summary{}, err
	}
	summary := domain.Summary{
		CartItems:    a.cart.ItemCount(),
		OrdersPlaced: len(orders),
	}
	for _, order := range orders {
		if order.Status.Terminal() {
			summary.OrdersServed++
		}
	}
	return summary, nil
}

func (a *App) publish(ctx context.Context, eventType string, order domain.Order) {
	if a.publisher == nil {
		return
	}
	evt := domain.NewOrderEvent(eventType, order, a.now())
	if err := a.publisher.PublishOrderEvent(ctx, evt); err != nil {
		log.Warningf("publish %s for order %d: %v", eventType, order.ID, err)
	}
}

func menuItemError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrMenuItemNotFound
	}
	return err
}

func orderError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}
