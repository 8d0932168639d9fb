package service

import (
	"context"

	"restaurant-digital/restaurant-svc/internal/domain"
)

type CatalogRepository interface {
	ListItems(category domain.Category) ([]domain.MenuItem, error)
	GetItem(category domain.Category, id int64) (*domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	UpdateItem(item *domain.MenuItem) error
	DeleteItem(category domain.Category, id int64) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int64) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrder(order *domain.Order) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, phone string, amount int64) (PaymentResult, error)
}

type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

type CatalogServiceInterface interface {
	Menu(category domain.Category) ([]domain.MenuView, error)
	CreateMenuItem(category domain.Category, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(category domain.Category, id int64, item domain.MenuItem) (*domain.MenuItem, error)
	RemoveMenuItem(category domain.Category, id int64) error
	SetPromotion(category domain.Category, id int64, discount int, endDate string) (*domain.MenuItem, error)
	ClearPromotion(category domain.Category, id int64) (*domain.MenuItem, error)
}

type CartServiceInterface interface {
	Cart() domain.CartView
	AddToCart(category domain.Category, id int64) (domain.CartView, error)
	SetCartQuantity(id int64, quantity int) (domain.CartView, error)
}

type CheckoutServiceInterface interface {
	DeliveryLocations() []domain.DeliveryLocation
	StartCheckout() (*CheckoutSession, error)
	Checkout(id string) (*CheckoutSession, error)
	CancelCheckout(id string) error
	ChooseFulfillment(id string, fulfillment domain.FulfillmentType) (*CheckoutSession, error)
	SelectDeliveryLocation(id, locationID string) (*CheckoutSession, error)
	SearchDeliveryAddress(id, query string) (*CheckoutSession, error)
	ConfirmDeliveryAddress(id string) (*CheckoutSession, error)
	ConfirmPayment(ctx context.Context, id, phone string) (*CheckoutSession, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error)
	Orders() ([]domain.Order, error)
	Order(id int64) (*domain.Order, error)
	PendingOrders() ([]domain.Order, error)
	CompletedOrders() ([]domain.Order, error)
	SetOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	ValidateOrder(ctx context.Context, id int64) (*domain.Order, error)
	ResolveDeliveryLocation(locationID, query string) (domain.DeliveryLocation, error)
	RequestDelivery(ctx context.Context, id int64, location domain.DeliveryLocation) (*domain.Order, error)
	Stats() (domain.OrderStats, error)
	Summary() (domain.Summary, error)
	Receipt(id int64) (*Receipt, error)
	ReceiptQRCode(id int64) ([]byte, error)
}

var (
	_ CatalogServiceInterface  = (*App)(nil)
	_ CartServiceInterface     = (*App)(nil)
	_ CheckoutServiceInterface = (*App)(nil)
	_ OrderServiceInterface    = (*App)(nil)
)
