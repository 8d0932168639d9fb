package service

import (
	"context"
	"sort"
	"strings"

	"restaurant-digital/restaurant-svc/internal/domain"
)

const timestampLayout = "15:04:05"

type PlaceOrderRequest struct {
	Fulfillment      domain.FulfillmentType
	Phone            string
	DeliveryLocation *domain.DeliveryLocation
}

// PlaceOrder turns the current cart into an order and clears the cart.
func (a *App) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	a.mu.Lock()
	order, err := a.createOrderLocked(req, a.cart.Lines(), a.cart.Total())
	a.mu.Unlock()
	if err != nil {
		return nil, err
	}
	a.publish(ctx, domain.EventOrderPlaced, *order)
	return order, nil
}

// createOrderLocked stores an order made of lines and then clears the cart.
// lines may be a copy taken earlier than the cart's current content.
func (a *App) createOrderLocked(req PlaceOrderRequest, lines []domain.CartLine, total int64) (*domain.Order, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if _, err := domain.ParseFulfillment(string(req.Fulfillment)); err != nil {
		return nil, err
	}
	if req.Fulfillment == domain.FulfillmentDelivery && req.DeliveryLocation == nil {
		return nil, ErrNoDeliveryLocation
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	now := a.now()
	order := &domain.Order{
		ID:           a.ids.Next(),
		Items:        lines,
		Total:        total,
		Status:       domain.InitialStatus(req.Fulfillment),
		Fulfillment:  req.Fulfillment,
		TableNumber:  TableNumber,
		Timestamp:    now.Format(timestampLayout),
		CreatedAt:    now,
		PaymentPhone: phone,
	}
	if req.Fulfillment == domain.FulfillmentDelivery {
		location := *req.DeliveryLocation
		order.DeliveryLocation = &location
	}
	if err := a.orders.CreateOrder(order); err != nil {
		return nil, err
	}
	a.cart.Clear()
	log.Infof("order %d placed: %d FCFA, %s", order.ID, order.Total, order.Status)
	return order, nil
}

func (a *App) listOrdersLocked() ([]domain.Order, error) {
	orders, err := a.orders.ListOrders()
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (a *App) Orders() ([]domain.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listOrdersLocked()
}

func (a *App) Order(id int64) (*domain.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	order, err := a.orders.GetOrder(id)
	if err != nil {
		return nil, orderError(err)
	}
	return order, nil
}

func (a *App) filterOrders(keep func(domain.Order) bool) ([]domain.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	orders, err := a.listOrdersLocked()
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if keep(order) {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// PendingOrders is every order not yet passé.
func (a *App) PendingOrders() ([]domain.Order, error) {
	return a.filterOrders(func(o domain.Order) bool { return !o.Status.Terminal() })
}

func (a *App) CompletedOrders() ([]domain.Order, error) {
	return a.filterOrders(func(o domain.Order) bool { return o.Status.Terminal() })
}

// SetOrderStatus applies an admin status change. Setting the current status
// again is a no-op.
func (a *App) SetOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if _, err := domain.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	a.mu.Lock()
	order, changed, err := a.setStatusLocked(id, status)
	a.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if changed {
		a.publish(ctx, domain.EventOrderStatusChanged, *order)
	}
	return order, nil
}

func (a *App) setStatusLocked(id int64, status domain.OrderStatus) (*domain.Order, bool, error) {
	order, err := a.orders.GetOrder(id)
	if err != nil {
		return nil, false, orderError(err)
	}
	if order.Status.Terminal() {
		return nil, false, ErrOrderCompleted
	}
	if order.Status == status {
		return order, false, nil
	}
	if status == domain.StatusDelivering || !domain.CanTransition(order.Status, status) {
		return nil, false, ErrInvalidTransition
	}
	order.Status = status
	if err := a.orders.UpdateOrder(order); err != nil {
		return nil, false, orderError(err)
	}
	log.Infof("order %d is now %s", order.ID, order.Status)
	return order, true, nil
}

// ValidateOrder marks an order passé whatever its current step.
func (a *App) ValidateOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return a.SetOrderStatus(ctx, id, domain.StatusCompleted)
}

// ResolveDeliveryLocation picks a fixed location by id, or synthesises one
// from free text when no id is given.
func (a *App) ResolveDeliveryLocation(locationID, query string) (domain.DeliveryLocation, error) {
	if strings.TrimSpace(locationID) != "" {
		return a.locator.Lookup(strings.TrimSpace(locationID))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	location, ok := a.locator.Search(query)
	if !ok {
		return domain.DeliveryLocation{}, ErrNoDeliveryLocation
	}
	return location, nil
}

// RequestDelivery sends an order in preparation out for delivery.
func (a *App) RequestDelivery(ctx context.Context, id int64, location domain.DeliveryLocation) (*domain.Order, error) {
	a.mu.Lock()
	order, err := a.requestDeliveryLocked(id, location)
	a.mu.Unlock()
	if err != nil {
		return nil, err
	}
	a.publish(ctx, domain.EventOrderStatusChanged, *order)
	return order, nil
}

func (a *App) requestDeliveryLocked(id int64, location domain.DeliveryLocation) (*domain.Order, error) {
	order, err := a.orders.GetOrder(id)
	if err != nil {
		return nil, orderError(err)
	}
	if order.Status.Terminal() {
		return nil, ErrOrderCompleted
	}
	if order.Status != domain.StatusPreparing || order.DeliveryLocation != nil {
		return nil, ErrDeliveryNotAllowed
	}
	order.Status = domain.StatusDelivering
	order.DeliveryLocation = &location
	if err := a.orders.UpdateOrder(order); err != nil {
		return nil, orderError(err)
	}
	log.Infof("order %d out for delivery to %s", order.ID, location.Address)
	return order, nil
}

func (a *App) Stats() (domain.OrderStats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	orders, err := a.orders.ListOrders()
	if err != nil {
		return domain.OrderStats{}, err
	}
	stats := domain.OrderStats{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case domain.StatusPreparing:
			stats.Preparing++
		case domain.StatusDelivering:
			stats.Delivering++
		case domain.StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

func (a *App) Receipt(id int64) (*Receipt, error) {
	order, err := a.Order(id)
	if err != nil {
		return nil, err
	}
	receipt := BuildReceipt(*order)
	return &receipt, nil
}

func (a *App) ReceiptQRCode(id int64) ([]byte, error) {
	order, err := a.Order(id)
	if err != nil {
		return nil, err
	}
	return a.qr.Generate(order.ID)
}
