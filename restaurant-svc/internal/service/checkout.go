package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"restaurant-digital/restaurant-svc/internal/domain"
)

type CheckoutStep string

const (
	StepIdle                    CheckoutStep = "idle"
	StepAwaitingFulfillment     CheckoutStep = "awaiting_fulfillment_choice"
	StepAwaitingDeliveryAddress CheckoutStep = "awaiting_delivery_address"
	StepAwaitingPayment         CheckoutStep = "awaiting_payment_confirmation"
	StepSubmitting              CheckoutStep = "submitting"
)

// CheckoutSession is a snapshot of one customer's progress from cart to
// order. A finished session goes back to idle and carries the order id.
type CheckoutSession struct {
	ID               string                   `json:"id"`
	Step             CheckoutStep             `json:"step"`
	Fulfillment      domain.FulfillmentType   `json:"fulfillment,omitempty"`
	Candidate        *domain.DeliveryLocation `json:"candidate,omitempty"`
	DeliveryLocation *domain.DeliveryLocation `json:"delivery_location,omitempty"`
	Phone            string                   `json:"phone,omitempty"`
	OrderID          int64                    `json:"order_id,omitempty"`
	Error            string                   `json:"error,omitempty"`
	Notices          []Notice                 `json:"notices"`
}

// SessionRetention is how long a checkout session outlives its last change.
// Sessions waiting on the gateway are never dropped.
const SessionRetention = 30 * time.Minute

type checkout struct {
	session   CheckoutSession
	selection *Selection
	touched   time.Time

	// lines and total are what the customer pays for, taken from the cart
	// when the payment is confirmed.
	lines []domain.CartLine
	total int64
}

func (c *checkout) snapshot() *CheckoutSession {
	s := c.session
	if c.selection != nil {
		s.Candidate = c.selection.Selected()
	}
	if s.DeliveryLocation != nil {
		location := *s.DeliveryLocation
		s.DeliveryLocation = &location
	}
	s.Notices = append([]Notice{}, c.session.Notices...)
	return &s
}

func (a *App) DeliveryLocations() []domain.DeliveryLocation {
	return PopularLocations()
}

func (a *App) StartCheckout() (*CheckoutSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cart.Empty() {
		return nil, ErrEmptyCart
	}
	a.pruneSessionsLocked()
	c := &checkout{
		session: CheckoutSession{
			ID:   uuid.NewString(),
			Step: StepAwaitingFulfillment,
		},
		touched: a.now(),
	}
	a.sessions[c.session.ID] = c
	return c.snapshot(), nil
}

// pruneSessionsLocked drops sessions, finished or abandoned, that have not
// changed for SessionRetention.
func (a *App) pruneSessionsLocked() {
	cutoff := a.now().Add(-SessionRetention)
	for id, c := range a.sessions {
		if c.session.Step != StepSubmitting && c.touched.Before(cutoff) {
			delete(a.sessions, id)
		}
	}
}

func (a *App) Checkout(id string) (*CheckoutSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.sessions[id]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	return c.snapshot(), nil
}

// CancelCheckout drops a session. Once a payment is submitted it can no
// longer be cancelled.
func (a *App) CancelCheckout(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.sessions[id]
	if !ok {
		return ErrCheckoutNotFound
	}
	if c.session.Step == StepSubmitting {
		return ErrCheckoutState
	}
	delete(a.sessions, id)
	return nil
}

// step runs fn on the session when it is in one of the allowed steps.
func (a *App) step(id string, allowed []CheckoutStep, fn func(c *checkout) error) (*CheckoutSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.sessions[id]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	permitted := false
	for _, step := range allowed {
		if c.session.Step == step {
			permitted = true
			break
		}
	}
	if !permitted {
		return nil, ErrCheckoutState
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	c.session.Error = ""
	c.touched = a.now()
	return c.snapshot(), nil
}

// ChooseFulfillment may be called again to go back and change the choice
// before paying.
func (a *App) ChooseFulfillment(id string, fulfillment domain.FulfillmentType) (*CheckoutSession, error) {
	if _, err := domain.ParseFulfillment(string(fulfillment)); err != nil {
		return nil, err
	}
	allowed := []CheckoutStep{StepAwaitingFulfillment, StepAwaitingDeliveryAddress, StepAwaitingPayment}
	return a.step(id, allowed, func(c *checkout) error {
		c.session.Fulfillment = fulfillment
		c.session.DeliveryLocation = nil
		if fulfillment == domain.FulfillmentDelivery {
			c.selection = a.locator.NewSelection()
			c.session.Step = StepAwaitingDeliveryAddress
			return nil
		}
		c.selection = nil
		c.session.Step = StepAwaitingPayment
		return nil
	})
}

func (a *App) SelectDeliveryLocation(id, locationID string) (*CheckoutSession, error) {
	return a.step(id, []CheckoutStep{StepAwaitingDeliveryAddress}, func(c *checkout) error {
		return c.selection.Select(locationID)
	})
}

// SearchDeliveryAddress ignores blank queries and keeps the current
// candidate.
func (a *App) SearchDeliveryAddress(id, query string) (*CheckoutSession, error) {
	return a.step(id, []CheckoutStep{StepAwaitingDeliveryAddress}, func(c *checkout) error {
		c.selection.Search(query)
		return nil
	})
}

func (a *App) ConfirmDeliveryAddress(id string) (*CheckoutSession, error) {
	return a.step(id, []CheckoutStep{StepAwaitingDeliveryAddress}, func(c *checkout) error {
		location, err := c.selection.Confirm()
		if err != nil {
			return err
		}
		c.session.DeliveryLocation = &location
		c.selection = nil
		c.session.Step = StepAwaitingPayment
		return nil
	})
}

// ConfirmPayment submits the payment and returns at once. The gateway call
// and order creation finish in the background, whatever happens to ctx.
func (a *App) ConfirmPayment(ctx context.Context, id, phone string) (*CheckoutSession, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	var (
		notice Notice
		amount int64
	)
	session, err := a.step(id, []CheckoutStep{StepAwaitingPayment}, func(c *checkout) error {
		if a.cart.Empty() {
			return ErrEmptyCart
		}
		c.lines = a.cart.Lines()
		c.total = a.cart.Total()
		amount = c.total
		c.session.Phone = phone
		c.session.Step = StepSubmitting
		notice = a.recordNotice(c, NoticePaymentPending, "Paiement en cours...")
		return nil
	})
	if err != nil {
		return nil, err
	}
	a.notifier.Notify(ctx, notice)

	a.payments.Add(1)
	go a.completePayment(context.WithoutCancel(ctx), id, phone, amount)
	return session, nil
}

func (a *App) completePayment(ctx context.Context, id, phone string, amount int64) {
	defer a.payments.Done()

	result, err := a.gateway.Charge(ctx, phone, amount)
	if err != nil {
		log.Errorf("checkout %s: payment failed: %v", id, err)
		a.failCheckout(ctx, id, StepAwaitingPayment, err)
		return
	}

	a.mu.Lock()
	c, ok := a.sessions[id]
	if !ok {
		a.mu.Unlock()
		log.Errorf("checkout %s vanished while paying %s", id, result.Reference)
		return
	}
	succeeded := a.recordNotice(c, NoticePaymentSucceeded, "Paiement réussi !")
	a.mu.Unlock()
	a.notifier.Notify(ctx, succeeded)

	a.mu.Lock()
	order, err := a.createOrderLocked(PlaceOrderRequest{
		Fulfillment:      c.session.Fulfillment,
		Phone:            phone,
		DeliveryLocation: c.session.DeliveryLocation,
	}, c.lines, c.total)
	if err == nil {
		c.session.Step = StepIdle
		c.session.OrderID = order.ID
		c.lines = nil
		c.touched = a.now()
	}
	a.mu.Unlock()
	if err != nil {
		log.Errorf("checkout %s: order not created after payment %s: %v", id, result.Reference, err)
		a.failCheckout(ctx, id, StepIdle, err)
		return
	}

	log.Infof("checkout %s paid (%s), order %d", id, result.Reference, order.ID)
	a.publish(ctx, domain.EventOrderPlaced, *order)
}

func (a *App) failCheckout(ctx context.Context, id string, next CheckoutStep, cause error) {
	a.mu.Lock()
	c, ok := a.sessions[id]
	if !ok {
		a.mu.Unlock()
		return
	}
	c.session.Step = next
	c.session.Error = cause.Error()
	c.lines, c.total = nil, 0
	c.touched = a.now()
	notice := a.recordNotice(c, NoticeOrderFailed, cause.Error())
	a.mu.Unlock()
	a.notifier.Notify(ctx, notice)
}

func (a *App) recordNotice(c *checkout, kind, msg string) Notice {
	notice := Notice{
		Kind:       kind,
		CheckoutID: c.session.ID,
		Message:    msg,
		At:         a.now(),
	}
	c.session.Notices = append(c.session.Notices, notice)
	return notice
}
