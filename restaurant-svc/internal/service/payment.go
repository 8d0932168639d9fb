package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("restaurant-svc")

const DefaultPaymentDelay = 3 * time.Second

type PaymentResult struct {
	Reference string    `json:"reference"`
	Phone     string    `json:"phone"`
	Amount    int64     `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}

// SimulatedGateway waits Delay and then approves every charge. It has no
// failure path other than context cancellation.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Charge(ctx context.Context, phone string, amount int64) (PaymentResult, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	}
	return PaymentResult{
		Reference: uuid.NewString(),
		Phone:     phone,
		Amount:    amount,
		PaidAt:    time.Now(),
	}, nil
}

const (
	NoticePaymentPending   = "payment_pending"
	NoticePaymentSucceeded = "payment_succeeded"
	NoticeOrderFailed      = "order_failed"
)

// Notice is a transient message for the customer about a checkout.
type Notice struct {
	Kind       string    `json:"kind"`
	CheckoutID string    `json:"checkout_id"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}

type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, notice Notice) {
	log.Infof("checkout %s: %s (%s)", notice.CheckoutID, notice.Message, notice.Kind)
}
