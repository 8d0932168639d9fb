package storage

import (
	"context"
	"encoding/json"

	"github.com/op/go-logging"
	amqp "github.com/rabbitmq/amqp091-go"

	"restaurant-digital/restaurant-svc/internal/service"
)

var log = logging.MustGetLogger("restaurant-svc")

// AMQPPublisher is the part of *amqp.Channel the notifier uses.
type AMQPPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitNotifier sends checkout notices to a topic exchange, routed by
// notice kind, for whatever pushes them to the customer's screen.
type RabbitNotifier struct {
	Channel  AMQPPublisher
	Exchange string
}

func NewRabbitNotifier(ch AMQPPublisher, exchange string) *RabbitNotifier {
	return &RabbitNotifier{Channel: ch, Exchange: exchange}
}

func (n *RabbitNotifier) Notify(ctx context.Context, notice service.Notice) {
	body, err := json.Marshal(notice)
	if err != nil {
		log.Errorf("encode notice %s: %v", notice.Kind, err)
		return
	}
	err = n.Channel.PublishWithContext(ctx, n.Exchange, notice.Kind, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: notice.CheckoutID,
		Timestamp:     notice.At,
		Body:          body,
	})
	if err != nil {
		log.Errorf("publish notice %s for checkout %s: %v", notice.Kind, notice.CheckoutID, err)
	}
}
