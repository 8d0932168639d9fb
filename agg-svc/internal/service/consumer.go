package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/op/go-logging"
	"github.com/segmentio/kafka-go"

	"restaurant-digital/agg-svc/internal/domain"
)

var log = logging.MustGetLogger("agg-svc")

const (
	dayFormat = "2006-01-02"

	DefaultRetryDelay = 500 * time.Millisecond
	MaxRetryDelay     = 30 * time.Second
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Now    func() time.Time
	// RetryDelay is the first pause after a failed event. It doubles on each
	// further failure up to MaxRetryDelay.
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		Now:        time.Now,
		RetryDelay: DefaultRetryDelay,
	}
}

// Start reads order events until ctx is cancelled. Undecodable messages are
// committed and skipped. An event the store fails to record is retried until
// it succeeds, and its offset is committed only then, so nothing after it is
// committed either.
func (c *Consumer) Start(ctx context.Context) {
	log.Info("Starting order event consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("order event consumer stopped")
				return
			}
			log.Errorf("Error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Warningf("Skipping undecodable message at offset %d: %v", message.Offset, err)
			c.commit(ctx, message)
			continue
		}

		if !c.processWithRetry(ctx, evt) {
			log.Infof("order event consumer stopped before offset %d was recorded", message.Offset)
			return
		}
		c.commit(ctx, message)
	}
}

// processWithRetry reports false when ctx ends before evt is recorded.
func (c *Consumer) processWithRetry(ctx context.Context, evt domain.OrderEvent) bool {
	delay := c.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	for {
		err := c.ProcessEvent(ctx, evt)
		if err == nil {
			return true
		}
		log.Errorf("Error processing %s for order %d, retrying in %s: %v", evt.Type, evt.OrderID, delay, err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		delay = min(delay*2, MaxRetryDelay)
	}
}

func (c *Consumer) commit(ctx context.Context, message kafka.Message) {
	if err := c.Reader.CommitMessages(ctx, message); err != nil {
		log.Errorf("Error committing offset %d: %v", message.Offset, err)
	}
}

// ProcessEvent folds one order event into the counters. Each order counts
// at most once towards popularity and once towards served orders, however
// often its events are delivered.
func (c *Consumer) ProcessEvent(ctx context.Context, evt domain.OrderEvent) error {
	switch {
	case evt.Type == domain.EventOrderPlaced:
		return c.processPlaced(ctx, evt)
	case evt.Type == domain.EventOrderStatusChanged && evt.Status == domain.StatusServed:
		return c.processServed(ctx, evt)
	}
	return nil
}

func (c *Consumer) processPlaced(ctx context.Context, evt domain.OrderEvent) error {
	items := make([]domain.EventItem, 0, len(evt.Items))
	for _, item := range evt.Items {
		if item.Quantity > 0 {
			items = append(items, item)
		}
	}

	fresh, err := c.Store.RecordPlaced(ctx, evt.OrderID, c.day(evt), items)
	if err != nil {
		return fmt.Errorf("record placed order %d: %w", evt.OrderID, err)
	}
	if !fresh {
		log.Debugf("order %d already counted", evt.OrderID)
		return nil
	}
	log.Infof("Counted %d lines of order %d", len(items), evt.OrderID)
	return nil
}

func (c *Consumer) processServed(ctx context.Context, evt domain.OrderEvent) error {
	fresh, err := c.Store.RecordServed(ctx, evt.OrderID, c.day(evt), evt.Total)
	if err != nil {
		return fmt.Errorf("record served order %d: %w", evt.OrderID, err)
	}
	if fresh {
		log.Infof("Order %d served", evt.OrderID)
	}
	return nil
}

func (c *Consumer) day(evt domain.OrderEvent) string {
	if evt.Timestamp.IsZero() {
		return c.now().Format(dayFormat)
	}
	return evt.Timestamp.Format(dayFormat)
}

func (c *Consumer) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
