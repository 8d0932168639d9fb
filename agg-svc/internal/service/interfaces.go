package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"restaurant-digital/agg-svc/internal/domain"
)

type StoreInterface interface {
	// RecordPlaced and RecordServed report false when the order was already
	// counted for that kind of event.
	RecordPlaced(ctx context.Context, orderID int64, day string, items []domain.EventItem) (bool, error)
	RecordServed(ctx context.Context, orderID int64, day string, total int64) (bool, error)
	// TopItems ranks items ordered on day, or over all time when day is empty.
	TopItems(ctx context.Context, day string, limit int) ([]domain.TopItem, error)
	Served(ctx context.Context, day string) (domain.ServedCount, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, evt domain.OrderEvent) error
}

type AnalyticsServiceInterface interface {
	TopItems(ctx context.Context, period string, limit int) ([]domain.TopItem, error)
	Served(ctx context.Context, date string) (domain.ServedCount, error)
}

var (
	_ ConsumerInterface         = (*Consumer)(nil)
	_ AnalyticsServiceInterface = (*Analytics)(nil)
	_ MessageReader             = (*kafka.Reader)(nil)
)
