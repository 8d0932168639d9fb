package service

import (
	"context"
	"errors"
	"time"

	"restaurant-digital/agg-svc/internal/domain"
)

const (
	PeriodToday = "today"
	PeriodAll   = "all"

	DefaultTopLimit = 10
	MaxTopLimit     = 50
)

var (
	ErrInvalidPeriod = errors.New("period must be today or all")
	ErrInvalidLimit  = errors.New("limit must be between 1 and 50")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
)

func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidLimit) ||
		errors.Is(err, ErrInvalidDate)
}

// Analytics answers read queries over the counters the consumer keeps.
type Analytics struct {
	Store StoreInterface
	Now   func() time.Time
}

func NewAnalytics(store StoreInterface) *Analytics {
	return &Analytics{Store: store, Now: time.Now}
}

// TopItems defaults to today and DefaultTopLimit when period is empty or
// limit is zero.
func (a *Analytics) TopItems(ctx context.Context, period string, limit int) ([]domain.TopItem, error) {
	if limit == 0 {
		limit = DefaultTopLimit
	}
	if limit < 0 || limit > MaxTopLimit {
		return nil, ErrInvalidLimit
	}

	var day string
	switch period {
	case "", PeriodToday:
		day = a.now().Format(dayFormat)
	case PeriodAll:
	default:
		return nil, ErrInvalidPeriod
	}

	items, err := a.Store.TopItems(ctx, day, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.TopItem{}
	}
	return items, nil
}

func (a *Analytics) Served(ctx context.Context, date string) (domain.ServedCount, error) {
	if date == "" {
		date = a.now().Format(dayFormat)
	} else if _, err := time.Parse(dayFormat, date); err != nil {
		return domain.ServedCount{}, ErrInvalidDate
	}
	return a.Store.Served(ctx, date)
}

func (a *Analytics) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
