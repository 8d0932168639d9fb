package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount int
		want     int64
	}{
		{name: "15 percent of 4000", price: 4000, discount: 15, want: 3400},
		{name: "10 percent of 800", price: 800, discount: 10, want: 720},
		{name: "half unit rounds up", price: 50, discount: 1, want: 49},
		{name: "below half rounds down", price: 40, discount: 1, want: 40},
		{name: "max discount", price: 1000, discount: 90, want: 100},
		{name: "no discount", price: 1000, discount: 0, want: 1000},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, DiscountedPrice(testCase.price, testCase.discount))
		})
	}
}

func TestMenuItem_EffectivePrice(t *testing.T) {
	item := MenuItem{Price: 4000}
	assert.Equal(t, int64(4000), item.EffectivePrice())

	item.Promotion = &Promotion{Discount: 15, EndDate: "2025-06-15"}
	assert.Equal(t, int64(3400), item.View().EffectivePrice)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{StatusPreparing, StatusCompleted, true},
		{StatusDelivering, StatusCompleted, true},
		{StatusPreparing, StatusDelivering, true},
		{StatusDelivering, StatusPreparing, false},
		{StatusCompleted, StatusPreparing, false},
		{StatusCompleted, StatusDelivering, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusPreparing, StatusPreparing, false},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.from)+"->"+string(testCase.to), func(t *testing.T) {
			assert.Equal(t, testCase.want, CanTransition(testCase.from, testCase.to))
		})
	}
}

func TestParsers(t *testing.T) {
	category, err := ParseCategory("boissons")
	assert.NoError(t, err)
	assert.Equal(t, CategoryDrinks, category)
	_, err = ParseCategory("desserts")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseFulfillment("takeaway")
	assert.ErrorIs(t, err, ErrInvalidFulfillment)

	status, err := ParseStatus("passé")
	assert.NoError(t, err)
	assert.True(t, status.Terminal())
	_, err = ParseStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	assert.Equal(t, StatusDelivering, InitialStatus(FulfillmentDelivery))
	assert.Equal(t, StatusPreparing, InitialStatus(FulfillmentDineIn))
}

func TestNewOrderEvent(t *testing.T) {
	order := Order{
		ID:     42,
		Status: StatusPreparing,
		Total:  5100,
		Items: []CartLine{
			{Item: MenuItem{ID: 1, Name: "Burger Classique", Category: CategoryMeals, Price: 3500}, Quantity: 1},
			{Item: MenuItem{ID: 101, Name: "Coca-Cola", Category: CategoryDrinks, Price: 800}, Quantity: 2},
		},
	}
	at := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	placed := NewOrderEvent(EventOrderPlaced, order, at)
	assert.Len(t, placed.Items, 2)
	assert.Equal(t, 2, placed.Items[1].Quantity)
	assert.Equal(t, int64(5100), placed.Total)

	changed := NewOrderEvent(EventOrderStatusChanged, order, at)
	assert.Empty(t, changed.Items)
	assert.Equal(t, at, changed.Timestamp)
}
