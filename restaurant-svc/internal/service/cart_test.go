package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-digital/restaurant-svc/internal/domain"
)

func TestCart_KeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(domain.MenuItem{ID: 3, Price: 100})
	cart.Add(domain.MenuItem{ID: 1, Price: 200})
	cart.Add(domain.MenuItem{ID: 3, Price: 100})

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(3), lines[0].Item.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(400), cart.Total())

	require.NoError(t, cart.SetQuantity(3, 0))
	lines = cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Item.ID)
}

func TestCart_LinesAreCopies(t *testing.T) {
	cart := NewCart()
	cart.Add(domain.MenuItem{ID: 1, Price: 100, Promotion: &domain.Promotion{Discount: 10, EndDate: "2030-01-01"}})

	lines := cart.Lines()
	lines[0].Quantity = 50
	lines[0].Item.Promotion.Discount = 90

	again := cart.Lines()
	assert.Equal(t, 1, again[0].Quantity)
	assert.Equal(t, 10, again[0].Item.Promotion.Discount)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.Add(domain.MenuItem{ID: 1, Price: 100})
	cart.Clear()

	assert.True(t, cart.Empty())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.ItemCount())
	assert.Empty(t, cart.View().Lines)
}
