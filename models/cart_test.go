package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPrices map[string]float64

func (p stubPrices) Price(itemID string) (float64, bool) {
	price, ok := p[itemID]
	return price, ok
}

func TestCartAddOrIncrement(t *testing.T) {
	var cart Cart

	cart.AddOrIncrement("honey-cake")
	cart.AddOrIncrement("honey-cake")
	cart.AddOrIncrement("baklava-tray")

	assert.Equal(t, 2, cart.Quantity("honey-cake"))
	assert.Equal(t, 1, cart.Quantity("baklava-tray"))
	assert.Len(t, cart.Lines, 2)
	// insertion order preserved
	assert.Equal(t, "honey-cake", cart.Lines[0].ItemID)
}

func TestCartUpdateQuantityNeverGoesNonPositive(t *testing.T) {
	var cart Cart
	cart.AddOrIncrement("honey-cake")

	deltas := []int{3, -1, -1, -5, 2, -1, -1, -1}
	for _, delta := range deltas {
		cart.UpdateQuantity("honey-cake", delta)
		for _, line := range cart.Lines {
			assert.Greater(t, line.Qty, 0)
		}
	}
}

func TestCartUpdateQuantityRemovesLastUnitLine(t *testing.T) {
	var cart Cart
	cart.AddOrIncrement("honey-cake")

	cart.UpdateQuantity("honey-cake", -1)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Quantity("honey-cake"))
}

func TestCartUpdateQuantityCreatesLineOnPositiveDelta(t *testing.T) {
	var cart Cart

	cart.UpdateQuantity("baklava-tray", 1)
	assert.Equal(t, 1, cart.Quantity("baklava-tray"))

	// negative delta on a missing line is a no-op
	cart.UpdateQuantity("honey-cake", -2)
	assert.Equal(t, 0, cart.Quantity("honey-cake"))
	assert.Len(t, cart.Lines, 1)
}

func TestCartTotal(t *testing.T) {
	prices := stubPrices{"honey-cake": 25, "baklava-tray": 18}

	var cart Cart
	assert.Equal(t, 0.0, cart.Total(prices))

	cart.AddOrIncrement("honey-cake")
	cart.AddOrIncrement("honey-cake")
	cart.AddOrIncrement("baklava-tray")
	assert.Equal(t, 68.0, cart.Total(prices))
}

func TestCartTotalUnknownItemContributesZero(t *testing.T) {
	prices := stubPrices{"honey-cake": 25}

	var cart Cart
	cart.AddOrIncrement("honey-cake")
	cart.UpdateQuantity("discontinued-item", 1)
	cart.UpdateQuantity("discontinued-item", 4)

	assert.Equal(t, 25.0, cart.Total(prices))
}

func TestCartItems(t *testing.T) {
	var cart Cart
	cart.AddOrIncrement("honey-cake")
	cart.AddOrIncrement("honey-cake")

	items := cart.Items()
	assert.Equal(t, []OrderItem{{ID: "honey-cake", Quantity: 2}}, items)
}
