package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chair(quantity int) Item {
	return Item{ProductID: "p1", Name: "Rattan Chair", UnitPrice: 120, Quantity: quantity, SelectedColor: "natural"}
}

func TestAddItemMergesSameVariant(t *testing.T) {
	state := Reduce(State{}, AddItem{Item: chair(1)})
	state = Reduce(state, AddItem{Item: chair(2)})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 360.0, state.Total)
	assert.Equal(t, 3, state.ItemCount)
}

func TestAddItemKeepsVariantsSeparate(t *testing.T) {
	black := chair(1)
	black.SelectedColor = "black"

	state := Reduce(State{}, AddItem{Item: chair(1)})
	state = Reduce(state, AddItem{Item: black})

	assert.Len(t, state.Items, 2)
	assert.Equal(t, 240.0, state.Total)
	assert.Equal(t, 2, state.ItemCount)
}

func TestRemoveItemDropsAllLinesForProduct(t *testing.T) {
	black := chair(1)
	black.SelectedColor = "black"
	table := Item{ProductID: "p2", Name: "Side Table", UnitPrice: 80, Quantity: 1}

	state := Reduce(State{}, AddItem{Item: chair(1)})
	state = Reduce(state, AddItem{Item: black})
	state = Reduce(state, AddItem{Item: table})
	state = Reduce(state, RemoveItem{ProductID: "p1"})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "p2", state.Items[0].ProductID)
	assert.Equal(t, 80.0, state.Total)
}

func TestUpdateQuantity(t *testing.T) {
	state := Reduce(State{}, AddItem{Item: chair(1)})
	state = Reduce(state, UpdateQuantity{ProductID: "p1", Quantity: 5})

	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.Equal(t, 600.0, state.Total)
	assert.Equal(t, 5, state.ItemCount)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	state := Reduce(State{}, AddItem{Item: chair(2)})
	state = Reduce(state, UpdateQuantity{ProductID: "p1", Quantity: 0})

	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
	assert.Zero(t, state.ItemCount)
}

func TestClear(t *testing.T) {
	state := Reduce(State{}, AddItem{Item: chair(2)})
	state = Reduce(state, Clear{})

	assert.NotNil(t, state.Items)
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
	assert.Zero(t, state.ItemCount)
}

func TestTotalsAlwaysMatchLines(t *testing.T) {
	actions := []Action{
		AddItem{Item: chair(2)},
		AddItem{Item: Item{ProductID: "p2", UnitPrice: 49.99, Quantity: 3}},
		UpdateQuantity{ProductID: "p2", Quantity: 1},
		RemoveItem{ProductID: "p1"},
	}

	state := State{}
	for _, action := range actions {
		state = Reduce(state, action)

		total := 0.0
		count := 0
		for _, item := range state.Items {
			total += item.UnitPrice * float64(item.Quantity)
			count += item.Quantity
		}
		assert.Equal(t, total, state.Total)
		assert.Equal(t, count, state.ItemCount)
	}
}

func TestQuoteBelowFreeShippingThreshold(t *testing.T) {
	pricing := Quote(200)

	assert.Equal(t, 200.0, pricing.Subtotal)
	assert.Equal(t, 50.0, pricing.Shipping)
	assert.Equal(t, 16.0, pricing.Tax)
	assert.Equal(t, 266.0, pricing.Total)
}

func TestQuoteAtFreeShippingThreshold(t *testing.T) {
	pricing := Quote(500)

	assert.Equal(t, 0.0, pricing.Shipping)
	assert.Equal(t, 40.0, pricing.Tax)
	assert.Equal(t, 540.0, pricing.Total)
}

func TestQuoteZeroSubtotal(t *testing.T) {
	pricing := Quote(0)

	assert.Equal(t, 50.0, pricing.Shipping)
	assert.Equal(t, 0.0, pricing.Tax)
	assert.Equal(t, 50.0, pricing.Total)
}
