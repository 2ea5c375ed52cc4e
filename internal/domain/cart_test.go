package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesByProduct(t *testing.T) {
	c := Cart{UserID: "u1"}
	c.AddItem(7, 2)
	c.AddItem(7, 3)
	c.AddItem(8, 1)

	assert.Equal(t, []CartItem{{ProductID: 7, Quantity: 5}, {ProductID: 8, Quantity: 1}}, c.Items)
}

func TestCartAddItemStopsAtLineLimit(t *testing.T) {
	c := Cart{UserID: "u1"}
	require.NoError(t, c.AddItem(7, MaxLineQuantity-1))
	require.NoError(t, c.AddItem(7, 1))

	err := c.AddItem(7, 1)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	err = c.AddItem(7, math.MaxInt)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, []CartItem{{ProductID: 7, Quantity: MaxLineQuantity}}, c.Items)
}

func TestCartSetQuantity(t *testing.T) {
	c := Cart{Items: []CartItem{{ProductID: 1, Quantity: 4}, {ProductID: 2, Quantity: 1}}}

	c.SetQuantity(1, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)

	c.SetQuantity(2, 0)
	assert.Equal(t, []CartItem{{ProductID: 1, Quantity: 2}}, c.Items)

	c.SetQuantity(3, 1)
	assert.Len(t, c.Items, 2)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	w := Wishlist{UserID: "u1"}
	w.Add(5)
	w.Add(5)
	w.Add(6)

	assert.Equal(t, []int{5, 6}, w.ProductIDs)
	assert.True(t, w.Contains(6))

	w.Remove(5)
	assert.Equal(t, []int{6}, w.ProductIDs)
	assert.False(t, w.Contains(5))
}
