package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusConfirmed, StatusProcessing, true},
		{StatusProcessing, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusShipped, StatusCancelled, true},

		{StatusConfirmed, StatusShipped, false},
		{StatusConfirmed, StatusDelivered, false},
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusConfirmed, OrderStatus("refunded"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: 1, Quantity: 2, Price: 1000},
		{ProductID: 2, Quantity: 1, Price: 49.5},
	}
	assert.InDelta(t, 2049.5, OrderTotal(items), 1e-9)
	assert.Zero(t, OrderTotal(nil))
}

func TestOrderCloneDoesNotShareItems(t *testing.T) {
	o := Order{ID: "ORD-1", Items: []OrderItem{{ProductID: 1, Quantity: 1, Price: 10}}}
	c := o.Clone()
	c.Items[0].Quantity = 99

	assert.Equal(t, 1, o.Items[0].Quantity)
}
