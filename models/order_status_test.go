package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderReady, false},
		{OrderConfirmed, OrderPreparing, true},
		{OrderPreparing, OrderReady, true},
		{OrderReady, OrderDelivered, true},
		{OrderReady, OrderCompleted, true},
		{OrderDelivered, OrderCompleted, true},
		{OrderDelivered, OrderPending, false},
		{OrderCompleted, OrderCancelled, false},
		{OrderCancelled, OrderConfirmed, false},
		// mengulang status yang sama selalu sah
		{OrderPending, OrderPending, true},
		{OrderCompleted, OrderCompleted, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
		OrderDelivered, OrderCancelled, OrderCompleted,
	} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	assert.False(t, ValidOrderStatus("BURNED"))
	assert.False(t, ValidOrderStatus("pending"))
}

func TestErrInvalidTransitionMessage(t *testing.T) {
	err := &ErrInvalidTransition{From: OrderPending, To: OrderReady}
	assert.Contains(t, err.Error(), "PENDING")
	assert.Contains(t, err.Error(), "READY")
}
