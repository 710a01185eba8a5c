package models

import "fmt"

// Status order. Urutannya maju: pending -> confirmed -> preparing -> ready ->
// delivered -> completed, dengan cancelled sebagai jalan keluar.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
	OrderCompleted = "COMPLETED"
)

// ErrInvalidTransition dikembalikan saat perpindahan status tidak diizinkan.
type ErrInvalidTransition struct {
	From string
	To   string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}

// orderTransitions memetakan status sekarang ke status tujuan yang sah.
// Mengulang status yang sama selalu sah (update idempoten).
var orderTransitions = map[string][]string{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderDelivered, OrderCompleted, OrderCancelled},
	OrderDelivered: {OrderCompleted},
	OrderCompleted: {},
	OrderCancelled: {},
}

// ValidOrderStatus -> cek apakah status dikenal
func ValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

// CanTransition melaporkan apakah perpindahan from -> to diizinkan.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
