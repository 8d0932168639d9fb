package domain

import "errors"

// OrderStatus values are the French labels shown to customers and staff.
type OrderStatus string

const (
	StatusPreparing  OrderStatus = "commande en cours"
	StatusDelivering OrderStatus = "livraison"
	StatusCompleted  OrderStatus = "passé"
)

var ErrInvalidStatus = errors.New("unknown order status")

func ParseStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPreparing, StatusDelivering, StatusCompleted:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// InitialStatus is the status an order starts in for the given fulfillment.
func InitialStatus(f FulfillmentType) OrderStatus {
	if f == FulfillmentDelivery {
		return StatusDelivering
	}
	return StatusPreparing
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted
}

// CanTransition reports whether an order may move from one status to another.
// Nothing leaves passé; passé is reachable from everything else; livraison is
// only reachable from commande en cours.
func CanTransition(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	switch to {
	case StatusCompleted:
		return true
	case StatusDelivering:
		return from == StatusPreparing
	}
	return false
}
