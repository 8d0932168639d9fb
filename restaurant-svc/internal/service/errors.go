package service

import (
	"errors"

	"restaurant-digital/restaurant-svc/internal/domain"
)

var (
	ErrInvalidMenuItem    = errors.New("name, description, price and icon are required")
	ErrInvalidPromotion   = errors.New("discount must be between 1 and 90 and an end date is required")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrCartLineNotFound   = errors.New("item is not in the cart")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrEmptyPhone         = errors.New("payment phone number is required")
	ErrNoDeliveryLocation = errors.New("select a delivery address first")
	ErrUnknownLocation    = errors.New("unknown delivery location")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCompleted     = errors.New("order is already completed")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrDeliveryNotAllowed = errors.New("delivery can only be requested for an order in preparation without a delivery address")
	ErrCheckoutNotFound   = errors.New("checkout session not found")
	ErrCheckoutState      = errors.New("action not allowed in the current checkout step")
)

var validationErrors = []error{
	ErrInvalidMenuItem,
	ErrInvalidPromotion,
	ErrNegativeQuantity,
	ErrEmptyPhone,
	ErrNoDeliveryLocation,
	domain.ErrInvalidCategory,
	domain.ErrInvalidFulfillment,
	domain.ErrInvalidStatus,
}

// IsValidation reports whether err is a user-correctable input error as
// opposed to a missing resource, a lifecycle conflict or an infrastructure
// failure.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
