package domain

import "errors"

// Sentinel errors for order placement and status changes. Services wrap these
// with context (product id, quantities); callers match with errors.Is and map
// them to HTTP statuses.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrTerminalState      = errors.New("order is in a terminal state")
	ErrUnknownStatus      = errors.New("unknown order status")
)
