package domain

import "strings"

// OrderStatus is the lifecycle state of an order. Delivered and Cancelled
// are terminal: once an order reaches either, no further change is allowed.
type OrderStatus string

const (
	StatusCreated    OrderStatus = "Created"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

var statusNames = map[string]OrderStatus{
	"created":    StatusCreated,
	"processing": StatusProcessing,
	"shipped":    StatusShipped,
	"delivered":  StatusDelivered,
	"cancelled":  StatusCancelled,
}

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(s string) (OrderStatus, bool) {
	st, ok := statusNames[strings.ToLower(strings.TrimSpace(s))]
	return st, ok
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) String() string { return string(s) }
