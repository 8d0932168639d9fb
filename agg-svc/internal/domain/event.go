package domain

import "time"

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"

	// StatusServed is the terminal order status; reaching it counts the
	// order as served.
	StatusServed = "passé"
)

type EventItem struct {
	ItemID   int64  `json:"item_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderEvent is what restaurant-svc publishes on the order topic.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   int64       `json:"order_id"`
	Status    string      `json:"status"`
	Items     []EventItem `json:"items,omitempty"`
	Total     int64       `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

type TopItem struct {
	ItemID   int64  `json:"item_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Ordered  int64  `json:"ordered"`
}

// ServedCount is the number of orders served on one day and what they
// were worth in FCFA.
type ServedCount struct {
	Date    string `json:"date"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}
