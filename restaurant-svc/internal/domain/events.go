package domain

import "time"

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
)

type EventItem struct {
	ItemID   int64    `json:"item_id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
}

// OrderEvent is published on the order topic for downstream consumers.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   int64       `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Items     []EventItem `json:"items,omitempty"`
	Total     int64       `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewOrderEvent(eventType string, order Order, at time.Time) OrderEvent {
	evt := OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     order.Total,
		Timestamp: at,
	}
	if eventType == EventOrderPlaced {
		for _, line := range order.Items {
			evt.Items = append(evt.Items, EventItem{
				ItemID:   line.Item.ID,
				Category: line.Item.Category,
				Name:     line.Item.Name,
				Quantity: line.Quantity,
			})
		}
	}
	return evt
}
