package domain

import "time"

type OrderCreatedEvent struct {
	OrderID    string    `json:"orderId"`
	UserID     uint64    `json:"userId"`
	FinalTotal float64   `json:"finalTotal"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderStatusEvent is queued on every lifecycle transition and consumed by
// the notification worker. Email may be empty when the purchaser left no
// address; the worker skips those.
type OrderStatusEvent struct {
	EventID     string      `json:"eventId"`
	OrderID     string      `json:"orderId"`
	Email       string      `json:"email"`
	Status      OrderStatus `json:"status"`
	StatusLabel string      `json:"statusLabel"`
	OccurredAt  time.Time   `json:"occurredAt"`
}
