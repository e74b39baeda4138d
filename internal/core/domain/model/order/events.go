package order

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventPlaced        EventType = "order.placed"
	EventStatusChanged EventType = "order.status_changed"
)

// Event records something that happened to an order. Events are collected on the
// aggregate and written to the outbox in the same transaction as the order itself.
type Event struct {
	Type       EventType
	OrderID    kernel.UUID
	StudentID  kernel.UUID
	ShopID     kernel.UUID
	From       Status
	To         Status
	Total      kernel.Money
	OccurredAt time.Time
}
