// Package outboxrepo stores domain events until the relay hands them to the broker.
package outboxrepo

import (
	"encoding/json"
	"time"

	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/ports"
)

type MessageDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	EventType   string     `gorm:"size:64;not null"`
	AggregateID string     `gorm:"size:36;index;not null"`
	Payload     []byte     `gorm:"not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// OrderEventPayload is the JSON body consumers receive for order events.
type OrderEventPayload struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	StudentID  string    `json:"studentId"`
	ShopID     string    `json:"shopId"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurredAt"`
}

func fromOrderEvent(e order.Event) (MessageDTO, error) {
	payload := OrderEventPayload{
		Type:       string(e.Type),
		OrderID:    e.OrderID.String(),
		StudentID:  e.StudentID.String(),
		ShopID:     e.ShopID.String(),
		To:         e.To.String(),
		Total:      e.Total.String(),
		OccurredAt: e.OccurredAt,
	}
	if e.From != order.Unknown {
		payload.From = e.From.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		EventType:   string(e.Type),
		AggregateID: e.OrderID.String(),
		Payload:     body,
		OccurredAt:  e.OccurredAt,
	}, nil
}

func toPort(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          dto.ID,
		EventType:   dto.EventType,
		AggregateID: dto.AggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt.UTC(),
	}
}
