package ports

import (
	"context"
	"time"
)

// OutboxMessage is a domain event waiting to be handed to the broker.
type OutboxMessage struct {
	ID          int64
	EventType   string
	AggregateID string
	Payload     []byte
	OccurredAt  time.Time
}

type OutboxRepository interface {
	// GetUnpublished returns up to limit messages in insertion order.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []int64, at time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, messages []OutboxMessage) error
}
