package rabbitmq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusfood/internal/adapters/out/rabbitmq"
	"campusfood/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	failAt int
}

func (c *fakeChannel) PublishWithContext(
	_ context.Context,
	exchange, key string,
	_, _ bool,
	msg amqp.Publishing,
) error {
	if c.failAt > 0 && len(c.sent)+1 == c.failAt {
		return errors.New("channel closed")
	}
	c.sent = append(c.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	// Given
	channel := &fakeChannel{}
	publisher := rabbitmq.NewPublisher(channel, "order_events")
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// When
	err := publisher.Publish(t.Context(), []ports.OutboxMessage{
		{ID: 7, EventType: "order.placed", AggregateID: "order-1", Payload: []byte(`{}`), OccurredAt: at},
		{ID: 8, EventType: "order.status_changed", AggregateID: "order-1", Payload: []byte(`{}`), OccurredAt: at},
	})

	// Then
	require.NoError(t, err)
	require.Len(t, channel.sent, 2)
	assert.Equal(t, "order_events", channel.sent[0].exchange)
	assert.Equal(t, "order.placed", channel.sent[0].key)
	assert.Equal(t, "order.status_changed", channel.sent[1].key)
	assert.Equal(t, "7", channel.sent[0].msg.MessageId)
	assert.Equal(t, amqp.Persistent, channel.sent[0].msg.DeliveryMode)
	assert.Equal(t, "order-1", channel.sent[1].msg.Headers["aggregate_id"])
	assert.Equal(t, at, channel.sent[1].msg.Timestamp)
}

func TestPublisher_StopsAtFirstFailure(t *testing.T) {
	channel := &fakeChannel{failAt: 2}
	publisher := rabbitmq.NewPublisher(channel, "order_events")

	err := publisher.Publish(t.Context(), []ports.OutboxMessage{
		{ID: 1, EventType: "order.placed"},
		{ID: 2, EventType: "order.placed"},
		{ID: 3, EventType: "order.placed"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "outbox message 2")
	assert.Len(t, channel.sent, 1)
}
