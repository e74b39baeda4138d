// Package kafka relays outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"time"

	"campusfood/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event-type"

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes each message keyed by aggregate id, so one order's events stay on
// one partition and keep their order.
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewWriter builds a synchronous writer for topic on brokers.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func (p *Publisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, kafka.Message{
			Key:     []byte(m.AggregateID),
			Value:   m.Payload,
			Time:    m.OccurredAt,
			Headers: []kafka.Header{{Key: eventTypeHeader, Value: []byte(m.EventType)}},
		})
	}
	return p.writer.WriteMessages(ctx, batch...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
