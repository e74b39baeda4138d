// Package rabbitmq relays outbox messages to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"fmt"

	"campusfood/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
}

// Publisher routes each message by its event type, e.g. "order.status_changed".
type Publisher struct {
	channel  Channel
	exchange string
}

func NewPublisher(channel Channel, exchange string) *Publisher {
	return &Publisher{channel: channel, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	for _, m := range messages {
		err := p.channel.PublishWithContext(ctx,
			p.exchange,  // exchange
			m.EventType, // routing key
			false,       // mandatory
			false,       // immediate
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  "application/json",
				MessageId:    fmt.Sprintf("%d", m.ID),
				Timestamp:    m.OccurredAt,
				Type:         m.EventType,
				Headers:      amqp.Table{"aggregate_id": m.AggregateID},
				Body:         m.Payload,
			})
		if err != nil {
			return fmt.Errorf("publish outbox message %d: %w", m.ID, err)
		}
	}
	return nil
}

// Connection owns the AMQP connection and the channel publishers write to.
type Connection struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

// Dial connects to url and declares exchange as a durable topic exchange.
func Dial(url, exchange string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Connection{conn: conn, Channel: channel}, nil
}

func (c *Connection) Close() error {
	if c.Channel != nil {
		_ = c.Channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
