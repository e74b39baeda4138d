package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusfood/internal/adapters/out/kafka"
	"campusfood/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written []kafkago.Message
	err     error
	closed  bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	// Given
	writer := &recordingWriter{}
	publisher := kafka.NewPublisher(writer)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	messages := []ports.OutboxMessage{
		{ID: 1, EventType: "order.placed", AggregateID: "order-1", Payload: []byte(`{"a":1}`), OccurredAt: at},
		{ID: 2, EventType: "order.status_changed", AggregateID: "order-1", Payload: []byte(`{"a":2}`), OccurredAt: at},
	}

	// When
	err := publisher.Publish(t.Context(), messages)

	// Then
	require.NoError(t, err)
	require.Len(t, writer.written, 2)
	assert.Equal(t, []byte("order-1"), writer.written[0].Key)
	assert.Equal(t, []byte(`{"a":1}`), writer.written[0].Value)
	assert.Equal(t, at, writer.written[0].Time)
	require.Len(t, writer.written[1].Headers, 1)
	assert.Equal(t, "event-type", writer.written[1].Headers[0].Key)
	assert.Equal(t, []byte("order.status_changed"), writer.written[1].Headers[0].Value)
}

func TestPublisher_NothingToPublish(t *testing.T) {
	writer := &recordingWriter{err: errors.New("must not be called")}

	require.NoError(t, kafka.NewPublisher(writer).Publish(t.Context(), nil))
}

func TestPublisher_WriteFailure(t *testing.T) {
	boom := errors.New("leader not available")
	writer := &recordingWriter{err: boom}

	err := kafka.NewPublisher(writer).Publish(t.Context(), []ports.OutboxMessage{{ID: 1, AggregateID: "x"}})

	require.ErrorIs(t, err, boom)
}

func TestPublisher_Close(t *testing.T) {
	writer := &recordingWriter{}

	require.NoError(t, kafka.NewPublisher(writer).Close())
	assert.True(t, writer.closed)
}

func TestNewWriter(t *testing.T) {
	w := kafka.NewWriter([]string{"localhost:9092"}, "order-events")

	assert.Equal(t, "order-events", w.Topic)
	assert.Equal(t, kafkago.RequireAll, w.RequiredAcks)
}
