package commands_test

import (
	"errors"
	"testing"
	"time"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessages() []ports.OutboxMessage {
	now := time.Now().UTC()
	return []ports.OutboxMessage{
		{ID: 7, EventType: "order.placed", AggregateID: kernel.NewUUID().String(), Payload: []byte(`{}`), OccurredAt: now},
		{ID: 9, EventType: "order.status_changed", AggregateID: kernel.NewUUID().String(), Payload: []byte(`{}`), OccurredAt: now},
	}
}

func TestRelayOutboxCommandHandler_Handle(t *testing.T) {
	t.Run("publishes_then_marks", func(t *testing.T) {
		// Given
		ctx := t.Context()
		uow := new(MockUoW)
		repo := new(MockOutboxRepository)
		publisher := new(MockPublisher)
		messages := outboxMessages()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OutboxRepository").Return(repo).Once(),
			repo.On("GetUnpublished", ctx, 50).Return(messages, nil).Once(),
			publisher.On("Publish", ctx, messages).Return(nil).Once(),
			repo.On("MarkPublished", ctx, []int64{7, 9}, mock.AnythingOfType("time.Time")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		cmd, err := commands.NewRelayOutboxCommand(50)
		require.NoError(t, err)
		handler := commands.NewRelayOutboxCommandHandler(outboxUoWFactory{&uowFactory{uow: uow}}, publisher)

		// When
		n, err := handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("nothing_pending", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		repo := new(MockOutboxRepository)
		publisher := new(MockPublisher)

		uow.On("Begin", ctx).Return(nil)
		uow.On("OutboxRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("GetUnpublished", ctx, 10).Return([]ports.OutboxMessage(nil), nil)
		cmd, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)
		handler := commands.NewRelayOutboxCommandHandler(outboxUoWFactory{&uowFactory{uow: uow}}, publisher)

		n, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, n)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("publish_failure_leaves_messages_pending", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		repo := new(MockOutboxRepository)
		publisher := new(MockPublisher)
		brokerDown := errors.New("broker down")

		uow.On("Begin", ctx).Return(nil)
		uow.On("OutboxRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("GetUnpublished", ctx, 10).Return(outboxMessages(), nil)
		publisher.On("Publish", ctx, mock.Anything).Return(brokerDown)
		cmd, err := commands.NewRelayOutboxCommand(10)
		require.NoError(t, err)
		handler := commands.NewRelayOutboxCommandHandler(outboxUoWFactory{&uowFactory{uow: uow}}, publisher)

		n, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, brokerDown)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestNewRelayOutboxCommand_RejectsNonPositiveBatch(t *testing.T) {
	_, err := commands.NewRelayOutboxCommand(0)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
