package commands_test

import (
	"errors"
	"testing"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statusFixture struct {
	uow       *MockUoW
	orderRepo *MockOrderRepository
	factory   *uowFactory
	orderID   kernel.UUID
	student   kernel.Actor
	shop      kernel.Actor
}

func newStatusFixture(t *testing.T) statusFixture {
	t.Helper()
	uow := new(MockUoW)
	return statusFixture{
		uow:       uow,
		orderRepo: new(MockOrderRepository),
		factory:   &uowFactory{uow: uow},
		orderID:   kernel.NewUUID(),
		student:   newActor(t, kernel.NewUUID(), kernel.RoleStudent),
		shop:      newActor(t, kernel.NewUUID(), kernel.RoleShop),
	}
}

func (f statusFixture) stored(t *testing.T, status order.Status, version int) *order.Order {
	t.Helper()
	return storedOrder(t, f.orderID, f.student.ID(), f.shop.ID(), status, version)
}

func (f statusFixture) transitionHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(orderUoWFactory{f.factory})
}

func (f statusFixture) cancelHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(orderUoWFactory{f.factory})
}

func transitionCommand(t *testing.T, actor kernel.Actor, id kernel.UUID, target order.Status) commands.TransitionOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewTransitionOrderStatusCommand(actor, id, target, "")
	require.NoError(t, err)
	return cmd
}

func TestTransitionOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	f := newStatusFixture(t)
	stored := f.stored(t, order.Pending, 1)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("Get", ctx, f.orderID).Return(stored, nil).Once(),
		f.orderRepo.On("Update", ctx, stored).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	handler := f.transitionHandler()

	// When
	err := handler.Handle(ctx, transitionCommand(t, f.shop, f.orderID, order.Accepted))

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, stored.Status())
	require.Len(t, stored.Events(), 1)
	assert.Equal(t, order.EventStatusChanged, stored.Events()[0].Type)
	f.uow.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_RejectionReason(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	stored := f.stored(t, order.Pending, 1)

	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("Commit", ctx).Return(nil)
	f.uow.On("Rollback", ctx).Return(nil)
	f.orderRepo.On("Get", ctx, f.orderID).Return(stored, nil)
	f.orderRepo.On("Update", ctx, stored).Return(nil)

	cmd, err := commands.NewTransitionOrderStatusCommand(f.shop, f.orderID, order.Rejected, "Kitchen closed early")
	require.NoError(t, err)
	handler := f.transitionHandler()

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, order.Rejected, stored.Status())
	assert.Equal(t, "Kitchen closed early", stored.RejectionReason())
}

func TestTransitionOrderStatusCommandHandler_Handle_Failures(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		actor   func(f statusFixture) kernel.Actor
		target  order.Status
		wantErr error
	}{
		{
			name:    "stranger_sees_not_found",
			from:    order.Pending,
			actor:   func(statusFixture) kernel.Actor { return newActor(t, kernel.NewUUID(), kernel.RoleShop) },
			target:  order.Accepted,
			wantErr: errs.ErrObjectNotFound,
		},
		{
			name:    "no_edge_is_invalid_transition",
			from:    order.Pending,
			actor:   func(f statusFixture) kernel.Actor { return f.shop },
			target:  order.Delivered,
			wantErr: order.ErrInvalidTransition,
		},
		{
			name:    "student_on_shop_edge_is_forbidden",
			from:    order.Pending,
			actor:   func(f statusFixture) kernel.Actor { return f.student },
			target:  order.Accepted,
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "terminal_status",
			from:    order.Delivered,
			actor:   func(f statusFixture) kernel.Actor { return f.shop },
			target:  order.Preparing,
			wantErr: order.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			ctx := t.Context()
			f := newStatusFixture(t)
			stored := f.stored(t, tt.from, 2)

			mock.InOrder(
				f.uow.On("Begin", ctx).Return(nil).Once(),
				f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
				f.orderRepo.On("Get", ctx, f.orderID).Return(stored, nil).Once(),
				f.uow.On("Rollback", ctx).Return(nil).Once(),
			)
			handler := f.transitionHandler()

			// When
			err := handler.Handle(ctx, transitionCommand(t, tt.actor(f), f.orderID, tt.target))

			// Then
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.from, stored.Status())
			f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.uow.AssertExpectations(t)
		})
	}
}

func TestTransitionOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("Get", ctx, f.orderID).Return(nil, errs.NewObjectNotFoundError("order", f.orderID.String())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	handler := f.transitionHandler()

	err := handler.Handle(ctx, transitionCommand(t, f.shop, f.orderID, order.Accepted))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertExpectations(t)
}

// Two shop terminals accept the same order. This handler loads version 1 and loses the
// race; the reload shows the order already accepted, so the duplicate fails cleanly.
func TestTransitionOrderStatusCommandHandler_Handle_LostRaceResolvesToInvalidTransition(t *testing.T) {
	// Given
	ctx := t.Context()
	f := newStatusFixture(t)
	stale := f.stored(t, order.Pending, 1)
	fresh := f.stored(t, order.Accepted, 2)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("Get", ctx, f.orderID).Return(stale, nil).Once(),
		f.orderRepo.On("Update", ctx, stale).Return(errs.NewVersionConflictError("order", f.orderID, 1)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),

		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("OrderRepository").Return(f.orderRepo).Once(),
		f.orderRepo.On("Get", ctx, f.orderID).Return(fresh, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	handler := f.transitionHandler()

	// When
	err := handler.Handle(ctx, transitionCommand(t, f.shop, f.orderID, order.Accepted))

	// Then
	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Accepted, transitionErr.From)
	assert.Equal(t, 2, f.factory.created)
	f.uow.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_RetriesAreBounded(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	conflict := errs.NewVersionConflictError("order", f.orderID, 1)

	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("Rollback", ctx).Return(nil)
	f.orderRepo.On("Get", ctx, f.orderID).Return(func() *order.Order { return f.stored(t, order.Pending, 1) }(), nil).Once()
	f.orderRepo.On("Get", ctx, f.orderID).Return(func() *order.Order { return f.stored(t, order.Pending, 1) }(), nil).Once()
	f.orderRepo.On("Get", ctx, f.orderID).Return(func() *order.Order { return f.stored(t, order.Pending, 1) }(), nil).Once()
	f.orderRepo.On("Update", ctx, mock.Anything).Return(conflict)
	handler := f.transitionHandler()

	err := handler.Handle(ctx, transitionCommand(t, f.shop, f.orderID, order.Accepted))

	require.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.Equal(t, 3, f.factory.created)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	stored := f.stored(t, order.Accepted, 3)

	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("Rollback", ctx).Return(nil)
	f.orderRepo.On("Get", ctx, f.orderID).Return(stored, nil)
	f.orderRepo.On("Update", ctx, stored).Return(errors.New("connection reset")).Once()
	handler := f.transitionHandler()

	err := handler.Handle(ctx, transitionCommand(t, f.shop, f.orderID, order.Preparing))

	require.EqualError(t, err, "connection reset")
	assert.Equal(t, 1, f.factory.created)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		from    order.Status
		wantErr error
	}{
		{order.Pending, nil},
		{order.Accepted, nil},
		{order.Preparing, order.ErrOrderNotCancellable},
		{order.Ready, order.ErrOrderNotCancellable},
		{order.Delivered, order.ErrOrderNotCancellable},
		{order.Rejected, order.ErrOrderNotCancellable},
		{order.Cancelled, order.ErrOrderNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			// Given
			ctx := t.Context()
			f := newStatusFixture(t)
			stored := f.stored(t, tt.from, 1)

			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.On("OrderRepository").Return(f.orderRepo).Once()
			f.orderRepo.On("Get", ctx, f.orderID).Return(stored, nil).Once()
			if tt.wantErr == nil {
				f.orderRepo.On("Update", ctx, stored).Return(nil).Once()
				f.uow.On("Commit", ctx).Return(nil).Once()
			}
			f.uow.On("Rollback", ctx).Return(nil).Once()

			cmd, err := commands.NewCancelOrderCommand(f.student, f.orderID)
			require.NoError(t, err)
			handler := f.cancelHandler()

			// When
			err = handler.Handle(ctx, cmd)

			// Then
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, stored.Status())
			} else {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, stored.Status())
			}
			f.uow.AssertExpectations(t)
			f.orderRepo.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_ShopCannotCancel(t *testing.T) {
	ctx := t.Context()
	f := newStatusFixture(t)
	stored := f.stored(t, order.Pending, 1)

	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("Rollback", ctx).Return(nil)
	f.orderRepo.On("Get", ctx, f.orderID).Return(stored, nil)

	cmd, err := commands.NewCancelOrderCommand(f.shop, f.orderID)
	require.NoError(t, err)
	handler := f.cancelHandler()

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestNewTransitionOrderStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewTransitionOrderStatusCommand(
		newActor(t, kernel.NewUUID(), kernel.RoleShop), kernel.NewUUID(), order.Unknown, "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
