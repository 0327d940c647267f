package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "  out of stock ")
	require.NoError(t, err)
	assert.Equal(t, "out of stock", cmd.Reason())

	_, err = commands.NewCancelOrderCommand(kernel.NewUUID(), " ")
	require.ErrorIs(t, err, commands.ErrReasonIsRequired)

	_, err = commands.NewCancelOrderCommand(kernel.UUID{}, "reason")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommandHandler_Handle_FromAnyStatus(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			stored := newStoredOrder(t, status)
			cmd, err := commands.NewCancelOrderCommand(stored.ID(), "customer unreachable")
			require.NoError(t, err)

			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			notifier := new(MockNotifier)
			audit := new(MockAuditLog)
			factory.On("Create").Return(uow).Once()
			uow.On("OrderRepository").Return(orders)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				orders.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
				orders.On("Update", ctx, stored).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			audit.On("Record", ctx, mock.Anything).Return(nil).Once()
			notifier.On("Publish", ctx, mock.MatchedBy(func(e order.Event) bool {
				p, ok := e.Payload.(order.CancelledPayload)
				return ok && e.Name == order.EventCancelled && p.Reason == "customer unreachable"
			})).Return(nil).Once()

			h := commands.NewCancelOrderCommandHandler(factory, notifier, audit, nil)
			cancelled, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, cancelled.Status())
			assert.Equal(t, "customer unreachable", cancelled.Notes())
			uow.AssertExpectations(t)
			orders.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id, "duplicate")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, nil, nil, nil)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestCancelOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.Confirmed)
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), "duplicate")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)
	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	orders.On("Update", ctx, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, notifier, nil, nil)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
