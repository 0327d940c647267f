package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders whatever their current status and
// publishes order_cancelled after commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     orderEvents
	now        func() time.Time
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	audit ports.AuditLog,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		events:     newOrderEvents(notifier, audit, logger),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := o.Status()
	now := h.now()
	if err = o.Cancel(cmd.Reason(), now); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.emit(ctx, o, order.NewCancelledEvent(o, now), map[string]string{
		"from":   previous.String(),
		"reason": o.Notes(),
	}, now)

	return o, nil
}
