package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies status transitions.
//
// The delivery agent, when given, must be an existing user. Concurrent updates of
// the same order are not serialized: the last committed write wins.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     orderEvents
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	audit ports.AuditLog,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		events:     newOrderEvents(notifier, audit, logger),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle loads the order, applies the transition and persists it. An
// order_status_update event is published after commit.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	if agentID := cmd.DeliveryAgentID(); agentID != nil {
		if _, err = uow.UserRepository().Get(ctx, *agentID); err != nil {
			return nil, err
		}
	}

	previous := o.Status()
	now := h.now()
	if err = o.ChangeStatus(cmd.Status(), cmd.DeliveryAgentID(), now); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	details := map[string]string{"from": previous.String(), "to": o.Status().String()}
	if agent := o.DeliveryAgentID(); agent != nil {
		details["deliveryAgentId"] = agent.String()
	}
	h.events.emit(ctx, o, order.NewStatusUpdateEvent(o, now), details, now)

	return o, nil
}
