package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a status transition, optionally assigning a
// delivery agent in the same step.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	status          order.Status
	deliveryAgentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the target status value. Whether the
// transition is allowed is decided by the order itself.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	deliveryAgentID *kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	var errAgent error
	if deliveryAgentID != nil {
		if errAgent = deliveryAgentID.Validate(); errAgent == nil {
			id := *deliveryAgentID
			cmd.deliveryAgentID = &id
		}
	}

	if err := errors.Join(orderID.Validate(), status.Validate(), errAgent); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = status
	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// DeliveryAgentID is nil when the request does not assign an agent.
func (c UpdateOrderStatusCommand) DeliveryAgentID() *kernel.UUID {
	return c.deliveryAgentID
}
