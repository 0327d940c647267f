package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// CreateOrderCommandHandler places orders.
//
// Steps:
//   - the customer must exist
//   - every menu item is loaded; a missing one aborts the checkout
//   - the restaurant is loaded and the cart priced by services.CheckoutPricer
//   - a fresh order number is generated and the order persisted in one transaction
//   - after commit an order_created event is published and audited
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, auditLog, logger)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.CheckoutPricer
	events     orderEvents
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	audit ports.AuditLog,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewCheckoutPricer(),
		events:     newOrderEvents(notifier, audit, logger),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle validates the checkout against the catalog and persists the order.
// No order is stored when any step fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.UserRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	menuItems := uow.MenuItemRepository()
	cart := make([]services.CartLine, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		item, err := menuItems.Get(ctx, l.MenuItemID)
		if err != nil {
			return nil, err
		}
		cart = append(cart, services.CartLine{
			Item:                item,
			Quantity:            l.Quantity,
			Selections:          l.Customizations,
			SpecialInstructions: l.SpecialInstructions,
		})
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	priced, err := h.pricer.Price(restaurant, cart, cmd.PromoCode())
	if err != nil {
		return nil, err
	}

	now := h.now()
	created, err := order.NewOrder(kernel.NewUUID(), order.Checkout{
		Number:               order.NewNumber(now),
		CustomerID:           cmd.CustomerID(),
		RestaurantID:         restaurant.ID(),
		Lines:                priced.Lines,
		Totals:               priced.Totals,
		DeliveryAddress:      cmd.DeliveryAddress(),
		DeliveryInstructions: cmd.DeliveryInstructions(),
		PaymentMethod:        cmd.PaymentMethod(),
		PromoCode:            cmd.PromoCode(),
		DeliveryWindow:       restaurant.DeliveryTime().Max(),
		PlacedAt:             now,
	})
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order %s: %w", created.Number(), err)
	}

	h.events.emit(ctx, created, order.NewCreatedEvent(created, now), map[string]string{
		"total": created.Totals().Total().StringFixed(kernel.MoneyScale),
	}, now)

	return created, nil
}
