package commands

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// OrderLineRequest is one requested line of a checkout.
type OrderLineRequest struct {
	MenuItemID          kernel.UUID
	Quantity            int
	Customizations      []catalog.Selection
	SpecialInstructions string
}

// CreateOrderCommand represents a checkout request.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID,
//	    []OrderLineRequest{{MenuItemID: pizzaID, Quantity: 2}},
//	    address, "Ring twice", order.PaymentCard, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID           kernel.UUID
	restaurantID         kernel.UUID
	lines                []OrderLineRequest
	deliveryAddress      order.DeliveryAddress
	deliveryInstructions string
	paymentMethod        order.PaymentMethod
	promoCode            string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the shape of a checkout request. Catalog checks
// happen in the handler.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	lines []OrderLineRequest,
	deliveryAddress order.DeliveryAddress,
	deliveryInstructions string,
	paymentMethod order.PaymentMethod,
	promoCode string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryInstructions: strings.TrimSpace(deliveryInstructions),
		promoCode:            strings.TrimSpace(promoCode),
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Lines() []OrderLineRequest {
	return append([]OrderLineRequest(nil), c.lines...)
}

func (c CreateOrderCommand) DeliveryAddress() order.DeliveryAddress {
	return c.deliveryAddress
}

func (c CreateOrderCommand) DeliveryInstructions() string {
	return c.deliveryInstructions
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PromoCode is stored on the order; it does not change the price.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineRequest) error {
	if len(lines) == 0 {
		return ErrItemsAreRequired
	}

	var lineErrs []error
	for i, l := range lines {
		if err := l.MenuItemID.Validate(); err != nil {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].menuItemId", i), err))
		}
		if l.Quantity < order.MinQuantity {
			lineErrs = append(lineErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i), l.Quantity, order.MinQuantity, "∞",
			))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = append([]OrderLineRequest(nil), lines...)
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(a order.DeliveryAddress) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = a
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(m order.PaymentMethod) error {
	parsed, err := order.ParsePaymentMethod(string(m))
	if err != nil {
		return err
	}
	c.paymentMethod = parsed
	return nil
}
