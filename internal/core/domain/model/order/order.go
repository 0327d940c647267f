package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Checkout carries everything resolved for a new order: the priced lines, the
// restaurant's delivery window and the customer's delivery choices.
type Checkout struct {
	Number               Number
	CustomerID           kernel.UUID
	RestaurantID         kernel.UUID
	Lines                []LineItem
	Totals               Totals
	DeliveryAddress      DeliveryAddress
	DeliveryInstructions string
	PaymentMethod        PaymentMethod
	PromoCode            string

	// DeliveryWindow is the restaurant's maximum delivery time.
	DeliveryWindow time.Duration
	PlacedAt       time.Time
}

// Order is the aggregate root of the food delivery domain. It owns its line items
// and totals and is mutated only through ChangeStatus and Cancel.
//
// Order follows these invariants:
//   - Must have a valid identifier and order number
//   - Has at least one line item
//   - total = subtotal + deliveryFee + tax - discount, computed once
//   - Status changes follow the transition table of Status
//   - actualDeliveryTime is set only when entering Delivered and is never before createdAt
type Order struct {
	id                    kernel.UUID
	number                Number
	customerID            kernel.UUID
	restaurantID          kernel.UUID
	deliveryAgentID       *kernel.UUID
	lines                 []LineItem
	totals                Totals
	status                Status
	paymentMethod         PaymentMethod
	paymentStatus         PaymentStatus
	deliveryAddress       DeliveryAddress
	deliveryInstructions  string
	promoCode             string
	notes                 string
	estimatedDeliveryTime time.Time
	actualDeliveryTime    *time.Time
	createdAt             time.Time
	updatedAt             time.Time

	isConstructed bool
}

// NewOrder creates a pending order from a resolved checkout.
//
// Parameters:
//   - id: storage key of the new order
//   - c: resolved checkout; Totals must already be computed for c.Lines
//
// Returns:
//   - *Order: the created order in Pending status with payment pending
//   - error: every validation failure, joined
//
// Example:
//
//	totals, _ := order.ComputeTotals(lines, restaurant.DeliveryFee(), decimal.Zero)
//	o, err := order.NewOrder(kernel.NewUUID(), order.Checkout{
//	    Number:         order.NewNumber(now),
//	    CustomerID:     customerID,
//	    RestaurantID:   restaurant.ID(),
//	    Lines:          lines,
//	    Totals:         totals,
//	    DeliveryWindow: restaurant.MaxDeliveryTime(),
//	    PlacedAt:       now,
//	    ...
//	})
func NewOrder(id kernel.UUID, c Checkout) (*Order, error) {
	o := &Order{
		status:               Pending,
		paymentStatus:        PaymentPending,
		deliveryInstructions: strings.TrimSpace(c.DeliveryInstructions),
		promoCode:            strings.TrimSpace(c.PromoCode),
		isConstructed:        true,
	}

	var errWindow error
	if c.DeliveryWindow <= 0 {
		errWindow = errs.NewValueIsInvalidErrorWithCause(
			"deliveryWindow", fmt.Errorf("%s is not greater than 0", c.DeliveryWindow),
		)
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(c.Number),
		o.setCustomerID(c.CustomerID),
		o.setRestaurantID(c.RestaurantID),
		o.setLines(c.Lines, c.Totals),
		o.setDeliveryAddress(c.DeliveryAddress),
		o.setPaymentMethod(c.PaymentMethod),
		o.setCreatedAt(c.PlacedAt),
		errWindow,
	); err != nil {
		return nil, err
	}

	o.updatedAt = o.createdAt
	o.estimatedDeliveryTime = o.createdAt.Add(c.DeliveryWindow)
	return o, nil
}

// RestoreParams is the persisted state of an order.
type RestoreParams struct {
	ID                    kernel.UUID
	Number                Number
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	DeliveryAgentID       *kernel.UUID
	Lines                 []LineItem
	Totals                Totals
	Status                Status
	PaymentMethod         PaymentMethod
	PaymentStatus         PaymentStatus
	DeliveryAddress       DeliveryAddress
	DeliveryInstructions  string
	PromoCode             string
	Notes                 string
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RestoreOrder rehydrates an order read from storage. Totals are taken as stored and
// not recomputed from the lines.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		deliveryAgentID:       p.DeliveryAgentID,
		lines:                 append([]LineItem(nil), p.Lines...),
		totals:                p.Totals,
		paymentStatus:         p.PaymentStatus,
		deliveryInstructions:  p.DeliveryInstructions,
		promoCode:             p.PromoCode,
		notes:                 p.Notes,
		estimatedDeliveryTime: p.EstimatedDeliveryTime,
		actualDeliveryTime:    p.ActualDeliveryTime,
		updatedAt:             p.UpdatedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setNumber(p.Number),
		o.setCustomerID(p.CustomerID),
		o.setRestaurantID(p.RestaurantID),
		o.setStatus(p.Status),
		o.setDeliveryAddress(p.DeliveryAddress),
		o.setPaymentMethod(p.PaymentMethod),
		o.setCreatedAt(p.CreatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAgentID returns nil until an agent has been assigned.
func (o *Order) DeliveryAgentID() *kernel.UUID {
	return o.deliveryAgentID
}

func (o *Order) Lines() []LineItem {
	return append([]LineItem(nil), o.lines...)
}

func (o *Order) Totals() Totals {
	return o.totals
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

func (o *Order) DeliveryInstructions() string {
	return o.deliveryInstructions
}

func (o *Order) PromoCode() string {
	return o.promoCode
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) EstimatedDeliveryTime() time.Time {
	return o.estimatedDeliveryTime
}

// ActualDeliveryTime returns nil until the order is delivered.
func (o *Order) ActualDeliveryTime() *time.Time {
	return o.actualDeliveryTime
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOverdue reports whether an order still in progress has passed its estimated
// delivery time.
func (o *Order) IsOverdue(now time.Time) bool {
	return !o.status.IsTerminal() && now.After(o.estimatedDeliveryTime)
}

// ChangeStatus moves the order to target and optionally records a delivery agent.
//
// This method enforces the following business rules:
//   - target must be reachable from the current status (see Status.TransitionTo)
//   - target equal to the current status is accepted for non terminal states, so an
//     agent can be assigned without moving the order
//   - entering Delivered stamps the actual delivery time, never earlier than createdAt
//
// Parameters:
//   - target: requested status
//   - agentID: delivery agent to record, or nil to keep the current one
//   - now: time of the change
//
// Returns:
//   - nil on success; the order is unchanged on error
func (o *Order) ChangeStatus(target Status, agentID *kernel.UUID, now time.Time) error {
	next := target
	if target != o.status || o.status.IsTerminal() {
		var err error
		if next, err = o.status.TransitionTo(target); err != nil {
			return err
		}
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return err
		}
		id := *agentID
		o.deliveryAgentID = &id
	}

	if next == Delivered && o.status != Delivered {
		delivered := now
		if delivered.Before(o.createdAt) {
			delivered = o.createdAt
		}
		o.actualDeliveryTime = &delivered
	}

	o.status = next
	o.touch(now)
	return nil
}

// Cancel forces the order into Cancelled from any status and stores reason in notes.
func (o *Order) Cancel(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	o.status = Cancelled
	o.notes = reason
	o.touch(now)
	return nil
}

func (o *Order) touch(now time.Time) {
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(n Number) error {
	if !LooksLikeNumber(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q is malformed", string(n)))
	}
	o.number = n
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

// setLines checks that totals were computed from exactly these lines.
func (o *Order) setLines(lines []LineItem, totals Totals) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	expected, err := ComputeTotals(lines, totals.DeliveryFee(), totals.Discount())
	if err != nil {
		return err
	}
	if !expected.Total().Equal(totals.Total()) || !expected.Tax().Equal(totals.Tax()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"totals",
			fmt.Errorf("total %s does not match line items (%s)", totals.Total(), expected.Total()),
		)
	}

	o.lines = append([]LineItem(nil), lines...)
	o.totals = totals
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setDeliveryAddress(a DeliveryAddress) error {
	if err := a.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = a
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	if _, err := ParsePaymentMethod(string(m)); err != nil {
		return err
	}
	o.paymentMethod = m
	return nil
}

func (o *Order) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = t
	return nil
}
