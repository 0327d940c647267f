package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	ErrRestaurantIsInactive       = errs.NewValueIsInvalidErrorWithCause(
		"restaurantId", errors.New("restaurant is not accepting orders"),
	)
)

// DeliveryTime is the window, in minutes, a restaurant promises for delivery.
type DeliveryTime struct {
	MinMinutes int
	MaxMinutes int
}

func (d DeliveryTime) Validate() error {
	if d.MinMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryTime.min", fmt.Errorf("%d is not greater than 0", d.MinMinutes),
		)
	}
	if d.MaxMinutes < d.MinMinutes {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryTime.max", fmt.Errorf("%d is less than min %d", d.MaxMinutes, d.MinMinutes),
		)
	}
	return nil
}

// Max returns the upper bound used for the estimated delivery time of an order.
func (d DeliveryTime) Max() time.Duration {
	return time.Duration(d.MaxMinutes) * time.Minute
}

// Restaurant is a place customers order from.
type Restaurant struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	name         string
	description  string
	cuisine      string
	deliveryFee  decimal.Decimal
	deliveryTime DeliveryTime
	minimumOrder decimal.Decimal
	isOpen       bool
	isActive     bool
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// RestaurantParams groups the attributes of a restaurant.
type RestaurantParams struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	Name         string
	Description  string
	Cuisine      string
	DeliveryFee  decimal.Decimal
	DeliveryTime DeliveryTime
	MinimumOrder decimal.Decimal
	IsOpen       bool
	IsActive     bool
	CreatedAt    time.Time
}

// NewRestaurant creates an open and active restaurant.
func NewRestaurant(p RestaurantParams) (*Restaurant, error) {
	p.IsOpen = true
	p.IsActive = true
	return RestoreRestaurant(p)
}

// RestoreRestaurant rebuilds a restaurant read from storage.
func RestoreRestaurant(p RestaurantParams) (*Restaurant, error) {
	r := &Restaurant{
		description: strings.TrimSpace(p.Description),
		isOpen:      p.IsOpen,
		isActive:    p.IsActive,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(p.ID),
		r.setOwnerID(p.OwnerID),
		r.setName(p.Name),
		r.setCuisine(p.Cuisine),
		r.setDeliveryFee(p.DeliveryFee),
		r.setDeliveryTime(p.DeliveryTime),
		r.setMinimumOrder(p.MinimumOrder),
		r.setCreatedAt(p.CreatedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Description() string {
	return r.description
}

func (r *Restaurant) Cuisine() string {
	return r.cuisine
}

func (r *Restaurant) DeliveryFee() decimal.Decimal {
	return r.deliveryFee
}

func (r *Restaurant) DeliveryTime() DeliveryTime {
	return r.deliveryTime
}

func (r *Restaurant) MinimumOrder() decimal.Decimal {
	return r.minimumOrder
}

func (r *Restaurant) IsOpen() bool {
	return r.isOpen
}

func (r *Restaurant) IsActive() bool {
	return r.isActive
}

func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

// ValidateAcceptsOrders fails for deactivated restaurants.
func (r *Restaurant) ValidateAcceptsOrders() error {
	if !r.isActive {
		return ErrRestaurantIsInactive
	}
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	r.ownerID = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCuisine(cuisine string) error {
	cuisine = strings.TrimSpace(cuisine)
	if cuisine == "" {
		return errs.NewValueIsRequiredError("cuisine")
	}
	r.cuisine = cuisine
	return nil
}

func (r *Restaurant) setDeliveryFee(fee decimal.Decimal) error {
	if err := kernel.ValidateMoney("deliveryFee", fee); err != nil {
		return err
	}
	r.deliveryFee = kernel.RoundMoney(fee)
	return nil
}

func (r *Restaurant) setDeliveryTime(d DeliveryTime) error {
	if err := d.Validate(); err != nil {
		return err
	}
	r.deliveryTime = d
	return nil
}

func (r *Restaurant) setMinimumOrder(amount decimal.Decimal) error {
	if err := kernel.ValidateMoney("minimumOrder", amount); err != nil {
		return err
	}
	r.minimumOrder = kernel.RoundMoney(amount)
	return nil
}

func (r *Restaurant) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = t
	return nil
}
