package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeliveryAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery address must be created via NewDeliveryAddress",
)

// DeliveryAddress is the snapshot of where the order should be delivered. It is
// copied from the request and never follows later changes to the customer's
// address book.
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	label    string
	address  string
	location kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewDeliveryAddress validates the free text address and the coordinates. label is
// optional ("Home", "Work").
func NewDeliveryAddress(label, address string, location kernel.GeoPoint) (DeliveryAddress, error) {
	a := DeliveryAddress{
		label: strings.TrimSpace(label),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setAddress(address), a.setLocation(location)); err != nil {
		return DeliveryAddress{}, err
	}

	return a, nil
}

func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

func (a DeliveryAddress) Label() string {
	return a.label
}

func (a DeliveryAddress) Address() string {
	return a.address
}

func (a DeliveryAddress) Location() kernel.GeoPoint {
	return a.location
}

func (a *DeliveryAddress) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress.address")
	}
	a.address = address
	return nil
}

func (a *DeliveryAddress) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
