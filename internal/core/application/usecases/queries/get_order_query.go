// Package queries contains read-only operations of the service.
// Queries never open a transaction and never publish events.
package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery looks an order up by its storage key or by its order number.
//
// Example:
//
//	query, err := NewGetOrderQuery("FD1717264800000K3Z9Q")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	id     *kernel.UUID
	number order.Number

	guard guard.ConstructorGuard
}

// NewGetOrderQuery accepts either a UUID or an order number. Anything else is
// rejected as an invalid orderId.
func NewGetOrderQuery(ref string) (GetOrderQuery, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	if order.LooksLikeNumber(ref) {
		return GetOrderQuery{
			number: order.Number(ref),
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	id, err := kernel.UUIDFromString(ref)
	if err != nil {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return GetOrderQuery{
		id:    &id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID is nil when the query is by order number.
func (q GetOrderQuery) ID() *kernel.UUID {
	return q.id
}

func (q GetOrderQuery) Number() order.Number {
	return q.number
}
