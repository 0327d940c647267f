package queries

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrderAnalyticsQueryIsNotConstructed = errors.New(
		"GetOrderAnalyticsQuery must be created via NewGetOrderAnalyticsQuery constructor",
	)
)

// GetOrderAnalyticsQuery summarizes the orders of one restaurant placed within
// an optional [from, to] window. Both bounds are inclusive.
type GetOrderAnalyticsQuery struct {
	restaurantID kernel.UUID
	from         *time.Time
	to           *time.Time

	guard guard.ConstructorGuard
}

func NewGetOrderAnalyticsQuery(restaurantID kernel.UUID, from, to *time.Time) (GetOrderAnalyticsQuery, error) {
	var errWindow error
	if from != nil && to != nil && to.Before(*from) {
		errWindow = errs.NewValueIsInvalidErrorWithCause(
			"to",
			fmt.Errorf("end %s is before start %s", to.Format(time.RFC3339), from.Format(time.RFC3339)),
		)
	}

	if err := errors.Join(restaurantID.Validate(), errWindow); err != nil {
		return GetOrderAnalyticsQuery{}, err
	}

	return GetOrderAnalyticsQuery{
		restaurantID: restaurantID,
		from:         from,
		to:           to,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAnalyticsQueryIsNotConstructed)
}

func (q GetOrderAnalyticsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q GetOrderAnalyticsQuery) From() *time.Time {
	return q.from
}

func (q GetOrderAnalyticsQuery) To() *time.Time {
	return q.to
}
