package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("customerId or restaurantId")
)

// ListOrdersQuery pages through the orders of a customer or of a restaurant,
// newest first. When both ids are given an order must match both.
type ListOrdersQuery struct {
	filter ports.OrderFilter
	page   ports.Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the filter and the page bounds. A page number or
// limit of zero selects the default.
func NewListOrdersQuery(
	customerID, restaurantID *kernel.UUID,
	status *order.Status,
	pageNumber, limit int,
) (ListOrdersQuery, error) {
	var errOwner, errCustomer, errRestaurant, errStatus error
	if customerID == nil && restaurantID == nil {
		errOwner = ErrOwnerIsRequired
	}
	if customerID != nil {
		errCustomer = customerID.Validate()
	}
	if restaurantID != nil {
		errRestaurant = restaurantID.Validate()
	}
	if status != nil {
		errStatus = status.Validate()
	}

	page, errPage := ports.NewPage(pageNumber, limit)

	if err := errors.Join(errOwner, errCustomer, errRestaurant, errStatus, errPage); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: ports.OrderFilter{
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			Status:       status,
		},
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}

func (q ListOrdersQuery) Page() ports.Page {
	return q.page
}

// ListOrdersQueryResponse is one page of orders.
type ListOrdersQueryResponse struct {
	Orders      []*order.Order
	Total       int64
	TotalPages  int
	CurrentPage int
}
