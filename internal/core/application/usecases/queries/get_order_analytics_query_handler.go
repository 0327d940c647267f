package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// GetOrderAnalyticsQueryHandler loads every matching order and reduces it with
// order.Summarize. The restaurant itself is not required to exist: an unknown
// id yields empty analytics.
type GetOrderAnalyticsQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderAnalyticsQueryHandler(orders ports.OrderRepository) GetOrderAnalyticsQueryHandler {
	return GetOrderAnalyticsQueryHandler{orders: orders}
}

func (h GetOrderAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAnalyticsQuery,
) (order.Analytics, error) {
	if err := query.Validate(); err != nil {
		return order.Analytics{}, err
	}

	restaurantID := query.RestaurantID()
	orders, err := h.orders.FindAll(ctx, ports.OrderFilter{
		RestaurantID: &restaurantID,
		From:         query.From(),
		To:           query.To(),
	})
	if err != nil {
		return order.Analytics{}, err
	}

	return order.Summarize(orders), nil
}
