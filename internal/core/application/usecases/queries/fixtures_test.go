package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// storedOrder builds an order of restaurantID with one line at price and a
// 2.00 delivery fee.
func storedOrder(t *testing.T, restaurantID kernel.UUID, price string, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), "Dish", 1, d(price), nil, "")
	require.NoError(t, err)
	totals, err := order.ComputeTotals([]order.LineItem{line}, d("2.00"), decimal.Zero)
	require.NoError(t, err)

	p, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	addr, err := order.NewDeliveryAddress("Home", "MG Road 1", p)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:                    kernel.NewUUID(),
		Number:                order.NewNumber(fixedTime),
		CustomerID:            kernel.NewUUID(),
		RestaurantID:          restaurantID,
		Lines:                 []order.LineItem{line},
		Totals:                totals,
		Status:                status,
		PaymentMethod:         order.PaymentCard,
		PaymentStatus:         order.PaymentPending,
		DeliveryAddress:       addr,
		EstimatedDeliveryTime: fixedTime.Add(30 * time.Minute),
		CreatedAt:             fixedTime,
		UpdatedAt:             fixedTime,
	})
	require.NoError(t, err)
	return o
}

func newRestaurant(t *testing.T) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(catalog.RestaurantParams{
		ID:           kernel.NewUUID(),
		OwnerID:      kernel.NewUUID(),
		Name:         "Dosa Corner",
		Cuisine:      "South Indian",
		DeliveryFee:  d("1.50"),
		DeliveryTime: catalog.DeliveryTime{MinMinutes: 15, MaxMinutes: 30},
		CreatedAt:    fixedTime,
	})
	require.NoError(t, err)
	return r
}

func newMenuItem(t *testing.T, restaurantID kernel.UUID, name string) *catalog.MenuItem {
	t.Helper()
	m, err := catalog.NewMenuItem(catalog.MenuItemParams{
		ID:           kernel.NewUUID(),
		RestaurantID: restaurantID,
		Name:         name,
		Category:     "Dosa",
		Price:        d("4.00"),
		CreatedAt:    fixedTime,
	})
	require.NoError(t, err)
	return m
}
