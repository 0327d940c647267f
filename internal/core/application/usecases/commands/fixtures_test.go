package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCustomer(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Asha", "asha@example.com", "", user.RoleCustomer, fixedTime)
	require.NoError(t, err)
	return u
}

func newRestaurant(t *testing.T) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(catalog.RestaurantParams{
		ID:           kernel.NewUUID(),
		OwnerID:      kernel.NewUUID(),
		Name:         "Trattoria",
		Cuisine:      "Italian",
		DeliveryFee:  d("3.00"),
		DeliveryTime: catalog.DeliveryTime{MinMinutes: 20, MaxMinutes: 40},
		CreatedAt:    fixedTime,
	})
	require.NoError(t, err)
	return r
}

func newMenuItem(t *testing.T, restaurantID kernel.UUID, price string, groups ...catalog.CustomizationGroup) *catalog.MenuItem {
	t.Helper()
	m, err := catalog.NewMenuItem(catalog.MenuItemParams{
		ID:             kernel.NewUUID(),
		RestaurantID:   restaurantID,
		Name:           "Dish " + price,
		Category:       "Mains",
		Price:          d(price),
		Customizations: groups,
		CreatedAt:      fixedTime,
	})
	require.NoError(t, err)
	return m
}

func newAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	p, err := kernel.NewGeoPoint(19.076, 72.8777)
	require.NoError(t, err)
	a, err := order.NewDeliveryAddress("Work", "Nariman Point", p)
	require.NoError(t, err)
	return a
}

// newStoredOrder builds a persisted looking order in the given status.
func newStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), "Dish", 1, d("10.00"), nil, "")
	require.NoError(t, err)
	totals, err := order.ComputeTotals([]order.LineItem{line}, d("2.00"), decimal.Zero)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:                    kernel.NewUUID(),
		Number:                order.NewNumber(fixedTime),
		CustomerID:            kernel.NewUUID(),
		RestaurantID:          kernel.NewUUID(),
		Lines:                 []order.LineItem{line},
		Totals:                totals,
		Status:                status,
		PaymentMethod:         order.PaymentCOD,
		PaymentStatus:         order.PaymentPending,
		DeliveryAddress:       newAddress(t),
		EstimatedDeliveryTime: fixedTime.Add(40 * time.Minute),
		CreatedAt:             fixedTime,
		UpdatedAt:             fixedTime,
	})
	require.NoError(t, err)
	return o
}
