package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()
	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	addr, err := order.NewDeliveryAddress("Home", "221B Baker Street", point)
	require.NoError(t, err)
	return addr
}

// sampleLines is two lines: 2 x 10.00 and 1 x (5.00 + 1.50).
func sampleLines(t *testing.T) []order.LineItem {
	t.Helper()
	a, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 2, money("10.00"), nil, "")
	require.NoError(t, err)

	extra, err := order.NewCustomization("Toppings", []string{"Cheese"}, money("1.50"))
	require.NoError(t, err)
	b, err := order.NewLineItem(kernel.NewUUID(), "Garlic bread", 1, money("5.00"), []order.Customization{extra}, "crispy")
	require.NoError(t, err)

	return []order.LineItem{a, b}
}

func sampleCheckout(t *testing.T) order.Checkout {
	t.Helper()
	lines := sampleLines(t)
	totals, err := order.ComputeTotals(lines, money("3.00"), decimal.Zero)
	require.NoError(t, err)

	return order.Checkout{
		Number:          order.NewNumber(placedAt),
		CustomerID:      kernel.NewUUID(),
		RestaurantID:    kernel.NewUUID(),
		Lines:           lines,
		Totals:          totals,
		DeliveryAddress: newAddress(t),
		PaymentMethod:   order.PaymentCard,
		DeliveryWindow:  45 * time.Minute,
		PlacedAt:        placedAt,
	}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), sampleCheckout(t))
	require.NoError(t, err)
	return o
}

// orderIn drives a new order through the happy path up to status.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	if status == order.Cancelled {
		require.NoError(t, o.Cancel("changed my mind", placedAt.Add(time.Minute)))
		return o
	}
	path := []order.Status{order.Confirmed, order.Preparing, order.Ready, order.OutForDelivery, order.Delivered}
	at := placedAt
	for _, s := range path {
		if o.Status() == status {
			break
		}
		at = at.Add(5 * time.Minute)
		require.NoError(t, o.ChangeStatus(s, nil, at))
	}
	require.Equal(t, status, o.Status())
	return o
}
