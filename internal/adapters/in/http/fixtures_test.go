package http_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/api"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// workedOrder is two 11.25 pizzas upgraded to Large for 2.00 each, delivered
// for 3.00: subtotal 26.50, tax 2.65, total 32.15.
func workedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	size, err := order.NewCustomization("Size", []string{"Large"}, d("2.00"))
	require.NoError(t, err)
	line, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 2, d("11.25"), []order.Customization{size}, "extra basil")
	require.NoError(t, err)
	totals, err := order.ComputeTotals([]order.LineItem{line}, d("3.00"), decimal.Zero)
	require.NoError(t, err)

	p, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	addr, err := order.NewDeliveryAddress("Home", "MG Road 1", p)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:                    kernel.NewUUID(),
		Number:                order.NewNumber(placedAt),
		CustomerID:            kernel.NewUUID(),
		RestaurantID:          kernel.NewUUID(),
		Lines:                 []order.LineItem{line},
		Totals:                totals,
		Status:                status,
		PaymentMethod:         order.PaymentCard,
		PaymentStatus:         order.PaymentPending,
		DeliveryAddress:       addr,
		EstimatedDeliveryTime: placedAt.Add(45 * time.Minute),
		CreatedAt:             placedAt,
		UpdatedAt:             placedAt,
	})
	require.NoError(t, err)
	return o
}

// stub returns a handler that records its input and answers with r, err.
func stub[Q, R any](got *Q, r R, err error) httpadapter.HandlerFunc[Q, R] {
	return func(_ context.Context, q Q) (R, error) {
		if got != nil {
			*got = q
		}
		return r, err
	}
}

// mustNotCall fails the test when the handler is reached.
func mustNotCall[Q, R any](t *testing.T) httpadapter.HandlerFunc[Q, R] {
	return func(_ context.Context, _ Q) (R, error) {
		t.Error("handler must not be called")
		var zero R
		return zero, nil
	}
}

type noEvents struct{}

func (noEvents) Publish(context.Context, string, ports.Message) error { return nil }

func (noEvents) Subscribe(context.Context, string) (<-chan ports.Message, error) {
	return make(chan ports.Message), nil
}

func newEcho(t *testing.T, h httpadapter.Handlers, bus ports.EventBus) *echo.Echo {
	t.Helper()
	if bus == nil {
		bus = noEvents{}
	}
	doc, err := api.Spec()
	require.NoError(t, err)

	e, err := httpadapter.NewEcho(httpadapter.NewServer(h, bus, discard()), doc, discard())
	require.NoError(t, err)
	return e
}
