package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderFilter narrows an order listing. Nil fields do not filter.
type OrderFilter struct {
	CustomerID   *kernel.UUID
	RestaurantID *kernel.UUID
	Status       *order.Status
	From         *time.Time
	To           *time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
// Lookups of a missing order return errs.ObjectNotFoundError.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	// A duplicate order number is reported as a validation error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable fields of an order: status, delivery agent, notes,
	// payment status, actual delivery time and updated at. Line items and totals
	// are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by storage key.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human facing number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// Find returns one page of orders matching filter, newest first, and the
	// number of matching orders across all pages.
	Find(ctx context.Context, filter OrderFilter, page Page) ([]*order.Order, int64, error)

	// FindAll returns every order matching filter, newest first.
	// Used by analytics, which reduces over the full set.
	FindAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// FindOverdue returns up to limit orders in a non terminal status whose
	// estimated delivery time is before now.
	FindOverdue(ctx context.Context, now time.Time, limit int) ([]*order.Order, error)
}
