package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// AuditEntry records one change of an order.
type AuditEntry struct {
	OrderID     kernel.UUID
	OrderNumber string
	Action      string
	Status      string
	Details     map[string]string
	At          time.Time
}

// AuditLog keeps the change history of orders outside of the order store.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error

	// History returns the entries of one order, oldest first.
	History(ctx context.Context, orderID kernel.UUID) ([]AuditEntry, error)
}
