package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderHistoryQueryHandler reads the audit trail of an order. The order must
// exist; its history may be empty when the audit trail is disabled.
type GetOrderHistoryQueryHandler struct {
	orders ports.OrderRepository
	audit  ports.AuditLog
}

// NewGetOrderHistoryQueryHandler accepts a nil audit log.
func NewGetOrderHistoryQueryHandler(orders ports.OrderRepository, audit ports.AuditLog) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{orders: orders, audit: audit}
}

func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]ports.AuditEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.orders.Get(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	if h.audit == nil {
		return []ports.AuditEntry{}, nil
	}

	entries, err := h.audit.History(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []ports.AuditEntry{}
	}
	return entries, nil
}
