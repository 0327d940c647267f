package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// orderEvents publishes notifications and audit entries after a committed change.
// Failures are logged and never returned: the order write has already happened.
type orderEvents struct {
	notifier ports.Notifier
	audit    ports.AuditLog
	logger   *slog.Logger
}

func newOrderEvents(notifier ports.Notifier, audit ports.AuditLog, logger *slog.Logger) orderEvents {
	if logger == nil {
		logger = slog.Default()
	}
	return orderEvents{notifier: notifier, audit: audit, logger: logger}
}

func (e orderEvents) emit(ctx context.Context, o *order.Order, ev order.Event, details map[string]string, at time.Time) {
	if e.audit != nil {
		entry := ports.AuditEntry{
			OrderID:     o.ID(),
			OrderNumber: o.Number().String(),
			Action:      ev.Name,
			Status:      o.Status().String(),
			Details:     details,
			At:          at,
		}
		if err := e.audit.Record(ctx, entry); err != nil {
			e.logger.WarnContext(ctx, "Failed to record order audit entry",
				"order_id", o.ID().String(), "action", ev.Name, "error", err)
		}
	}

	if e.notifier != nil {
		if err := e.notifier.Publish(ctx, ev); err != nil {
			e.logger.WarnContext(ctx, "Failed to publish order event",
				"order_id", o.ID().String(), "event", ev.Name, "error", err)
		}
	}
}
