package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultDelayedOrderSchedule fires at second 0 of every minute.
	DefaultDelayedOrderSchedule = "0 * * * * *"

	delayedOrderBatch = 500
)

// OverdueOrderFinder is the part of the order repository the job reads through.
type OverdueOrderFinder interface {
	FindOverdue(ctx context.Context, now time.Time, limit int) ([]*order.Order, error)
}

// DelayedOrderJob announces orders that missed their estimated delivery time.
// Each order is announced at most once per process.
type DelayedOrderJob struct {
	orders   OverdueOrderFinder
	notifier ports.Notifier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	notified map[kernel.UUID]struct{}
}

// NewDelayedOrderJob creates the job. An empty schedule selects DefaultDelayedOrderSchedule;
// schedules use the six field cron syntax with seconds.
func NewDelayedOrderJob(
	orders OverdueOrderFinder,
	notifier ports.Notifier,
	schedule string,
	logger *slog.Logger,
) *DelayedOrderJob {
	if schedule == "" {
		schedule = DefaultDelayedOrderSchedule
	}
	return &DelayedOrderJob{
		orders:   orders,
		notifier: notifier,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delayed_order_job"),
		now:      time.Now,
		notified: make(map[kernel.UUID]struct{}),
	}
}

// Start registers the scan on the schedule and starts the scheduler.
func (j *DelayedOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed order job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *DelayedOrderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delayed order job stopped")
}

// Run performs one scan and returns how many orders were announced.
func (j *DelayedOrderJob) Run(ctx context.Context) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	overdue, err := j.orders.FindOverdue(ctx, now, delayedOrderBatch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed order scan failed", "error", err)
		return 0
	}

	current := make(map[kernel.UUID]struct{}, len(overdue))
	announced := 0
	for _, o := range overdue {
		current[o.ID()] = struct{}{}
		if _, done := j.notified[o.ID()]; done {
			continue
		}

		if err := j.notifier.Publish(ctx, order.NewDelayedEvent(o, now)); err != nil {
			j.logger.WarnContext(ctx, "Failed to publish delayed order event",
				"orderId", o.ID().String(), "error", err)
			continue
		}
		j.notified[o.ID()] = struct{}{}
		announced++
	}

	// An order that left the overdue set reached a terminal status and cannot come back.
	if len(overdue) < delayedOrderBatch {
		for id := range j.notified {
			if _, still := current[id]; !still {
				delete(j.notified, id)
			}
		}
	}

	if announced > 0 {
		j.logger.InfoContext(ctx, "Delayed orders announced", "count", announced)
	}
	return announced
}
