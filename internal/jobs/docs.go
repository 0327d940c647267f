// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six field expressions with seconds).
//
// # Available Jobs
//
// DelayedOrderJob - scans for orders past their estimated delivery time that are neither
// delivered nor cancelled, and publishes an order_delayed event for each one once.
//
// # Usage
//
//	delayed := jobs.NewDelayedOrderJob(orderRepo, notifier, cfg.DelayedOrderSchedule, logger)
//	jobManager := jobs.NewJobManager(delayed)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed scan is logged and retried on the next tick
// - A failed publish leaves the order unmarked, so the next scan tries again
// - Failed job starts will stop any already running jobs
package jobs
