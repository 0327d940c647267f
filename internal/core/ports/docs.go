// Package ports defines the contracts between the application core and its
// adapters: repositories and the unit of work for storage, the event bus and
// notifier for realtime delivery, and the audit log.
package ports
