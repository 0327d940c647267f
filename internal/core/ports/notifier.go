package ports

import (
	"context"
	"encoding/json"

	"fooddelivery/internal/core/domain/model/order"
)

// Notifier is the Notification Channel as seen by the use cases. Publish must not
// block on delivery and its failure never undoes the change that caused the event.
type Notifier interface {
	Publish(ctx context.Context, event order.Event) error
}

// Message is an event on the wire: its name and JSON payload.
type Message struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// EventBus is a topic addressed publish-subscribe transport.
type EventBus interface {
	Publish(ctx context.Context, topic string, msg Message) error

	// Subscribe delivers messages published on topic after the call returns.
	// The channel is closed when ctx is done or the bus shuts down.
	Subscribe(ctx context.Context, topic string) (<-chan Message, error)
}
