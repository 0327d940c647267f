// Package realtime decouples order notifications from the request that caused them.
//
// Dispatcher implements ports.Notifier: Publish serializes the event and puts it
// on a bounded queue; a single worker hands queued messages to the event bus.
// Delivery is at most once. When the queue is full the event is dropped and
// logged, so a slow or unreachable bus never delays an order write.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

const (
	DefaultQueueSize      = 256
	DefaultPublishTimeout = 2 * time.Second
)

var (
	ErrDispatcherClosed = errors.New("dispatcher is closed")
	ErrQueueFull        = errors.New("notification queue is full")
)

type envelope struct {
	topic string
	msg   ports.Message
}

// Dispatcher is safe for concurrent use. Start must be called once before events
// are delivered; events published earlier wait in the queue.
type Dispatcher struct {
	bus     ports.EventBus
	queue   chan envelope
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	done    chan struct{}
}

func NewDispatcher(bus ports.EventBus, queueSize int, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		bus:     bus,
		queue:   make(chan envelope, queueSize),
		timeout: DefaultPublishTimeout,
		logger:  logger.With("component", "realtime-dispatcher"),
		done:    make(chan struct{}),
	}
}

// Start launches the worker. Calling it again is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return
	}
	d.started = true
	go d.run()
}

// Publish enqueues ev without waiting for delivery.
func (d *Dispatcher) Publish(_ context.Context, ev order.Event) error {
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", ev.Name, err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- envelope{topic: ev.Topic, msg: ports.Message{Name: ev.Name, Data: data}}:
		return nil
	default:
		d.logger.Warn("Dropping order event, queue is full", "topic", ev.Topic, "event", ev.Name)
		return ErrQueueFull
	}
}

// Close stops accepting events and waits for the queue to drain until ctx is done.
// Events still queued at that point are lost.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		if n := len(d.queue); n > 0 {
			d.logger.Warn("Dispatcher closed before start, discarding events", "count", n)
		}
		return nil
	}

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("Dispatcher drain interrupted", "pending", len(d.queue))
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for env := range d.queue {
		d.deliver(env)
	}
}

func (d *Dispatcher) deliver(env envelope) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.bus.Publish(ctx, env.topic, env.msg); err != nil {
		d.logger.Error("Failed to deliver order event",
			"topic", env.topic, "event", env.msg.Name, "error", err)
		return
	}

	d.logger.Debug("Order event delivered", "topic", env.topic, "event", env.msg.Name)
}
