// Package membus is an in-process ports.EventBus. It serves a single instance
// deployment and tests; subscribers only see events published by the same process.
package membus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"fooddelivery/internal/core/ports"
)

// DefaultSubscriberBuffer is the per subscriber queue length.
const DefaultSubscriberBuffer = 16

var ErrBusClosed = errors.New("event bus is closed")

type subscriber struct {
	ch chan ports.Message
}

// Bus fans messages out to the subscribers of a topic. A subscriber that does not
// keep up loses messages instead of slowing the publisher down.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]map[*subscriber]struct{}
	closed bool
	done   chan struct{}
	buffer int
	logger *slog.Logger
}

func New(buffer int, logger *slog.Logger) *Bus {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		topics: make(map[string]map[*subscriber]struct{}),
		done:   make(chan struct{}),
		buffer: buffer,
		logger: logger.With("component", "membus"),
	}
}

// Publish never blocks.
func (b *Bus) Publish(_ context.Context, topic string, msg ports.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	for sub := range b.topics[topic] {
		select {
		case sub.ch <- msg:
		default:
			b.logger.Warn("Dropping message for slow subscriber", "topic", topic, "event", msg.Name)
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan ports.Message, error) {
	sub := &subscriber{ch: make(chan ports.Message, b.buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*subscriber]struct{})
	}
	b.topics[topic][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(topic, sub)
		case <-b.done:
		}
	}()

	return sub.ch, nil
}

// Close closes every subscriber channel. Later calls to Publish and Subscribe fail.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for topic, subs := range b.topics {
		for sub := range subs {
			close(sub.ch)
		}
		delete(b.topics, topic)
	}
}

// Subscribers reports how many subscribers a topic has.
func (b *Bus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

func (b *Bus) unsubscribe(topic string, sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[topic]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.ch)
	if len(subs) == 0 {
		delete(b.topics, topic)
	}
}
