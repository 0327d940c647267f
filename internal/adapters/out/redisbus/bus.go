// Package redisbus carries order events over Redis pub/sub so every instance of
// the service can serve the subscribers of any order.
package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const subscriberBuffer = 16

// Bus implements ports.EventBus. Channel names are the topic with a service prefix,
// e.g. "fooddelivery:order_<id>".
type Bus struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

func New(client *redis.Client, prefix string, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		client: client,
		prefix: prefix,
		logger: logger.With("component", "redisbus"),
	}
}

// Publish sends msg as JSON. Redis pub/sub has no persistence: a message published
// while nobody listens is lost.
func (b *Bus) Publish(ctx context.Context, topic string, msg ports.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msg.Name, err)
	}
	return b.client.Publish(ctx, b.channel(topic), payload).Err()
}

// Subscribe returns once Redis has confirmed the subscription.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan ports.Message, error) {
	pubsub := b.client.Subscribe(ctx, b.channel(topic))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan ports.Message, subscriberBuffer)
	go b.forward(ctx, topic, pubsub, out)
	return out, nil
}

func (b *Bus) forward(ctx context.Context, topic string, pubsub *redis.PubSub, out chan<- ports.Message) {
	defer close(out)
	defer func() {
		_ = pubsub.Close()
	}()

	in := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-in:
			if !ok {
				return
			}

			var msg ports.Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				b.logger.Warn("Skipping malformed message", "topic", topic, "error", err)
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (b *Bus) channel(topic string) string {
	if b.prefix == "" {
		return topic
	}
	return b.prefix + ":" + topic
}
