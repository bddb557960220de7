package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisBus is the Redis pub/sub Bus backend. One goroutine per subscription;
// go-redis handles reconnects and re-subscription internally.
type RedisBus struct {
	rdb    *redis.Client
	logger *slog.Logger

	mu   sync.Mutex
	subs map[*redis.PubSub]struct{}
}

// NewRedisBus creates the bus over an existing Redis client.
func NewRedisBus(rdb *redis.Client, logger *slog.Logger) *RedisBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisBus{rdb: rdb, logger: logger, subs: make(map[*redis.PubSub]struct{})}
}

// Publish implements Bus.
func (b *RedisBus) Publish(ctx context.Context, channel string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshaling event for channel %s: %w", channel, err)
	}
	if err := b.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish to %s failed: %w", channel, err)
	}
	return nil
}

// Subscribe implements Bus.
func (b *RedisBus) Subscribe(ctx context.Context, channel string, handler Handler) (func(), error) {
	sub := b.rdb.Subscribe(ctx, channel)
	// Confirm the subscription before returning so callers can publish
	// immediately after.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe to %s failed: %w", channel, err)
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		for msg := range sub.Channel() {
			handler(ctx, []byte(msg.Payload))
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, sub)
			b.mu.Unlock()
			if err := sub.Close(); err != nil {
				b.logger.Warn("closing redis subscription failed", "channel", channel, "error", err)
			}
		})
	}
	stop := context.AfterFunc(ctx, cancel)
	return func() { stop(); cancel() }, nil
}

// Close tears down all live subscriptions. The Redis client itself is owned
// by the caller.
func (b *RedisBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		_ = sub.Close()
	}
	b.subs = make(map[*redis.PubSub]struct{})
}
