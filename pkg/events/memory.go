package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryBus is an in-process Bus. Handlers run synchronously on the
// publisher's goroutine, which keeps test assertions deterministic.
type MemoryBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler // channel → id → handler
}

// NewMemoryBus creates an empty in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string]map[int]Handler)}
}

// Publish implements Bus.
func (b *MemoryBus) Publish(ctx context.Context, channel string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshaling event for channel %s: %w", channel, err)
	}
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[channel]))
	for _, h := range b.subs[channel] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()
	for _, h := range handlers {
		h(ctx, payload)
	}
	return nil
}

// Subscribe implements Bus.
func (b *MemoryBus) Subscribe(ctx context.Context, channel string, handler Handler) (func(), error) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]Handler)
	}
	b.subs[channel][id] = handler
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs[channel], id)
		b.mu.Unlock()
	}
	stop := context.AfterFunc(ctx, cancel)
	return func() { stop(); cancel() }, nil
}
