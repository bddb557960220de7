package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadChannel(t *testing.T) {
	assert.Equal(t, "run:abc-123", ThreadChannel("abc-123"))
}

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	var got []RunEvent
	cancel, err := bus.Subscribe(ctx, ChannelRunEvents, func(_ context.Context, payload []byte) {
		var ev RunEvent
		require.NoError(t, json.Unmarshal(payload, &ev))
		got = append(got, ev)
	})
	require.NoError(t, err)
	defer cancel()

	ev := RunEvent{ThreadID: "t1", CheckpointID: "c1", TS: time.Now().UTC(),
		Metadata: Metadata{ActiveSkill: "triage", Status: "running"}}
	require.NoError(t, bus.Publish(ctx, ChannelRunEvents, ev))
	require.NoError(t, bus.Publish(ctx, ThreadChannel("t1"), ev), "no subscriber is not an error")

	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ThreadID)
	assert.Equal(t, "triage", got[0].Metadata.ActiveSkill)
}

func TestMemoryBusUnsubscribe(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	count := 0
	cancel, err := bus.Subscribe(ctx, "ch", func(context.Context, []byte) { count++ })
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, "ch", RunEvent{ThreadID: "t1"}))
	cancel()
	require.NoError(t, bus.Publish(ctx, "ch", RunEvent{ThreadID: "t1"}))

	assert.Equal(t, 1, count)
}

func TestMemoryBusContextCancelUnsubscribes(t *testing.T) {
	bus := NewMemoryBus()
	subCtx, cancelCtx := context.WithCancel(context.Background())

	count := 0
	_, err := bus.Subscribe(subCtx, "ch", func(context.Context, []byte) { count++ })
	require.NoError(t, err)

	cancelCtx()
	// AfterFunc runs asynchronously; wait for the subscription to drop.
	require.Eventually(t, func() bool {
		bus.mu.RLock()
		defer bus.mu.RUnlock()
		return len(bus.subs["ch"]) == 0
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), "ch", RunEvent{}))
	assert.Equal(t, 0, count)
}

func TestTruncateIfNeededPassthrough(t *testing.T) {
	payload, err := json.Marshal(RunEvent{ThreadID: "t1", CheckpointID: "c1"})
	require.NoError(t, err)

	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), out)
}

func TestTruncateIfNeededEnvelope(t *testing.T) {
	big := map[string]any{
		"thread_id":     "t1",
		"checkpoint_id": "c1",
		"channel_values": map[string]any{
			"blob": strings.Repeat("x", notifyPayloadLimit),
		},
	}
	payload, err := json.Marshal(big)
	require.NoError(t, err)
	require.Greater(t, len(payload), notifyPayloadLimit)

	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), notifyPayloadLimit)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, "t1", envelope["thread_id"])
	assert.Equal(t, "c1", envelope["checkpoint_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "channel_values")
}
