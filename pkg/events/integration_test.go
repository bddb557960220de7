package events

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/weftworks/weft/test/database"
)

// collector accumulates payloads delivered to a subscription.
type collector struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (c *collector) handler(_ context.Context, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	c.payloads = append(c.payloads, cp)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.payloads)
}

func (c *collector) last(t *testing.T) []byte {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.payloads)
	return c.payloads[len(c.payloads)-1]
}

func startBus(t *testing.T, shared *testdb.SharedTestDB) *PostgresBus {
	t.Helper()
	client := shared.NewClient(t)
	bus := NewPostgresBus(client.DB(), shared.ConnString(), nil)
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { bus.Stop(context.Background()) })
	return bus
}

func TestPostgresBusRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	shared := testdb.NewSharedTestDB(t)
	bus := startBus(t, shared)
	ctx := context.Background()

	var col collector
	cancel, err := bus.Subscribe(ctx, ChannelRunEvents, col.handler)
	require.NoError(t, err)
	defer cancel()

	ev := RunEvent{ThreadID: "t1", CheckpointID: "c1", TS: time.Now().UTC(),
		Metadata: Metadata{ActiveSkill: "triage", Status: "running"}}
	require.NoError(t, bus.Publish(ctx, ChannelRunEvents, ev))

	require.Eventually(t, func() bool { return col.count() == 1 }, 5*time.Second, 50*time.Millisecond)

	var got RunEvent
	require.NoError(t, json.Unmarshal(col.last(t), &got))
	assert.Equal(t, "t1", got.ThreadID)
	assert.Equal(t, "c1", got.CheckpointID)
	assert.Equal(t, "running", got.Metadata.Status)
}

func TestPostgresBusCrossReplicaDelivery(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	shared := testdb.NewSharedTestDB(t)
	publisherBus := startBus(t, shared)
	subscriberBus := startBus(t, shared)
	ctx := context.Background()

	var col collector
	cancel, err := subscriberBus.Subscribe(ctx, ThreadChannel("t9"), col.handler)
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, publisherBus.Publish(ctx, ThreadChannel("t9"),
		RunEvent{ThreadID: "t9", CheckpointID: "c1"}))

	require.Eventually(t, func() bool { return col.count() == 1 }, 5*time.Second, 50*time.Millisecond)
}

func TestPostgresBusTruncatesOversizedPayload(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	shared := testdb.NewSharedTestDB(t)
	bus := startBus(t, shared)
	ctx := context.Background()

	var col collector
	cancel, err := bus.Subscribe(ctx, ChannelRunEvents, col.handler)
	require.NoError(t, err)
	defer cancel()

	big := map[string]any{
		"thread_id":     "t1",
		"checkpoint_id": "c-big",
		"blob":          strings.Repeat("z", notifyPayloadLimit+1000),
	}
	require.NoError(t, bus.Publish(ctx, ChannelRunEvents, big))

	require.Eventually(t, func() bool { return col.count() == 1 }, 5*time.Second, 50*time.Millisecond)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(col.last(t), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, "c-big", envelope["checkpoint_id"])
	assert.NotContains(t, envelope, "blob")
}

func TestPostgresBusUnsubscribeStopsDelivery(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	shared := testdb.NewSharedTestDB(t)
	bus := startBus(t, shared)
	ctx := context.Background()

	var col collector
	cancel, err := bus.Subscribe(ctx, "ephemeral", col.handler)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, "ephemeral", RunEvent{ThreadID: "t1"}))
	require.Eventually(t, func() bool { return col.count() == 1 }, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, bus.Publish(ctx, "ephemeral", RunEvent{ThreadID: "t1"}))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, col.count())
}
