package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/services"
	testdb "github.com/weftworks/weft/test/database"
)

func newPool(t *testing.T, client *ent.Client, executor RunExecutor, bus events.Bus) (*WorkerPool, *services.RunService) {
	t.Helper()
	runs := services.NewRunService(client, checkpoint.NewMemoryStore(), bus)
	callbacks := services.NewCallbackService(client)
	pool := NewWorkerPool("pod-1", client, testQueueConfig(), executor, runs, callbacks, bus)
	return pool, runs
}

func TestPoolCancelsRunViaControlChannel(t *testing.T) {
	client := testdb.NewTestClient(t)
	bus := events.NewMemoryBus()

	executor := &stubExecutor{block: true, started: make(chan string, 1)}
	pool, runs := newPool(t, client.Client, executor, bus)
	created := createPendingRun(t, runs)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	select {
	case <-executor.started:
	case <-time.After(5 * time.Second):
		t.Fatal("run was never claimed")
	}

	require.NoError(t, bus.Publish(context.Background(), events.ChannelRunControl, events.ControlEvent{
		ThreadID: created.ID,
		Action:   events.ControlActionCancel,
	}))

	require.Eventually(t, func() bool {
		r, err := client.Client.Run.Get(context.Background(), created.ID)
		return err == nil && r.Status == run.StatusError
	}, 5*time.Second, 25*time.Millisecond)

	r, err := client.Client.Run.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", r.LastError["kind"])
}

func TestPoolRequeuesOwnRunsOnStartup(t *testing.T) {
	client := testdb.NewTestClient(t)
	bus := events.NewMemoryBus()

	executor := &stubExecutor{result: &ExecutionResult{Status: run.StatusCompleted}}
	pool, runs := newPool(t, client.Client, executor, bus)

	// Simulate a run left behind by this pod's previous incarnation.
	created := createPendingRun(t, runs)
	_, err := client.Client.Run.UpdateOneID(created.ID).
		SetStatus(run.StatusRunning).
		SetPodID("pod-1").
		SetLastHeartbeatAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		r, err := client.Client.Run.Get(context.Background(), created.ID)
		return err == nil && r.Status == run.StatusCompleted
	}, 5*time.Second, 25*time.Millisecond)
}

func TestPoolHealth(t *testing.T) {
	client := testdb.NewTestClient(t)
	bus := events.NewMemoryBus()

	executor := &stubExecutor{result: &ExecutionResult{Status: run.StatusCompleted}}
	pool, runs := newPool(t, client.Client, executor, bus)
	createPendingRun(t, runs)

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		health := pool.Health()
		return health.IsHealthy && health.QueueDepth == 0
	}, 5*time.Second, 25*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 1)
	assert.Equal(t, 1, health.MaxConcurrent)

	// Duplicate Start is a no-op.
	require.NoError(t, pool.Start(context.Background()))
	assert.Equal(t, 1, pool.Health().TotalWorkers)
}

func TestPoolCancelRunUnknownThread(t *testing.T) {
	client := testdb.NewTestClient(t)
	pool, _ := newPool(t, client.Client, &stubExecutor{}, events.NewMemoryBus())
	assert.False(t, pool.CancelRun("does-not-exist"))
}
