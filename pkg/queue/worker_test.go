package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/services"
	testdb "github.com/weftworks/weft/test/database"
)

// stubExecutor is a controllable RunExecutor for worker tests.
type stubExecutor struct {
	mu      sync.Mutex
	result  *ExecutionResult
	block   bool // wait for ctx cancellation, then return nil
	started chan string
	driven  []string
}

func (s *stubExecutor) Execute(ctx context.Context, r *ent.Run) *ExecutionResult {
	s.mu.Lock()
	s.driven = append(s.driven, r.ID)
	s.mu.Unlock()
	if s.started != nil {
		s.started <- r.ID
	}
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.result
}

func (s *stubExecutor) drivenRuns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.driven...)
}

// noopRegistry satisfies RunRegistry for single-worker tests.
type noopRegistry struct{}

func (noopRegistry) RegisterRun(string, context.CancelFunc) {}
func (noopRegistry) UnregisterRun(string)                   {}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.MaxConcurrentRuns = 1
	cfg.PollInterval = 25 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.HeartbeatInterval = 50 * time.Millisecond
	cfg.RunTimeout = 5 * time.Second
	return cfg
}

func newRunService(t *testing.T, client *ent.Client) *services.RunService {
	t.Helper()
	return services.NewRunService(client, checkpoint.NewMemoryStore(), events.NewMemoryBus())
}

func createPendingRun(t *testing.T, runs *services.RunService) *ent.Run {
	t.Helper()
	created, err := runs.CreateRun(context.Background(), models.CreateRunRequest{
		SOP:         "Summarize the incident and notify the owner.",
		OwnerID:     "u1",
		WorkspaceID: "ws1",
	})
	require.NoError(t, err)
	return created
}

func TestWorkerDrivesPendingRunToCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := newRunService(t, client.Client)
	created := createPendingRun(t, runs)

	executor := &stubExecutor{result: &ExecutionResult{Status: run.StatusCompleted, ActiveSkill: "summarize"}}
	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), executor, runs, noopRegistry{})
	worker.Start(context.Background())
	defer worker.Stop()

	require.Eventually(t, func() bool {
		r, err := client.Client.Run.Get(context.Background(), created.ID)
		return err == nil && r.Status == run.StatusCompleted
	}, 5*time.Second, 25*time.Millisecond)

	r, err := client.Client.Run.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, r.PodID, "claim released on terminal status")
	assert.NotNil(t, r.StartedAt)
	assert.NotNil(t, r.CompletedAt)
	require.NotNil(t, r.ActiveSkill)
	assert.Equal(t, "summarize", *r.ActiveSkill)
	assert.Equal(t, []string{created.ID}, executor.drivenRuns())
}

func TestWorkerRecordsPausedDrive(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := newRunService(t, client.Client)
	created := createPendingRun(t, runs)

	executor := &stubExecutor{result: &ExecutionResult{Status: run.StatusPaused, ActiveSkill: "approve_change"}}
	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), executor, runs, noopRegistry{})
	worker.Start(context.Background())
	defer worker.Stop()

	require.Eventually(t, func() bool {
		r, err := client.Client.Run.Get(context.Background(), created.ID)
		return err == nil && r.Status == run.StatusPaused
	}, 5*time.Second, 25*time.Millisecond)

	r, err := client.Client.Run.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, r.PodID, "paused runs are not held by a pod")
	assert.Nil(t, r.CompletedAt)
	require.NotNil(t, r.ActiveSkill)
	assert.Equal(t, "approve_change", *r.ActiveSkill)
}

func TestWorkerSynthesizesFailureOnNilResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := newRunService(t, client.Client)
	created := createPendingRun(t, runs)

	cfg := testQueueConfig()
	cfg.RunTimeout = 200 * time.Millisecond

	executor := &stubExecutor{block: true}
	worker := NewWorker("w-0", "pod-1", client.Client, cfg, executor, runs, noopRegistry{})
	worker.Start(context.Background())
	defer worker.Stop()

	require.Eventually(t, func() bool {
		r, err := client.Client.Run.Get(context.Background(), created.ID)
		return err == nil && r.Status == run.StatusError
	}, 5*time.Second, 25*time.Millisecond)

	r, err := client.Client.Run.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "timeout", r.LastError["kind"])
}

func TestClaimNextRunNoneAvailable(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := newRunService(t, client.Client)

	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), &stubExecutor{}, runs, noopRegistry{})
	_, err := worker.claimNextRun(context.Background())
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
}

func TestClaimNextRunIsFIFO(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := newRunService(t, client.Client)

	first := createPendingRun(t, runs)
	_, err := client.Client.Run.UpdateOneID(first.ID).
		SetCreatedAt(time.Now().Add(-time.Minute)).
		Save(context.Background())
	require.NoError(t, err)
	createPendingRun(t, runs)

	worker := NewWorker("w-0", "pod-1", client.Client, testQueueConfig(), &stubExecutor{}, runs, noopRegistry{})
	claimed, err := worker.claimNextRun(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, run.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)
	assert.NotNil(t, claimed.LastHeartbeatAt)
}
