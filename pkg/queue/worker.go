package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and drives runs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor RunExecutor
	runs     *services.RunService
	pool     RunRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentThreadID string
	runsProcessed   int
	lastActivity    time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(threadID string, cancel context.CancelFunc)
	UnregisterRun(threadID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, runs *services.RunService, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		runs:         runs,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          string(w.status),
		CurrentThreadID: w.currentThreadID,
		RunsProcessed:   w.runsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error driving run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and drives it once.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Run.Query().
		Where(run.StatusEQ(run.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next run
	r, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("thread_id", r.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, r.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create drive context with timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Register cancel function for bus-triggered cancellation
	w.pool.RegisterRun(r.ID, cancelRun)
	defer w.pool.UnregisterRun(r.ID)

	// 5. Start heartbeat. Losing the claim (orphan requeue took the run)
	//    cancels the drive so two replicas never drive the same thread.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, r.ID, cancelRun)

	// 6. Drive the run through the engine
	result := w.executor.Execute(runCtx, r)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:    run.StatusError,
				LastError: map[string]any{"kind": "timeout", "message": fmt.Sprintf("run timed out after %v", w.config.RunTimeout)},
			}
		case errors.Is(runCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status:    run.StatusError,
				LastError: map[string]any{"kind": "cancelled", "message": "run cancelled"},
			}
		default:
			result = &ExecutionResult{
				Status:    run.StatusError,
				LastError: map[string]any{"kind": "internal", "message": "executor returned nil result"},
			}
		}
	}

	// 7. Stop heartbeat before the terminal write
	cancelHeartbeat()

	// 8. Record the outcome (use background context, drive ctx may be cancelled)
	if err := w.runs.RecordOutcome(context.Background(), r.ID, string(result.Status), result.ActiveSkill, result.LastError); err != nil {
		log.Error("Failed to record run outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run drive complete", "status", result.Status)
	return nil
}

// claimNextRun atomically claims the next pending run using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.Run, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	r, err := tx.Run.Query().
		Where(run.StatusEQ(run.StatusPending)).
		Order(ent.Asc(run.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	// Claim: set running, pod_id, heartbeat. started_at is only stamped on
	// the first claim; resumed runs keep their original start time.
	now := time.Now()
	update := r.Update().
		SetStatus(run.StatusRunning).
		SetPodID(w.podID).
		SetLastHeartbeatAt(now)
	if r.StartedAt == nil {
		update.SetStartedAt(now)
	}
	r, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return r, nil
}

// runHeartbeat periodically refreshes the claim for orphan detection.
// When the claim is gone the drive is cancelled.
func (w *Worker) runHeartbeat(ctx context.Context, threadID string, cancelRun context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.runs.Heartbeat(ctx, threadID, w.podID)
			if err == nil {
				continue
			}
			if errors.Is(err, services.ErrNotFound) {
				slog.Warn("Run claim lost, abandoning drive", "thread_id", threadID)
				cancelRun()
				return
			}
			slog.Warn("Heartbeat update failed", "thread_id", threadID, "error", err)
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, threadID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentThreadID = threadID
	w.lastActivity = time.Now()
}
