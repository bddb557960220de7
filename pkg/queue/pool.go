package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/services"
)

// WorkerPool manages a pool of queue workers plus the background sweeps
// (orphan requeue, callback deadline expiry) and the control channel
// subscription for cross-replica cancellation.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  RunExecutor
	runs      *services.RunService
	callbacks *services.CallbackService
	bus       events.Bus
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Run cancel registry: thread_id → cancel function
	activeRuns  map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool
	unsubscribe func()

	// Sweep state
	sweeps sweepState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, runs *services.RunService, callbacks *services.CallbackService, bus events.Bus) *WorkerPool {
	return &WorkerPool{
		podID:      podID,
		client:     client,
		config:     cfg,
		executor:   executor,
		runs:       runs,
		callbacks:  callbacks,
		bus:        bus,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}
}

// Start requeues runs orphaned by this pod's previous incarnation, spawns
// the workers and background sweeps, and subscribes to the control channel.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	// Runs still claimed by this pod were orphaned by a crash or restart.
	// Requeue them now instead of waiting out the heartbeat timeout.
	if requeued, err := p.runs.RequeuePodRuns(ctx, p.podID); err != nil {
		slog.Error("Startup requeue failed", "pod_id", p.podID, "error", err)
	} else if requeued > 0 {
		slog.Warn("Requeued runs from previous pod incarnation", "pod_id", p.podID, "count", requeued)
	}

	// Cancellation signals arrive on the control channel from any replica;
	// only the pod driving the run acts on them.
	unsubscribe, err := p.bus.Subscribe(ctx, events.ChannelRunControl, p.handleControlEvent)
	if err != nil {
		return fmt.Errorf("failed to subscribe to control channel: %w", err)
	}
	p.unsubscribe = unsubscribe

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p.runs, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.runOrphanSweep(ctx)
	}()
	go func() {
		defer p.wg.Done()
		p.runCallbackSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current drives before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	if p.unsubscribe != nil {
		p.unsubscribe()
	}

	// Log active runs
	active := p.getActiveThreadIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active runs to finish their drive",
			"count", len(active),
			"thread_ids", active)
	}

	// Signal all workers to stop (they finish current drives)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal sweeps to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// handleControlEvent dispatches control channel messages.
func (p *WorkerPool) handleControlEvent(_ context.Context, payload []byte) {
	var evt events.ControlEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		slog.Warn("Ignoring malformed control event", "error", err)
		return
	}
	if evt.Action != events.ControlActionCancel {
		return
	}
	if p.CancelRun(evt.ThreadID) {
		slog.Info("Run cancelled via control channel", "thread_id", evt.ThreadID, "pod_id", p.podID)
	}
}

// RegisterRun stores a cancel function for bus-triggered cancellation.
func (p *WorkerPool) RegisterRun(threadID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[threadID] = cancel
}

// UnregisterRun removes the cancel function when the drive ends.
func (p *WorkerPool) UnregisterRun(threadID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, threadID)
}

// CancelRun triggers context cancellation for a run driven on this pod.
// Returns true if the run was found and cancelled on this pod.
func (p *WorkerPool) CancelRun(threadID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRuns[threadID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Run.Query().
		Where(run.StatusEQ(run.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeRuns, errA := p.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active runs for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeRuns <= p.config.MaxConcurrentRuns && dbHealthy

	p.sweeps.mu.Lock()
	lastOrphanScan := p.sweeps.lastOrphanScan
	orphansRequeued := p.sweeps.orphansRequeued
	callbacksExpired := p.sweeps.callbacksExpired
	p.sweeps.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active runs query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRuns:       activeRuns,
		MaxConcurrent:    p.config.MaxConcurrentRuns,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRequeued:  orphansRequeued,
		CallbacksExpired: callbacksExpired,
	}
}

// getActiveThreadIDs returns IDs of currently driven runs (for logging).
func (p *WorkerPool) getActiveThreadIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	threads := make([]string, 0, len(p.activeRuns))
	for id := range p.activeRuns {
		threads = append(threads, id)
	}
	return threads
}
