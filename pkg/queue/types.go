// Package queue provides the worker pool that claims pending runs and drives
// them through the engine until they pause or finish.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/run"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor drives one claim of a run.
//
// A drive ends at the next pause (HITL gate or pending callback) or at a
// terminal state. The executor writes checkpoints progressively during the
// drive; the worker only handles claiming, heartbeat and the terminal row
// update.
type RunExecutor interface {
	Execute(ctx context.Context, r *ent.Run) *ExecutionResult
}

// ExecutionResult is lightweight, just the state to write back to the run
// row. All intermediate state was already checkpointed by the executor
// during the drive.
type ExecutionResult struct {
	Status      run.Status     // running is never returned; paused, completed or error
	ActiveSkill string         // skill the run paused on or last executed
	LastError   map[string]any // structured failure record (if error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRequeued  int            `json:"orphans_requeued"`
	CallbacksExpired int            `json:"callbacks_expired"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"` // "idle" or "working"
	CurrentThreadID string    `json:"current_thread_id,omitempty"`
	RunsProcessed   int       `json:"runs_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
