package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// sweepState tracks background sweep metrics (thread-safe).
type sweepState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRequeued  int
	callbacksExpired int
}

// runOrphanSweep periodically requeues running runs whose heartbeat went
// stale. All pods run this independently; the conditional update makes the
// operation idempotent. Requeued runs resume from their latest checkpoint on
// the next claim, so a pod crash costs at most one skill re-execution.
func (p *WorkerPool) runOrphanSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			requeued, err := p.runs.RequeueOrphanedRuns(ctx, p.config.OrphanThreshold)
			if err != nil {
				slog.Error("Orphan sweep failed", "error", err)
				continue
			}
			if requeued > 0 {
				slog.Warn("Requeued orphaned runs", "count", requeued)
			}
			p.sweeps.mu.Lock()
			p.sweeps.lastOrphanScan = time.Now()
			p.sweeps.orphansRequeued += requeued
			p.sweeps.mu.Unlock()
		}
	}
}

// runCallbackSweep periodically requeues paused runs whose callback deadline
// expired. The engine surfaces the timeout as a run failure on the next
// claim; the sweep only makes the run claimable again.
func (p *WorkerPool) runCallbackSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.CallbackSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			expired, err := p.callbacks.RequeueExpiredCallbacks(ctx)
			if err != nil {
				slog.Error("Callback sweep failed", "error", err)
				continue
			}
			if expired > 0 {
				slog.Info("Requeued runs with expired callbacks", "count", expired)
			}
			p.sweeps.mu.Lock()
			p.sweeps.callbacksExpired += expired
			p.sweeps.mu.Unlock()
		}
	}
}
