package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/callbackrecord"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/engine"
	"github.com/weftworks/weft/pkg/models"
)

// CallbackService manages correlation tokens for async REST skills. Each
// token is consumable exactly once; the conditional update on consumed_at is
// the idempotency barrier.
type CallbackService struct {
	client *ent.Client
}

// NewCallbackService creates a new CallbackService.
func NewCallbackService(client *ent.Client) *CallbackService {
	return &CallbackService{client: client}
}

var _ engine.CallbackRecorder = (*CallbackService)(nil)

// RecordCallback persists a pending callback before its dispatch goes out,
// so a fast callback can never race an unrecorded token.
func (s *CallbackService) RecordCallback(ctx context.Context, rec *engine.CallbackRecord) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.CallbackRecord.Create().
		SetID(uuid.New().String()).
		SetCorrelationToken(rec.Token).
		SetThreadID(rec.ThreadID).
		SetSkillName(rec.SkillName).
		SetDeadlineTs(rec.Deadline).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to record callback: %w", err)
	}
	return nil
}

// Consume consumes a correlation token and requeues its paused run with the
// delivered payload. A token that was already consumed returns ErrConflict;
// an unknown token returns ErrNotFound. Late callbacks for runs that moved
// on are consumed and dropped: the engine decides what a delivered payload
// means, Consume only guarantees exactly-once delivery.
func (s *CallbackService) Consume(ctx context.Context, token string, req models.CallbackRequest) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.CallbackRecord.Update().
		Where(
			callbackrecord.CorrelationTokenEQ(token),
			callbackrecord.ConsumedAtIsNil(),
		).
		SetConsumedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to consume callback token: %w", err)
	}
	if count == 0 {
		exists, err := tx.CallbackRecord.Query().
			Where(callbackrecord.CorrelationTokenEQ(token)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check callback token: %w", err)
		}
		if exists {
			return ErrConflict
		}
		return ErrNotFound
	}

	rec, err := tx.CallbackRecord.Query().
		Where(callbackrecord.CorrelationTokenEQ(token)).
		Only(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to load callback record: %w", err)
	}

	payload := map[string]any{"token": token}
	if req.Outputs != nil {
		payload["outputs"] = req.Outputs
	}
	if req.Error != "" {
		payload["error"] = req.Error
	}

	// Requeue the run with the payload. The status condition tolerates runs
	// that already moved on; the payload still lands for audit.
	if err := tx.Run.UpdateOneID(rec.ThreadID).
		SetCallbackPayload(payload).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to store callback payload: %w", err)
	}
	if _, err := tx.Run.Update().
		Where(run.IDEQ(rec.ThreadID), run.StatusEQ(run.StatusPaused)).
		SetStatus(run.StatusPending).
		ClearPodID().
		Save(writeCtx); err != nil {
		return fmt.Errorf("failed to requeue run for callback: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit callback consumption: %w", err)
	}
	return nil
}

// RequeueExpiredCallbacks requeues paused runs whose unconsumed callback
// deadline has passed. The engine surfaces the timeout as a run failure on
// the next claim; the sweep only makes the run claimable.
func (s *CallbackService) RequeueExpiredCallbacks(ctx context.Context) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	expired, err := s.client.CallbackRecord.Query().
		Where(
			callbackrecord.ConsumedAtIsNil(),
			callbackrecord.DeadlineTsLT(time.Now()),
		).
		All(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired callbacks: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	threadIDs := make([]string, 0, len(expired))
	for _, rec := range expired {
		threadIDs = append(threadIDs, rec.ThreadID)
	}

	count, err := s.client.Run.Update().
		Where(run.IDIn(threadIDs...), run.StatusEQ(run.StatusPaused)).
		SetStatus(run.StatusPending).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue expired-callback runs: %w", err)
	}

	// Mark the expired records consumed so the sweep does not reprocess
	// them. A late real callback now gets ErrConflict, matching the run
	// already having failed with a timeout.
	ids := make([]string, 0, len(expired))
	for _, rec := range expired {
		ids = append(ids, rec.ID)
	}
	if _, err := s.client.CallbackRecord.Update().
		Where(callbackrecord.IDIn(ids...), callbackrecord.ConsumedAtIsNil()).
		SetConsumedAt(time.Now()).
		Save(writeCtx); err != nil {
		return 0, fmt.Errorf("failed to mark expired callbacks consumed: %w", err)
	}

	return count, nil
}
