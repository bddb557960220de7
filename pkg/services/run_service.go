package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/models"
)

// historyTailLen bounds the history slice returned by status queries.
const historyTailLen = 10

// RunService manages the run lifecycle: creation, listing, resume, cancel
// and the claim/heartbeat protocol the worker pool drives runs through.
type RunService struct {
	client      *ent.Client
	checkpoints checkpoint.Store
	bus         events.Bus
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, checkpoints checkpoint.Store, bus events.Bus) *RunService {
	return &RunService{client: client, checkpoints: checkpoints, bus: bus}
}

// CreateRun creates a run in pending status. When req.AckKey is set and a run
// with that key already exists, the existing run is returned unchanged: run
// submission is idempotent per ack key.
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.SOP == "" {
		return nil, NewValidationError("sop", "required")
	}
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if req.AckKey != "" {
		existing, err := s.client.Run.Query().
			Where(run.AckKeyEQ(req.AckKey)).
			Only(ctx)
		if err == nil {
			return existing, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check ack key: %w", err)
		}
	}

	builder := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetSop(req.SOP).
		SetOwnerID(req.OwnerID).
		SetWorkspaceID(req.WorkspaceID).
		SetStatus(run.StatusPending)

	if req.RunName != "" {
		builder.SetRunName(req.RunName)
	}
	if req.InitialData != nil {
		builder.SetInitialData(req.InitialData)
	}
	if req.LLMModel != "" {
		builder.SetLlmModel(req.LLMModel)
	}
	if req.AckKey != "" {
		builder.SetAckKey(req.AckKey)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Ack key raced with a concurrent submit; return the winner.
			if req.AckKey != "" {
				existing, qerr := s.client.Run.Query().Where(run.AckKeyEQ(req.AckKey)).Only(ctx)
				if qerr == nil {
					return existing, nil
				}
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return created, nil
}

// GetRun retrieves a run by thread ID.
func (s *RunService) GetRun(ctx context.Context, threadID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().Where(run.IDEQ(threadID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns lists runs with filtering and pagination. Search matches the SOP
// text and run name via the GIN full-text indexes.
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.Run.Query()

	if filters.OwnerID != "" {
		query = query.Where(run.OwnerIDEQ(filters.OwnerID))
	}
	if filters.WorkspaceID != "" {
		query = query.Where(run.WorkspaceIDEQ(filters.WorkspaceID))
	}
	if filters.Status != "" {
		query = query.Where(run.StatusEQ(run.Status(filters.Status)))
	}
	if filters.CreatedAt != nil {
		query = query.Where(run.CreatedAtGTE(*filters.CreatedAt))
	}
	if filters.Search != "" {
		search := filters.Search
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', sop) @@ plainto_tsquery($1)", search),
				sql.ExprP("to_tsvector('english', COALESCE(run_name, '')) @@ plainto_tsquery($2)", search),
			))
		})
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Status assembles the live run view from the run row and its latest
// checkpoint.
func (s *RunService) Status(ctx context.Context, threadID string) (*models.RunStatus, error) {
	r, err := s.GetRun(ctx, threadID)
	if err != nil {
		return nil, err
	}

	status := &models.RunStatus{
		ThreadID:    r.ID,
		Status:      string(r.Status),
		LastError:   r.LastError,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
	if r.RunName != nil {
		status.RunName = *r.RunName
	}
	if r.ActiveSkill != nil {
		status.ActiveSkill = *r.ActiveSkill
	}

	cp, err := s.checkpoints.Latest(ctx, threadID)
	if err != nil {
		if errors.Is(err, checkpoint.ErrNotFound) {
			return status, nil // not claimed yet, no checkpoints
		}
		return nil, fmt.Errorf("failed to load latest checkpoint: %w", err)
	}
	status.ActiveSkill = cp.ActiveSkill
	status.HistoryTail = historyTail(cp.ChannelValues, historyTailLen)
	return status, nil
}

// Resume delivers a human approval to a paused run and requeues it. The
// payload rides the run row so any worker replica can pick the run up.
func (s *RunService) Resume(ctx context.Context, threadID string, req models.ResumeRunRequest) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload := req.Approval
	if payload == nil {
		payload = map[string]any{}
	}

	count, err := s.client.Run.Update().
		Where(run.IDEQ(threadID), run.StatusEQ(run.StatusPaused)).
		SetResumePayload(payload).
		SetStatus(run.StatusPending).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to resume run: %w", err)
	}
	if count == 0 {
		if _, gerr := s.GetRun(writeCtx, threadID); gerr != nil {
			return gerr
		}
		return fmt.Errorf("%w: run is not paused", ErrInvalidState)
	}
	return nil
}

// Cancel stops a run. Pending and paused runs are failed directly; for a
// running run a control signal is published and the driving worker fails it
// through the engine so a terminal checkpoint is written.
func (s *RunService) Cancel(ctx context.Context, threadID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := s.GetRun(writeCtx, threadID)
	if err != nil {
		return err
	}

	switch r.Status {
	case run.StatusCompleted, run.StatusError:
		return fmt.Errorf("%w: run already finished", ErrInvalidState)
	case run.StatusRunning:
		if err := s.bus.Publish(ctx, events.ChannelRunControl, events.ControlEvent{
			ThreadID: threadID,
			Action:   events.ControlActionCancel,
		}); err != nil {
			return fmt.Errorf("failed to publish cancel signal: %w", err)
		}
		return nil
	default:
		count, err := s.client.Run.Update().
			Where(run.IDEQ(threadID), run.StatusIn(run.StatusPending, run.StatusPaused)).
			SetStatus(run.StatusError).
			SetLastError(map[string]any{"kind": "cancelled", "message": "cancelled before execution"}).
			SetCompletedAt(time.Now()).
			ClearPodID().
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to cancel run: %w", err)
		}
		if count == 0 {
			// Claimed between the read and the update; signal the worker.
			return s.bus.Publish(ctx, events.ChannelRunControl, events.ControlEvent{
				ThreadID: threadID,
				Action:   events.ControlActionCancel,
			})
		}
		return nil
	}
}

// Rerun forks a run into a fresh thread linked through parent_thread_id.
// Fields set in req replace the parent's sop, initial data or model
// (edit-rerun); unset fields are inherited.
func (s *RunService) Rerun(ctx context.Context, threadID string, req models.RerunRequest) (*ent.Run, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	parent, err := s.GetRun(writeCtx, threadID)
	if err != nil {
		return nil, err
	}

	sop := parent.Sop
	if req.SOP != "" {
		sop = req.SOP
	}
	initialData := parent.InitialData
	if req.InitialData != nil {
		initialData = req.InitialData
	}

	builder := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetSop(sop).
		SetOwnerID(parent.OwnerID).
		SetWorkspaceID(parent.WorkspaceID).
		SetStatus(run.StatusPending).
		SetParentThreadID(parent.ID)
	if initialData != nil {
		builder.SetInitialData(initialData)
	}
	if parent.RunName != nil {
		builder.SetRunName(*parent.RunName)
	}
	switch {
	case req.LLMModel != "":
		builder.SetLlmModel(req.LLMModel)
	case parent.LlmModel != nil:
		builder.SetLlmModel(*parent.LlmModel)
	}

	forked, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to fork run: %w", err)
	}
	return forked, nil
}

// ClaimNextPendingRun atomically claims the oldest pending run for podID.
// Returns (nil, nil) when no pending run exists or the claim raced.
func (s *RunService) ClaimNextPendingRun(ctx context.Context, podID string) (*ent.Run, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	candidate, err := tx.Run.Query().
		Where(run.StatusEQ(run.StatusPending)).
		Order(ent.Asc(run.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // nothing pending
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	update := tx.Run.Update().
		Where(run.IDEQ(candidate.ID), run.StatusEQ(run.StatusPending)).
		SetStatus(run.StatusRunning).
		SetPodID(podID).
		SetLastHeartbeatAt(now)
	if candidate.StartedAt == nil {
		update.SetStartedAt(now)
	}
	count, err := update.Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}
	if count == 0 {
		return nil, nil // another replica won
	}

	claimed, err := tx.Run.Get(claimCtx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Heartbeat refreshes the claim of a running run. Returns ErrNotFound when
// the run is no longer held by podID, telling the worker to abandon it.
func (s *RunService) Heartbeat(ctx context.Context, threadID, podID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(run.IDEQ(threadID), run.PodIDEQ(podID), run.StatusEQ(run.StatusRunning)).
		SetLastHeartbeatAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordOutcome persists the result of one engine drive and clears the
// payloads that were delivered into it.
func (s *RunService) RecordOutcome(ctx context.Context, threadID, status, activeSkill string, lastError map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Run.UpdateOneID(threadID).
		SetStatus(run.Status(status)).
		ClearResumePayload().
		ClearCallbackPayload().
		ClearPodID()
	if activeSkill != "" {
		update.SetActiveSkill(activeSkill)
	} else {
		update.ClearActiveSkill()
	}
	if lastError != nil {
		update.SetLastError(lastError)
	}
	if status == "completed" || status == "error" {
		update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record run outcome: %w", err)
	}
	return nil
}

// RequeueOrphanedRuns flips running runs whose heartbeat went stale back to
// pending so a healthy replica can reclaim them. Returns how many were
// requeued.
func (s *RunService) RequeueOrphanedRuns(ctx context.Context, heartbeatTimeout time.Duration) (int, error) {
	threshold := time.Now().Add(-heartbeatTimeout)

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.LastHeartbeatAtNotNil(),
			run.LastHeartbeatAtLT(threshold),
		).
		SetStatus(run.StatusPending).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue orphaned runs: %w", err)
	}
	return count, nil
}

// RequeuePodRuns flips runs still claimed by podID back to pending. Called
// at startup so runs orphaned by this pod's previous incarnation recover
// immediately instead of waiting out the heartbeat timeout.
func (s *RunService) RequeuePodRuns(ctx context.Context, podID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(run.StatusEQ(run.StatusRunning), run.PodIDEQ(podID)).
		SetStatus(run.StatusPending).
		ClearPodID().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue runs for pod %s: %w", podID, err)
	}
	return count, nil
}

// historyTail extracts the last n history lines from checkpoint channel
// values, tolerating the []any shape JSON round-trips produce.
func historyTail(channelValues map[string]any, n int) []string {
	raw, ok := channelValues["history"]
	if !ok {
		return nil
	}
	var lines []string
	switch h := raw.(type) {
	case []string:
		lines = h
	case []any:
		for _, entry := range h {
			if s, ok := entry.(string); ok {
				lines = append(lines, s)
			}
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
