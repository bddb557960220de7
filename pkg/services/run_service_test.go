package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/models"
	testdb "github.com/weftworks/weft/test/database"
)

func newRunService(t *testing.T) (*RunService, *checkpoint.MemoryStore) {
	client := testdb.NewTestClient(t)
	store := checkpoint.NewMemoryStore()
	return NewRunService(client.Client, store, events.NewMemoryBus()), store
}

func validCreateRequest() models.CreateRunRequest {
	return models.CreateRunRequest{
		SOP:         "Fetch the weekly numbers and summarize them",
		OwnerID:     "u1",
		WorkspaceID: "ws1",
	}
}

func TestRunService_CreateRun(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	t.Run("creates pending run", func(t *testing.T) {
		req := validCreateRequest()
		req.RunName = "weekly-report"
		req.InitialData = map[string]any{"region": "emea"}

		created, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, run.StatusPending, created.Status)
		assert.Equal(t, "weekly-report", *created.RunName)
		assert.Equal(t, "emea", created.InitialData["region"])
		assert.Nil(t, created.StartedAt)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*models.CreateRunRequest)
			wantErr string
		}{
			{"missing sop", func(r *models.CreateRunRequest) { r.SOP = "" }, "sop"},
			{"missing owner", func(r *models.CreateRunRequest) { r.OwnerID = "" }, "owner_id"},
			{"missing workspace", func(r *models.CreateRunRequest) { r.WorkspaceID = "" }, "workspace_id"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateRequest()
				tt.mutate(&req)
				_, err := service.CreateRun(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})

	t.Run("ack key makes submission idempotent", func(t *testing.T) {
		req := validCreateRequest()
		req.AckKey = uuid.New().String()

		first, err := service.CreateRun(ctx, req)
		require.NoError(t, err)

		second, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestRunService_ListRuns(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := validCreateRequest()
		if i == 2 {
			req.WorkspaceID = "ws2"
		}
		_, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
	}

	resp, err := service.ListRuns(ctx, models.RunFilters{WorkspaceID: "ws1"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Len(t, resp.Runs, 2)

	resp, err = service.ListRuns(ctx, models.RunFilters{WorkspaceID: "ws1", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Len(t, resp.Runs, 1)

	resp, err = service.ListRuns(ctx, models.RunFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
}

func TestRunService_Status(t *testing.T) {
	service, store := newRunService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("before any checkpoint", func(t *testing.T) {
		status, err := service.Status(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "pending", status.Status)
		assert.Empty(t, status.HistoryTail)
	})

	t.Run("with checkpoint", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &checkpoint.Checkpoint{
			ThreadID:    created.ID,
			ID:          uuid.New().String(),
			TS:          time.Now(),
			ActiveSkill: "fetch_numbers",
			Status:      "running",
			ChannelValues: map[string]any{
				"history": []any{"Run started", "Planner chose fetch_numbers"},
			},
		}))

		status, err := service.Status(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "fetch_numbers", status.ActiveSkill)
		assert.Equal(t, []string{"Run started", "Planner chose fetch_numbers"}, status.HistoryTail)
	})

	t.Run("unknown run", func(t *testing.T) {
		_, err := service.Status(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_ResumeRequiresPaused(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)

	err = service.Resume(ctx, created.ID, models.ResumeRunRequest{Approval: map[string]any{"approved": true}})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = service.client.Run.UpdateOneID(created.ID).SetStatus(run.StatusPaused).Save(ctx)
	require.NoError(t, err)

	err = service.Resume(ctx, created.ID, models.ResumeRunRequest{Approval: map[string]any{"approved": true}})
	require.NoError(t, err)

	resumed, err := service.GetRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, resumed.Status)
	assert.Equal(t, true, resumed.ResumePayload["approved"])
}

func TestRunService_ClaimAndHeartbeat(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)

	claimed, err := service.ClaimNextPendingRun(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, created.ID, claimed.ID)
	assert.Equal(t, run.StatusRunning, claimed.Status)
	assert.Equal(t, "pod-a", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)

	// Nothing left to claim.
	second, err := service.ClaimNextPendingRun(ctx, "pod-b")
	require.NoError(t, err)
	assert.Nil(t, second)

	require.NoError(t, service.Heartbeat(ctx, created.ID, "pod-a"))
	assert.ErrorIs(t, service.Heartbeat(ctx, created.ID, "pod-b"), ErrNotFound)
}

func TestRunService_RecordOutcome(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)
	_, err = service.ClaimNextPendingRun(ctx, "pod-a")
	require.NoError(t, err)

	err = service.RecordOutcome(ctx, created.ID, "error", "fetch_numbers",
		map[string]any{"kind": "executor_error", "message": "boom"})
	require.NoError(t, err)

	finished, err := service.GetRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusError, finished.Status)
	assert.Equal(t, "fetch_numbers", *finished.ActiveSkill)
	assert.Equal(t, "executor_error", finished.LastError["kind"])
	assert.NotNil(t, finished.CompletedAt)
	assert.Nil(t, finished.PodID)
}

func TestRunService_RequeueOrphanedRuns(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)
	_, err = service.ClaimNextPendingRun(ctx, "pod-dead")
	require.NoError(t, err)

	// Backdate the heartbeat past the timeout.
	_, err = service.client.Run.UpdateOneID(created.ID).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	count, err := service.RequeueOrphanedRuns(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	requeued, err := service.GetRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)
}

func TestRunService_Rerun(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.InitialData = map[string]any{"region": "emea"}
	parent, err := service.CreateRun(ctx, req)
	require.NoError(t, err)

	forked, err := service.Rerun(ctx, parent.ID, models.RerunRequest{})
	require.NoError(t, err)
	assert.NotEqual(t, parent.ID, forked.ID)
	assert.Equal(t, parent.ID, *forked.ParentThreadID)
	assert.Equal(t, parent.Sop, forked.Sop)
	assert.Equal(t, "emea", forked.InitialData["region"])
	assert.Equal(t, run.StatusPending, forked.Status)

	// Edit-rerun replaces the fields that are set.
	edited, err := service.Rerun(ctx, parent.ID, models.RerunRequest{
		SOP:         "Escalate to the on-call engineer.",
		InitialData: map[string]any{"region": "apac"},
		LLMModel:    "gpt-4o-mini",
	})
	require.NoError(t, err)
	assert.Equal(t, "Escalate to the on-call engineer.", edited.Sop)
	assert.Equal(t, "apac", edited.InitialData["region"])
	require.NotNil(t, edited.LlmModel)
	assert.Equal(t, "gpt-4o-mini", *edited.LlmModel)
}

func TestRunService_Cancel(t *testing.T) {
	service, _ := newRunService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, service.Cancel(ctx, created.ID))

	cancelled, err := service.GetRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusError, cancelled.Status)
	assert.Equal(t, "cancelled", cancelled.LastError["kind"])

	assert.ErrorIs(t, service.Cancel(ctx, created.ID), ErrInvalidState)
}
