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
	"github.com/weftworks/weft/pkg/engine"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/models"
	testdb "github.com/weftworks/weft/test/database"
)

// pausedRun creates a run in paused status with a recorded callback token.
func pausedRun(t *testing.T, runs *RunService, callbacks *CallbackService, deadline time.Time) (threadID, token string) {
	t.Helper()
	ctx := context.Background()

	created, err := runs.CreateRun(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = runs.client.Run.UpdateOneID(created.ID).SetStatus(run.StatusPaused).Save(ctx)
	require.NoError(t, err)

	token = uuid.New().String()
	require.NoError(t, callbacks.RecordCallback(ctx, &engine.CallbackRecord{
		ThreadID:  created.ID,
		Token:     token,
		SkillName: "notify_vendor",
		Deadline:  deadline,
	}))
	return created.ID, token
}

func TestCallbackService_ConsumeExactlyOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client, checkpoint.NewMemoryStore(), events.NewMemoryBus())
	callbacks := NewCallbackService(client.Client)
	ctx := context.Background()

	threadID, token := pausedRun(t, runs, callbacks, time.Now().Add(time.Hour))

	req := models.CallbackRequest{Outputs: map[string]any{"ticket_id": "T-42"}}
	require.NoError(t, callbacks.Consume(ctx, token, req))

	// The run is requeued with the payload.
	r, err := runs.GetRun(ctx, threadID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, r.Status)
	assert.Equal(t, token, r.CallbackPayload["token"])
	outputs, ok := r.CallbackPayload["outputs"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "T-42", outputs["ticket_id"])

	// Second delivery conflicts.
	assert.ErrorIs(t, callbacks.Consume(ctx, token, req), ErrConflict)
}

func TestCallbackService_ConsumeUnknownToken(t *testing.T) {
	client := testdb.NewTestClient(t)
	callbacks := NewCallbackService(client.Client)

	err := callbacks.Consume(context.Background(), uuid.New().String(), models.CallbackRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCallbackService_ConsumeWithError(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client, checkpoint.NewMemoryStore(), events.NewMemoryBus())
	callbacks := NewCallbackService(client.Client)
	ctx := context.Background()

	threadID, token := pausedRun(t, runs, callbacks, time.Now().Add(time.Hour))

	require.NoError(t, callbacks.Consume(ctx, token, models.CallbackRequest{Error: "vendor rejected the request"}))

	r, err := runs.GetRun(ctx, threadID)
	require.NoError(t, err)
	assert.Equal(t, "vendor rejected the request", r.CallbackPayload["error"])
	assert.Equal(t, run.StatusPending, r.Status)
}

func TestCallbackService_RequeueExpiredCallbacks(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client, checkpoint.NewMemoryStore(), events.NewMemoryBus())
	callbacks := NewCallbackService(client.Client)
	ctx := context.Background()

	expiredThread, expiredToken := pausedRun(t, runs, callbacks, time.Now().Add(-time.Minute))
	liveThread, _ := pausedRun(t, runs, callbacks, time.Now().Add(time.Hour))

	count, err := callbacks.RequeueExpiredCallbacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expired, err := runs.GetRun(ctx, expiredThread)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, expired.Status)

	live, err := runs.GetRun(ctx, liveThread)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPaused, live.Status)

	// A real callback arriving after expiry conflicts.
	assert.ErrorIs(t, callbacks.Consume(ctx, expiredToken, models.CallbackRequest{}), ErrConflict)

	// The sweep is idempotent.
	count, err = callbacks.RequeueExpiredCallbacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
