package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/ent/run"
	"github.com/weftworks/weft/pkg/checkpoint"
	"github.com/weftworks/weft/pkg/config"
	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/engine"
	"github.com/weftworks/weft/pkg/events"
	"github.com/weftworks/weft/pkg/services"
	"github.com/weftworks/weft/pkg/skills"
	testdb "github.com/weftworks/weft/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	*Server
	db        *database.Client
	runs      *services.RunService
	callbacks *services.CallbackService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)

	runs := services.NewRunService(client.Client, checkpoint.NewMemoryStore(), events.NewMemoryBus())
	callbacks := services.NewCallbackService(client.Client)
	skillSvc := services.NewSkillService(client.Client)
	credSvc := services.NewCredentialService(client.Client)
	registry := skills.NewRegistry("", skillSvc)
	require.NoError(t, registry.LoadAll(context.Background()))

	server := NewServer(&config.ServerConfig{Port: 8080}, Deps{
		DB:          client,
		Runs:        runs,
		Callbacks:   callbacks,
		Skills:      skillSvc,
		Credentials: credSvc,
		Registry:    registry,
	})
	return &testServer{Server: server, db: client, runs: runs, callbacks: callbacks}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateRunEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
		"sop":          "Summarize the incident.",
		"owner_id":     "u1",
		"workspace_id": "ws1",
		"ack_key":      "ack-1",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeBody(t, rec)
	threadID := body["thread_id"].(string)
	assert.NotEmpty(t, threadID)
	assert.Equal(t, "pending", body["status"])

	// Replay with the same ack key returns the original thread.
	rec = ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
		"sop":          "Summarize the incident.",
		"owner_id":     "u1",
		"workspace_id": "ws1",
		"ack_key":      "ack-1",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, threadID, decodeBody(t, rec)["thread_id"])
}

func TestCreateRunEndpointValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{"owner_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRunsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	for _, ws := range []string{"ws1", "ws1", "ws2"} {
		rec := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
			"sop": "Do the thing.", "owner_id": "u1", "workspace_id": ws,
		})
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/runs?workspace_id=ws1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 2, body["total_count"])

	rec = ts.do(t, http.MethodGet, "/api/v1/runs?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRunEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/runs/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	created := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
		"sop": "Do the thing.", "owner_id": "u1", "workspace_id": "ws1", "run_name": "nightly",
	})
	threadID := decodeBody(t, created)["thread_id"].(string)

	rec = ts.do(t, http.MethodGet, "/api/v1/runs/"+threadID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "nightly", body["run_name"])
}

func TestResumeEndpointRequiresPausedRun(t *testing.T) {
	ts := newTestServer(t)

	created := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
		"sop": "Do the thing.", "owner_id": "u1", "workspace_id": "ws1",
	})
	threadID := decodeBody(t, created)["thread_id"].(string)

	rec := ts.do(t, http.MethodPost, "/api/v1/runs/"+threadID+"/resume", map[string]any{
		"approval": map[string]any{"approved": true},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	_, err := ts.db.Run.UpdateOneID(threadID).SetStatus(run.StatusPaused).Save(context.Background())
	require.NoError(t, err)

	rec = ts.do(t, http.MethodPost, "/api/v1/runs/"+threadID+"/resume", map[string]any{
		"approval": map[string]any{"approved": true},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	r, err := ts.db.Run.Get(context.Background(), threadID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, r.Status)
	assert.Equal(t, true, r.ResumePayload["approved"])
}

func TestRerunEndpoint(t *testing.T) {
	ts := newTestServer(t)

	created := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
		"sop": "Original instruction.", "owner_id": "u1", "workspace_id": "ws1",
	})
	threadID := decodeBody(t, created)["thread_id"].(string)

	rec := ts.do(t, http.MethodPost, "/api/v1/runs/"+threadID+"/rerun", map[string]any{
		"new_sop": "Edited instruction.",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeBody(t, rec)
	forkedID := body["thread_id"].(string)
	assert.NotEqual(t, threadID, forkedID)
	assert.Equal(t, threadID, body["parent_thread_id"])

	forked, err := ts.db.Run.Get(context.Background(), forkedID)
	require.NoError(t, err)
	assert.Equal(t, "Edited instruction.", forked.Sop)
}

func TestCancelEndpoint(t *testing.T) {
	ts := newTestServer(t)

	created := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
		"sop": "Do the thing.", "owner_id": "u1", "workspace_id": "ws1",
	})
	threadID := decodeBody(t, created)["thread_id"].(string)

	rec := ts.do(t, http.MethodPost, "/api/v1/runs/"+threadID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	r, err := ts.db.Run.Get(context.Background(), threadID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusError, r.Status)
	assert.Equal(t, "cancelled", r.LastError["kind"])

	// A finished run is not cancellable.
	rec = ts.do(t, http.MethodPost, "/api/v1/runs/"+threadID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCallbackEndpoint(t *testing.T) {
	ts := newTestServer(t)

	created := ts.do(t, http.MethodPost, "/api/v1/runs", map[string]any{
		"sop": "Do the thing.", "owner_id": "u1", "workspace_id": "ws1",
	})
	threadID := decodeBody(t, created)["thread_id"].(string)
	_, err := ts.db.Run.UpdateOneID(threadID).SetStatus(run.StatusPaused).Save(context.Background())
	require.NoError(t, err)

	require.NoError(t, ts.callbacks.RecordCallback(context.Background(), &engine.CallbackRecord{
		ThreadID:  threadID,
		Token:     "tok-1",
		SkillName: "notify_vendor",
		Deadline:  time.Now().Add(time.Hour),
	}))

	rec := ts.do(t, http.MethodPost, "/api/v1/callbacks/tok-1", map[string]any{
		"outputs": map[string]any{"ticket_id": "T-42"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Exactly once: the replay conflicts.
	rec = ts.do(t, http.MethodPost, "/api/v1/callbacks/tok-1", map[string]any{
		"outputs": map[string]any{"ticket_id": "T-42"},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown tokens are 404.
	rec = ts.do(t, http.MethodPost, "/api/v1/callbacks/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	r, err := ts.db.Run.Get(context.Background(), threadID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, r.Status)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
