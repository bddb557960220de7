package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewManifest = `name: ReviewTicket
description: Summarize an open ticket for review
executor: llm
prompt: "Summarize ticket {ticket.body}"
requires: [ticket.body]
produces: [summary]
`

func TestSkillEndpoints(t *testing.T) {
	ts := newTestServer(t)

	// Create a workspace skill and verify the registry picked it up.
	rec := ts.do(t, http.MethodPost, "/api/v1/skills", map[string]any{
		"name":         "ReviewTicket",
		"workspace_id": "ws1",
		"manifest":     reviewManifest,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/skills?workspace_id=ws1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	skillsList := body["skills"].([]any)
	require.Len(t, skillsList, 1)
	info := skillsList[0].(map[string]any)
	assert.Equal(t, "ReviewTicket", info["name"])
	assert.Equal(t, "llm", info["executor"])
	assert.Equal(t, "database", info["source"])

	// Other workspaces do not see the private skill.
	rec = ts.do(t, http.MethodGet, "/api/v1/skills?workspace_id=ws2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["skills"])

	// PUT updates under the path name.
	rec = ts.do(t, http.MethodPut, "/api/v1/skills/ReviewTicket", map[string]any{
		"workspace_id": "ws1",
		"is_public":    true,
		"manifest":     reviewManifest,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["is_public"])

	// Now public: visible from any workspace.
	rec = ts.do(t, http.MethodGet, "/api/v1/skills?workspace_id=ws2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["skills"], 1)

	// Delete and confirm it is gone.
	rec = ts.do(t, http.MethodDelete, "/api/v1/skills/ReviewTicket?workspace_id=ws1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodDelete, "/api/v1/skills/ReviewTicket?workspace_id=ws1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveSkillRejectsInvalidManifest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/skills", map[string]any{
		"name":         "Broken",
		"workspace_id": "ws1",
		"manifest":     "executor: llm\n", // missing name
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReloadSkillsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/skills/reload", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "registry reloaded", body["message"])
}

func TestCredentialEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/api/v1/credentials/warehouse", map[string]any{
		"owner_id": "u1",
		"source":   "postgres",
		"dsn":      "postgres://u:p@db/warehouse",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/credentials?owner_id=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	creds := body["credentials"].([]any)
	require.Len(t, creds, 1)
	info := creds[0].(map[string]any)
	assert.Equal(t, "warehouse", info["ref"])
	assert.Equal(t, "postgres", info["source"])
	assert.NotContains(t, info, "dsn")

	rec = ts.do(t, http.MethodGet, "/api/v1/credentials", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/credentials/warehouse?owner_id=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodDelete, "/api/v1/credentials/warehouse?owner_id=u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
