// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/weftworks/weft/ent"
)

// CreateRunRequest contains fields for submitting a new run.
type CreateRunRequest struct {
	SOP         string         `json:"sop"`
	RunName     string         `json:"run_name,omitempty"`
	InitialData map[string]any `json:"initial_data,omitempty"`
	OwnerID     string         `json:"owner_id"`
	WorkspaceID string         `json:"workspace_id"`
	LLMModel    string         `json:"llm_model,omitempty"`
	AckKey      string         `json:"ack_key,omitempty"`
}

// RunFilters selects runs for listing.
type RunFilters struct {
	OwnerID     string
	WorkspaceID string
	Status      string
	Search      string // full-text over sop and run_name
	CreatedAt   *time.Time
	Limit       int
	Offset      int
}

// RunListResponse is a paginated run listing.
type RunListResponse struct {
	Runs       []*ent.Run `json:"runs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// RunStatus is the live view of a run assembled from the run row and its
// latest checkpoint.
type RunStatus struct {
	ThreadID    string         `json:"thread_id"`
	RunName     string         `json:"run_name,omitempty"`
	Status      string         `json:"status"`
	ActiveSkill string         `json:"active_skill,omitempty"`
	LastError   map[string]any `json:"last_error,omitempty"`
	HistoryTail []string       `json:"history_tail,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// RerunRequest forks a run into a fresh thread. Unset fields inherit the
// parent's values; set fields replace them (edit-rerun).
type RerunRequest struct {
	SOP         string         `json:"new_sop,omitempty"`
	InitialData map[string]any `json:"new_initial_data,omitempty"`
	LLMModel    string         `json:"new_llm_model,omitempty"`
}

// ResumeRunRequest delivers a human approval to a paused run.
type ResumeRunRequest struct {
	Approval map[string]any `json:"approval,omitempty"`
}

// CallbackRequest is the body POSTed by an external system completing an
// async REST skill.
type CallbackRequest struct {
	Outputs map[string]any `json:"outputs,omitempty"`
	Error   string         `json:"error,omitempty"`
}
