// Package checkpoint persists the authoritative per-run state as an ordered
// chain of checkpoint rows and answers "latest for thread" queries.
package checkpoint

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a thread has no checkpoints yet.
var ErrNotFound = errors.New("checkpoint not found")

// Checkpoint is one row of a thread's chain. ChannelValues is the full
// serialized workflow state; the remaining scalar fields are a denormalized
// projection for list views so readers never deserialize state.
type Checkpoint struct {
	ThreadID    string
	Namespace   string // empty string by convention
	ID          string
	ParentID    string // empty for the first checkpoint of a thread
	TS          time.Time
	WorkspaceID string

	ChannelValues   map[string]any
	ChannelVersions map[string]any
	PendingWrites   map[string]any

	// Projection.
	ActiveSkill string
	Status      string
	RunName     string
	SOPPreview  string
}

// Store is the durable backend for checkpoint chains.
//
// Save must be durable before it returns: the orchestrator will not advance
// past an unsaved checkpoint. Latest returns the highest-ts row for the
// thread; ListLatest returns each thread's latest row within a workspace,
// newest first, up to limit.
type Store interface {
	Save(ctx context.Context, cp *Checkpoint) error
	Latest(ctx context.Context, threadID string) (*Checkpoint, error)
	ListLatest(ctx context.Context, workspaceID string, limit int) ([]*Checkpoint, error)
}
