package checkpoint

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/weftworks/weft/ent"
	entcheckpoint "github.com/weftworks/weft/ent/checkpoint"
)

// EntStore persists checkpoint chains in Postgres through ent. Saves retry
// transient failures with exponential backoff; a save that exhausts its
// retries surfaces to the orchestrator as a flush failure.
type EntStore struct {
	client *ent.Client
	db     *sql.DB
	logger *slog.Logger

	maxRetries uint64
}

// NewEntStore creates a store over an ent client. db is the same underlying
// connection, used for the latest-per-thread list query.
func NewEntStore(client *ent.Client, db *sql.DB, logger *slog.Logger) *EntStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntStore{client: client, db: db, logger: logger, maxRetries: 4}
}

// Save implements Store. The row must be durable before Save returns; the
// engine never advances past an unsaved checkpoint.
func (s *EntStore) Save(ctx context.Context, cp *Checkpoint) error {
	op := func() error {
		create := s.client.Checkpoint.Create().
			SetID(cp.ID).
			SetThreadID(cp.ThreadID).
			SetCheckpointNs(cp.Namespace).
			SetTs(cp.TS).
			SetWorkspaceID(cp.WorkspaceID).
			SetChannelValues(cp.ChannelValues).
			SetStatus(cp.Status)
		if cp.ParentID != "" {
			create.SetParentCheckpointID(cp.ParentID)
		}
		if cp.ChannelVersions != nil {
			create.SetChannelVersions(cp.ChannelVersions)
		}
		if cp.PendingWrites != nil {
			create.SetPendingWrites(cp.PendingWrites)
		}
		if cp.ActiveSkill != "" {
			create.SetActiveSkill(cp.ActiveSkill)
		}
		if cp.RunName != "" {
			create.SetRunName(cp.RunName)
		}
		if cp.SOPPreview != "" {
			create.SetSopPreview(cp.SOPPreview)
		}

		_, err := create.Save(ctx)
		if ent.IsConstraintError(err) {
			// Duplicate id or missing run row will not heal on retry.
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)
	if err := backoff.RetryNotify(op, policy, func(err error, next time.Duration) {
		s.logger.Warn("checkpoint save failed, retrying",
			"thread_id", cp.ThreadID, "checkpoint_id", cp.ID, "retry_in", next, "error", err)
	}); err != nil {
		return fmt.Errorf("saving checkpoint %s for %s: %w", cp.ID, cp.ThreadID, err)
	}
	return nil
}

// Latest implements Store.
func (s *EntStore) Latest(ctx context.Context, threadID string) (*Checkpoint, error) {
	row, err := s.client.Checkpoint.Query().
		Where(entcheckpoint.ThreadID(threadID)).
		Order(ent.Desc(entcheckpoint.FieldTs), ent.Desc(entcheckpoint.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest checkpoint for %s: %w", threadID, err)
	}
	return fromRow(row), nil
}

// ListLatest implements Store. It returns the projection columns only:
// channel values stay in the database, list views never deserialize state.
func (s *EntStore) ListLatest(ctx context.Context, workspaceID string, limit int) ([]*Checkpoint, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT DISTINCT ON (thread_id)
			checkpoint_id, thread_id, checkpoint_ns, parent_checkpoint_id, ts,
			workspace_id, active_skill, status, run_name, sop_preview
		FROM checkpoints
		WHERE ($1 = '' OR workspace_id = $1)
		ORDER BY thread_id, ts DESC, checkpoint_id DESC`
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT * FROM (%s) latest ORDER BY ts DESC LIMIT $2`, query),
		workspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing latest checkpoints: %w", err)
	}
	defer rows.Close()

	var out []*Checkpoint
	for rows.Next() {
		var (
			cp          Checkpoint
			parent      sql.NullString
			activeSkill sql.NullString
			runName     sql.NullString
			sopPreview  sql.NullString
		)
		if err := rows.Scan(&cp.ID, &cp.ThreadID, &cp.Namespace, &parent, &cp.TS,
			&cp.WorkspaceID, &activeSkill, &cp.Status, &runName, &sopPreview); err != nil {
			return nil, fmt.Errorf("scanning checkpoint row: %w", err)
		}
		cp.ParentID = parent.String
		cp.ActiveSkill = activeSkill.String
		cp.RunName = runName.String
		cp.SOPPreview = sopPreview.String
		out = append(out, &cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checkpoint rows: %w", err)
	}
	return out, nil
}

func fromRow(row *ent.Checkpoint) *Checkpoint {
	cp := &Checkpoint{
		ThreadID:        row.ThreadID,
		Namespace:       row.CheckpointNs,
		ID:              row.ID,
		TS:              row.Ts,
		WorkspaceID:     row.WorkspaceID,
		ChannelValues:   row.ChannelValues,
		ChannelVersions: row.ChannelVersions,
		PendingWrites:   row.PendingWrites,
		ActiveSkill:     row.ActiveSkill,
		Status:          row.Status,
		RunName:         row.RunName,
		SOPPreview:      row.SopPreview,
	}
	if row.ParentCheckpointID != nil {
		cp.ParentID = *row.ParentCheckpointID
	}
	return cp
}
