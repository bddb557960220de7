package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/skillrecord"
	"github.com/weftworks/weft/pkg/models"
	"github.com/weftworks/weft/pkg/skills"
)

// SkillService manages database-sourced skill records and feeds them to the
// registry as its database source.
type SkillService struct {
	client *ent.Client
}

var _ skills.DBSource = (*SkillService)(nil)

// NewSkillService creates a new SkillService.
func NewSkillService(client *ent.Client) *SkillService {
	return &SkillService{client: client}
}

// SaveSkill creates or updates a skill record keyed by (name, workspace).
// The manifest is validated before anything is written; a skill that does
// not parse never reaches the registry.
func (s *SkillService) SaveSkill(httpCtx context.Context, req models.SaveSkillRequest) (*ent.SkillRecord, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.Manifest == "" {
		return nil, NewValidationError("manifest", "required")
	}
	parsed, err := skills.ParseManifest([]byte(req.Manifest))
	if err != nil {
		return nil, fmt.Errorf("%w: manifest: %s", ErrInvalidInput, err)
	}
	if parsed.Name != req.Name {
		return nil, NewValidationError("name", "must match manifest name")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.SkillRecord.Query().
		Where(skillrecord.NameEQ(req.Name), skillrecord.WorkspaceIDEQ(req.WorkspaceID)).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := existing.Update().
			SetIsPublic(req.IsPublic).
			SetManifest(req.Manifest).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update skill: %w", err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		builder := s.client.SkillRecord.Create().
			SetID(uuid.New().String()).
			SetName(req.Name).
			SetWorkspaceID(req.WorkspaceID).
			SetIsPublic(req.IsPublic).
			SetManifest(req.Manifest)
		if req.CreatedBy != "" {
			builder.SetCreatedBy(req.CreatedBy)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create skill: %w", err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("failed to look up skill: %w", err)
	}
}

// GetSkill retrieves a skill record by name within a workspace.
func (s *SkillService) GetSkill(ctx context.Context, name, workspaceID string) (*ent.SkillRecord, error) {
	rec, err := s.client.SkillRecord.Query().
		Where(skillrecord.NameEQ(name), skillrecord.WorkspaceIDEQ(workspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return rec, nil
}

// ListSkills lists skill records visible to a workspace: its own plus
// public ones.
func (s *SkillService) ListSkills(ctx context.Context, workspaceID string) (*models.SkillListResponse, error) {
	records, err := s.client.SkillRecord.Query().
		Where(skillrecord.Or(
			skillrecord.WorkspaceIDEQ(workspaceID),
			skillrecord.IsPublic(true),
		)).
		Order(ent.Asc(skillrecord.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return &models.SkillListResponse{Skills: records}, nil
}

// DeleteSkill removes a skill record. The registry drops it on next reload.
func (s *SkillService) DeleteSkill(ctx context.Context, name, workspaceID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.SkillRecord.Delete().
		Where(skillrecord.NameEQ(name), skillrecord.WorkspaceIDEQ(workspaceID)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSkillRows implements skills.DBSource for the registry.
func (s *SkillService) ListSkillRows(ctx context.Context) ([]skills.DBSkill, error) {
	records, err := s.client.SkillRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill rows: %w", err)
	}
	rows := make([]skills.DBSkill, 0, len(records))
	for _, rec := range records {
		rows = append(rows, skills.DBSkill{
			ID:          rec.ID,
			Name:        rec.Name,
			WorkspaceID: rec.WorkspaceID,
			IsPublic:    rec.IsPublic,
			Manifest:    rec.Manifest,
		})
	}
	return rows, nil
}
