package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/credential"
	"github.com/weftworks/weft/pkg/credentials"
	"github.com/weftworks/weft/pkg/models"
)

// CredentialService stores tenanted data-source credentials and resolves
// them for the engine's query executors. DSNs are write-only through the
// API; only the engine reads them back.
type CredentialService struct {
	client *ent.Client
}

var _ credentials.Client = (*CredentialService)(nil)

// NewCredentialService creates a new CredentialService.
func NewCredentialService(client *ent.Client) *CredentialService {
	return &CredentialService{client: client}
}

// Get implements credentials.Client. A ref that exists under a different
// owner is indistinguishable from a missing one on the wire, but the engine
// reports it distinctly for operators.
func (s *CredentialService) Get(ctx context.Context, ownerID, ref string) (*credentials.Descriptor, error) {
	rec, err := s.client.Credential.Query().
		Where(credential.OwnerIDEQ(ownerID), credential.RefEQ(ref)).
		Only(ctx)
	if err == nil {
		return &credentials.Descriptor{
			Source: rec.Source,
			DSN:    rec.Dsn,
			Params: rec.Params,
		}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve credential: %w", err)
	}

	exists, eerr := s.client.Credential.Query().
		Where(credential.RefEQ(ref)).
		Exist(ctx)
	if eerr != nil {
		return nil, fmt.Errorf("failed to check credential ref: %w", eerr)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", credentials.ErrForbidden, ref)
	}
	return nil, fmt.Errorf("%w: %s", credentials.ErrNotFound, ref)
}

// SaveCredential creates or replaces a credential keyed by (owner, ref).
func (s *CredentialService) SaveCredential(httpCtx context.Context, req models.SaveCredentialRequest) error {
	if req.OwnerID == "" {
		return NewValidationError("owner_id", "required")
	}
	if req.Ref == "" {
		return NewValidationError("ref", "required")
	}
	if req.Source == "" {
		return NewValidationError("source", "required")
	}
	if req.DSN == "" {
		return NewValidationError("dsn", "required")
	}
	switch req.Source {
	case "postgres", "mysql", "sqlite", "mongodb", "http":
	default:
		return NewValidationError("source", "must be one of postgres, mysql, sqlite, mongodb, http")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Credential.Query().
		Where(credential.OwnerIDEQ(req.OwnerID), credential.RefEQ(req.Ref)).
		Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().
			SetSource(req.Source).
			SetDsn(req.DSN)
		if req.Params != nil {
			update.SetParams(req.Params)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update credential: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		builder := s.client.Credential.Create().
			SetID(uuid.New().String()).
			SetOwnerID(req.OwnerID).
			SetRef(req.Ref).
			SetSource(req.Source).
			SetDsn(req.DSN)
		if req.Params != nil {
			builder.SetParams(req.Params)
		}
		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to create credential: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to look up credential: %w", err)
	}
}

// ListCredentials lists an owner's credential refs without their DSNs.
func (s *CredentialService) ListCredentials(ctx context.Context, ownerID string) ([]models.CredentialInfo, error) {
	records, err := s.client.Credential.Query().
		Where(credential.OwnerIDEQ(ownerID)).
		Order(ent.Asc(credential.FieldRef)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	out := make([]models.CredentialInfo, 0, len(records))
	for _, rec := range records {
		out = append(out, models.CredentialInfo{Ref: rec.Ref, Source: rec.Source})
	}
	return out, nil
}

// DeleteCredential removes a credential.
func (s *CredentialService) DeleteCredential(ctx context.Context, ownerID, ref string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Credential.Delete().
		Where(credential.OwnerIDEQ(ownerID), credential.RefEQ(ref)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
