// Package credentials exposes the engine's view of the credential vault:
// a keyed, owner-scoped store of connection descriptors. Vault internals
// (encryption, rotation) live outside the engine.
package credentials

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors surfaced to executors.
var (
	// ErrNotFound is returned when no credential matches (owner, ref).
	ErrNotFound = errors.New("credential not found")

	// ErrForbidden is returned on cross-owner access attempts.
	ErrForbidden = errors.New("credential access denied")
)

// Descriptor is a decrypted connection descriptor. DSN is driver-specific;
// Params carries source-specific extras (e.g. mongodb database name).
type Descriptor struct {
	Source string            `json:"source"` // postgres | mysql | sqlite | mongodb | http
	DSN    string            `json:"dsn"`
	Params map[string]string `json:"params,omitempty"`
}

// Client retrieves descriptors by reference, scoped to the requesting owner.
// Implementations must be safe for concurrent use; the engine shares one
// client across all runs.
type Client interface {
	Get(ctx context.Context, ownerID, ref string) (*Descriptor, error)
}

// Static is a fixed in-memory Client keyed by "owner/ref". Used by tests and
// by single-user deployments that declare credentials in configuration.
type Static struct {
	entries map[string]*Descriptor
}

// NewStatic builds a Static client from explicit entries.
func NewStatic() *Static {
	return &Static{entries: make(map[string]*Descriptor)}
}

// Add registers a descriptor for (ownerID, ref).
func (s *Static) Add(ownerID, ref string, d *Descriptor) {
	s.entries[ownerID+"/"+ref] = d
}

// Get implements Client.
func (s *Static) Get(_ context.Context, ownerID, ref string) (*Descriptor, error) {
	d, ok := s.entries[ownerID+"/"+ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return d, nil
}
