package skills

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
)

// DBSkill is a database-sourced skill row as the registry consumes it.
// Fetched through the DBSource so the registry stays decoupled from ent.
type DBSkill struct {
	ID          string
	Name        string
	WorkspaceID string
	IsPublic    bool
	Manifest    string
}

// DBSource lists database-sourced skill definitions. Implemented by
// services.SkillService; nil disables the database source.
type DBSource interface {
	ListSkillRows(ctx context.Context) ([]DBSkill, error)
}

// Diagnostic records a skill that failed to load. The offending entry is
// absent from the registry; the load itself does not abort.
type Diagnostic struct {
	Name   string // best-effort: directory or row name
	Source SourceKind
	Err    error
}

// Snapshot is an immutable view of the registry. Runs hold a snapshot for
// the duration of a planner tick so a concurrent reload never shifts the
// ground under them.
type Snapshot struct {
	fs     map[string]*Skill            // name → filesystem skill
	db     map[string]map[string]*Skill // workspace → name → skill
	public map[string]*Skill            // name → public database skill
	diags  []Diagnostic
}

// Registry maintains the effective skill set. Readers resolve against an
// atomically swapped snapshot; LoadAll builds a fresh snapshot and swaps it.
type Registry struct {
	skillsDir string
	dbSource  DBSource
	current   atomic.Pointer[Snapshot]
}

// NewRegistry creates a registry. dbSource may be nil (filesystem only).
func NewRegistry(skillsDir string, dbSource DBSource) *Registry {
	r := &Registry{skillsDir: skillsDir, dbSource: dbSource}
	r.current.Store(&Snapshot{
		fs:     map[string]*Skill{},
		db:     map[string]map[string]*Skill{},
		public: map[string]*Skill{},
	})
	return r
}

// NewStaticRegistry returns a registry preloaded with the given skills,
// bypassing both sources. Reloads are no-ops. For embedded engines and tests.
func NewStaticRegistry(list ...*Skill) *Registry {
	snap := &Snapshot{
		fs:     map[string]*Skill{},
		db:     map[string]map[string]*Skill{},
		public: map[string]*Skill{},
	}
	for _, s := range list {
		snap.fs[s.Name] = s
	}
	r := &Registry{}
	r.current.Store(snap)
	return r
}

// LoadAll rescans both sources and atomically replaces the snapshot.
// Individual skill failures are collected as diagnostics, not load errors.
func (r *Registry) LoadAll(ctx context.Context) error {
	if r.skillsDir == "" && r.dbSource == nil {
		return nil // static registry
	}
	snap := &Snapshot{
		fs:     map[string]*Skill{},
		db:     map[string]map[string]*Skill{},
		public: map[string]*Skill{},
	}

	if r.skillsDir != "" {
		if err := r.loadFilesystem(snap); err != nil {
			return err
		}
	}
	if r.dbSource != nil {
		if err := r.loadDatabase(ctx, snap); err != nil {
			return err
		}
	}

	r.current.Store(snap)
	slog.Info("Skill registry loaded",
		"filesystem", len(snap.fs),
		"database_workspaces", len(snap.db),
		"public", len(snap.public),
		"diagnostics", len(snap.diags))
	return nil
}

func (r *Registry) loadFilesystem(snap *Snapshot) error {
	entries, err := os.ReadDir(r.skillsDir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Skills directory does not exist", "dir", r.skillsDir)
			return nil
		}
		return fmt.Errorf("reading skills dir %s: %w", r.skillsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.skillsDir, entry.Name())
		manifestPath := filepath.Join(dir, ManifestFilename)
		raw, err := os.ReadFile(manifestPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue // not a skill directory
			}
			snap.diags = append(snap.diags, Diagnostic{Name: entry.Name(), Source: SourceFilesystem, Err: err})
			continue
		}
		skill, err := ParseManifest(raw)
		if err != nil {
			snap.diags = append(snap.diags, Diagnostic{Name: entry.Name(), Source: SourceFilesystem, Err: err})
			continue
		}
		if _, dup := snap.fs[skill.Name]; dup {
			snap.diags = append(snap.diags, Diagnostic{
				Name:   skill.Name,
				Source: SourceFilesystem,
				Err:    fmt.Errorf("duplicate filesystem skill name %q (dir %s)", skill.Name, entry.Name()),
			})
			continue
		}
		skill.Source = Source{Kind: SourceFilesystem, ID: entry.Name(), IsPublic: true, Dir: dir}
		snap.fs[skill.Name] = skill
	}
	return nil
}

func (r *Registry) loadDatabase(ctx context.Context, snap *Snapshot) error {
	rows, err := r.dbSource.ListSkillRows(ctx)
	if err != nil {
		return fmt.Errorf("listing database skills: %w", err)
	}
	for _, row := range rows {
		skill, err := ParseManifest([]byte(row.Manifest))
		if err != nil {
			snap.diags = append(snap.diags, Diagnostic{Name: row.Name, Source: SourceDatabase, Err: err})
			continue
		}
		if skill.Name != row.Name {
			snap.diags = append(snap.diags, Diagnostic{
				Name:   row.Name,
				Source: SourceDatabase,
				Err:    fmt.Errorf("manifest name %q does not match row name %q", skill.Name, row.Name),
			})
			continue
		}
		skill.Source = Source{
			Kind:        SourceDatabase,
			ID:          row.ID,
			WorkspaceID: row.WorkspaceID,
			IsPublic:    row.IsPublic,
		}
		if row.IsPublic {
			snap.public[skill.Name] = skill
		}
		ws := snap.db[row.WorkspaceID]
		if ws == nil {
			ws = map[string]*Skill{}
			snap.db[row.WorkspaceID] = ws
		}
		if _, dup := ws[skill.Name]; dup {
			snap.diags = append(snap.diags, Diagnostic{
				Name:   skill.Name,
				Source: SourceDatabase,
				Err:    fmt.Errorf("duplicate database skill %q in workspace %q", skill.Name, row.WorkspaceID),
			})
			continue
		}
		ws[skill.Name] = skill
	}
	return nil
}

// Snapshot returns the current immutable view.
func (r *Registry) Snapshot() *Snapshot {
	return r.current.Load()
}

// Get resolves the effective skill for a workspace from the current snapshot.
func (r *Registry) Get(name, workspace string) (*Skill, bool) {
	return r.Snapshot().Get(name, workspace)
}

// List returns all skills visible to a workspace from the current snapshot.
func (r *Registry) List(workspace string) []*Skill {
	return r.Snapshot().List(workspace)
}

// Diagnostics returns the load diagnostics of the current snapshot.
func (r *Registry) Diagnostics() []Diagnostic {
	return r.Snapshot().diags
}

// Get resolves precedence: workspace-private database skill beats a public
// database skill, which beats a filesystem skill of the same name.
func (s *Snapshot) Get(name, workspace string) (*Skill, bool) {
	if ws, ok := s.db[workspace]; ok {
		if skill, ok := ws[name]; ok {
			return skill, true
		}
	}
	if skill, ok := s.public[name]; ok {
		return skill, true
	}
	skill, ok := s.fs[name]
	return skill, ok
}

// List returns every skill visible to the workspace, name-sorted.
func (s *Snapshot) List(workspace string) []*Skill {
	effective := make(map[string]*Skill, len(s.fs))
	for name, skill := range s.fs {
		effective[name] = skill
	}
	for name, skill := range s.public {
		effective[name] = skill
	}
	if ws, ok := s.db[workspace]; ok {
		for name, skill := range ws {
			effective[name] = skill
		}
	}

	names := make([]string, 0, len(effective))
	for name := range effective {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Skill, len(names))
	for i, name := range names {
		out[i] = effective[name]
	}
	return out
}

// Diagnostics exposes load failures recorded in this snapshot.
func (s *Snapshot) Diagnostics() []Diagnostic { return s.diags }
