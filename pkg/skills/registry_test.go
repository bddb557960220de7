package skills

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDBSource struct {
	rows []DBSkill
	err  error
}

func (f *fakeDBSource) ListSkillRows(context.Context) ([]DBSkill, error) {
	return f.rows, f.err
}

func writeSkillDir(t *testing.T, root, dir, manifest string) {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, ManifestFilename), []byte(manifest), 0o644))
}

func llmManifest(name string) string {
	return fmt.Sprintf("---\nname: %s\nexecutor: llm\nprompt: \"do {x}\"\nproduces: [out]\n---\ndocs\n", name)
}

func TestLoadAllFilesystem(t *testing.T) {
	dir := t.TempDir()
	writeSkillDir(t, dir, "alpha", llmManifest("Alpha"))
	writeSkillDir(t, dir, "broken", "---\nname: Broken\nexecutor: nope\n---\n")

	reg := NewRegistry(dir, nil)
	require.NoError(t, reg.LoadAll(context.Background()))

	skill, ok := reg.Get("Alpha", "ws1")
	require.True(t, ok)
	assert.Equal(t, SourceFilesystem, skill.Source.Kind)
	assert.Equal(t, filepath.Join(dir, "alpha"), skill.Source.Dir)

	_, ok = reg.Get("Broken", "ws1")
	assert.False(t, ok)

	diags := reg.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "broken", diags[0].Name)
}

func TestWorkspacePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeSkillDir(t, dir, "alpha", llmManifest("Alpha"))

	db := &fakeDBSource{rows: []DBSkill{
		{ID: "1", Name: "Alpha", WorkspaceID: "ws1", Manifest: "name: Alpha\nexecutor: llm\nprompt: private\nproduces: [out]\n"},
		{ID: "2", Name: "Shared", WorkspaceID: "ws2", IsPublic: true, Manifest: "name: Shared\nexecutor: llm\nprompt: shared\nproduces: [out]\n"},
	}}
	reg := NewRegistry(dir, db)
	require.NoError(t, reg.LoadAll(context.Background()))

	// ws1 sees its private override of Alpha.
	skill, ok := reg.Get("Alpha", "ws1")
	require.True(t, ok)
	assert.Equal(t, SourceDatabase, skill.Source.Kind)
	assert.Equal(t, "private", skill.Prompt)

	// Other workspaces still see the filesystem Alpha.
	skill, ok = reg.Get("Alpha", "ws2")
	require.True(t, ok)
	assert.Equal(t, SourceFilesystem, skill.Source.Kind)

	// Public database skills are visible everywhere.
	_, ok = reg.Get("Shared", "ws1")
	assert.True(t, ok)
	_, ok = reg.Get("Shared", "ws3")
	assert.True(t, ok)
}

func TestListSortsAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeSkillDir(t, dir, "b", llmManifest("Bravo"))
	writeSkillDir(t, dir, "a", llmManifest("Alpha"))

	db := &fakeDBSource{rows: []DBSkill{
		{ID: "1", Name: "Alpha", WorkspaceID: "ws1", Manifest: "name: Alpha\nexecutor: llm\nprompt: override\nproduces: [out]\n"},
	}}
	reg := NewRegistry(dir, db)
	require.NoError(t, reg.LoadAll(context.Background()))

	list := reg.List("ws1")
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "override", list[0].Prompt)
	assert.Equal(t, "Bravo", list[1].Name)
}

func TestReloadSwapsSnapshotAtomically(t *testing.T) {
	dir := t.TempDir()
	writeSkillDir(t, dir, "alpha", llmManifest("Alpha"))

	reg := NewRegistry(dir, nil)
	require.NoError(t, reg.LoadAll(context.Background()))
	before := reg.Snapshot()

	writeSkillDir(t, dir, "beta", llmManifest("Beta"))
	require.NoError(t, reg.LoadAll(context.Background()))

	// The old snapshot is unchanged; the new one sees Beta.
	_, ok := before.Get("Beta", "")
	assert.False(t, ok)
	_, ok = reg.Get("Beta", "")
	assert.True(t, ok)
}

func TestLoadAllDBErrorAborts(t *testing.T) {
	reg := NewRegistry("", &fakeDBSource{err: fmt.Errorf("db down")})
	require.Error(t, reg.LoadAll(context.Background()))
}
