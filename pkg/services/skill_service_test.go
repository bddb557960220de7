package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/models"
	testdb "github.com/weftworks/weft/test/database"
)

const summarizeManifest = `
name: Summarize
description: Summarize a document.
executor: llm
prompt: "Summarize {doc.body}"
produces: [summary]
`

func TestSkillService_SaveAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSkillService(client.Client)
	ctx := context.Background()

	t.Run("creates and updates by (name, workspace)", func(t *testing.T) {
		created, err := service.SaveSkill(ctx, models.SaveSkillRequest{
			Name:        "Summarize",
			WorkspaceID: "ws1",
			Manifest:    summarizeManifest,
			CreatedBy:   "alice@example.com",
		})
		require.NoError(t, err)
		assert.False(t, created.IsPublic)

		updated, err := service.SaveSkill(ctx, models.SaveSkillRequest{
			Name:        "Summarize",
			WorkspaceID: "ws1",
			IsPublic:    true,
			Manifest:    summarizeManifest,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, updated.IsPublic)

		got, err := service.GetSkill(ctx, "Summarize", "ws1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("rejects manifest that does not parse", func(t *testing.T) {
		_, err := service.SaveSkill(ctx, models.SaveSkillRequest{
			Name:        "Broken",
			WorkspaceID: "ws1",
			Manifest:    "name: Broken\nexecutor: quantum\n",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects name mismatch", func(t *testing.T) {
		_, err := service.SaveSkill(ctx, models.SaveSkillRequest{
			Name:        "Other",
			WorkspaceID: "ws1",
			Manifest:    summarizeManifest,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSkillService_ListVisibility(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSkillService(client.Client)
	ctx := context.Background()

	_, err := service.SaveSkill(ctx, models.SaveSkillRequest{
		Name: "Summarize", WorkspaceID: "ws1", Manifest: summarizeManifest,
	})
	require.NoError(t, err)
	_, err = service.SaveSkill(ctx, models.SaveSkillRequest{
		Name: "Summarize", WorkspaceID: "ws2", IsPublic: true, Manifest: summarizeManifest,
	})
	require.NoError(t, err)

	resp, err := service.ListSkills(ctx, "ws1")
	require.NoError(t, err)
	assert.Len(t, resp.Skills, 2, "own skill plus the public one")

	resp, err = service.ListSkills(ctx, "ws3")
	require.NoError(t, err)
	assert.Len(t, resp.Skills, 1, "only the public skill")
}

func TestSkillService_DeleteAndRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSkillService(client.Client)
	ctx := context.Background()

	_, err := service.SaveSkill(ctx, models.SaveSkillRequest{
		Name: "Summarize", WorkspaceID: "ws1", Manifest: summarizeManifest,
	})
	require.NoError(t, err)

	rows, err := service.ListSkillRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Summarize", rows[0].Name)
	assert.Equal(t, "ws1", rows[0].WorkspaceID)

	require.NoError(t, service.DeleteSkill(ctx, "Summarize", "ws1"))
	assert.ErrorIs(t, service.DeleteSkill(ctx, "Summarize", "ws1"), ErrNotFound)

	rows, err = service.ListSkillRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
