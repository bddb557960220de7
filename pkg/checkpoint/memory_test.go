package checkpoint

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLatest(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Latest(ctx, "t1")
	require.ErrorIs(t, err, ErrNotFound)

	base := time.Now()
	require.NoError(t, store.Save(ctx, &Checkpoint{ThreadID: "t1", ID: "c1", TS: base}))
	require.NoError(t, store.Save(ctx, &Checkpoint{ThreadID: "t1", ID: "c2", ParentID: "c1", TS: base.Add(time.Second)}))

	latest, err := store.Latest(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "c2", latest.ID)
	assert.Equal(t, "c1", latest.ParentID)
}

func TestMemoryStoreListLatest(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.Save(ctx, &Checkpoint{ThreadID: "t1", ID: "a1", WorkspaceID: "ws1", TS: base}))
	require.NoError(t, store.Save(ctx, &Checkpoint{ThreadID: "t1", ID: "a2", WorkspaceID: "ws1", TS: base.Add(time.Second)}))
	require.NoError(t, store.Save(ctx, &Checkpoint{ThreadID: "t2", ID: "b1", WorkspaceID: "ws1", TS: base.Add(2 * time.Second)}))
	require.NoError(t, store.Save(ctx, &Checkpoint{ThreadID: "t3", ID: "c1", WorkspaceID: "ws2", TS: base.Add(3 * time.Second)}))

	out, err := store.ListLatest(ctx, "ws1", 10)
	require.NoError(t, err)
	require.Len(t, out, 2, "one row per thread")
	assert.Equal(t, "b1", out[0].ID, "newest first")
	assert.Equal(t, "a2", out[1].ID)

	all, err := store.ListLatest(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, all, 2, "limit respected")
}
