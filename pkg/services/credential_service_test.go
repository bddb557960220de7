package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/credentials"
	"github.com/weftworks/weft/pkg/models"
	testdb "github.com/weftworks/weft/test/database"
)

func TestCredentialService_SaveAndResolve(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCredentialService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		OwnerID: "u1",
		Ref:     "warehouse",
		Source:  "postgres",
		DSN:     "postgres://u:p@db/warehouse",
	}))

	desc, err := service.Get(ctx, "u1", "warehouse")
	require.NoError(t, err)
	assert.Equal(t, "postgres", desc.Source)
	assert.Equal(t, "postgres://u:p@db/warehouse", desc.DSN)

	// Upsert replaces the DSN in place.
	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		OwnerID: "u1",
		Ref:     "warehouse",
		Source:  "mysql",
		DSN:     "u:p@tcp(db)/warehouse",
	}))
	desc, err = service.Get(ctx, "u1", "warehouse")
	require.NoError(t, err)
	assert.Equal(t, "mysql", desc.Source)
}

func TestCredentialService_OwnerScoping(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCredentialService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		OwnerID: "u1", Ref: "warehouse", Source: "postgres", DSN: "dsn",
	}))

	_, err := service.Get(ctx, "u2", "warehouse")
	assert.ErrorIs(t, err, credentials.ErrForbidden)

	_, err = service.Get(ctx, "u2", "nonexistent")
	assert.ErrorIs(t, err, credentials.ErrNotFound)
}

func TestCredentialService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCredentialService(client.Client)
	ctx := context.Background()

	err := service.SaveCredential(ctx, models.SaveCredentialRequest{
		OwnerID: "u1", Ref: "x", Source: "oracle", DSN: "dsn",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCredentialService_ListHidesDSN(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCredentialService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		OwnerID: "u1", Ref: "warehouse", Source: "postgres", DSN: "secret-dsn",
	}))
	require.NoError(t, service.SaveCredential(ctx, models.SaveCredentialRequest{
		OwnerID: "u1", Ref: "tickets", Source: "mongodb", DSN: "secret-dsn-2",
		Params: map[string]string{"database": "tickets"},
	}))

	infos, err := service.ListCredentials(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "tickets", infos[0].Ref, "sorted by ref")
	assert.Equal(t, "warehouse", infos[1].Ref)

	require.NoError(t, service.DeleteCredential(ctx, "u1", "tickets"))
	assert.ErrorIs(t, service.DeleteCredential(ctx, "u1", "tickets"), ErrNotFound)
}
