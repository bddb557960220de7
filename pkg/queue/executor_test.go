package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackResultDecoding(t *testing.T) {
	assert.Nil(t, callbackResult(nil))

	cr := callbackResult(map[string]any{
		"token":   "tok-1",
		"outputs": map[string]any{"ticket_id": "T-42"},
	})
	require.NotNil(t, cr)
	assert.Equal(t, "tok-1", cr.Token)
	assert.Equal(t, "T-42", cr.Outputs["ticket_id"])
	assert.Empty(t, cr.Err)

	cr = callbackResult(map[string]any{
		"token": "tok-2",
		"error": "vendor rejected the request",
	})
	require.NotNil(t, cr)
	assert.Equal(t, "tok-2", cr.Token)
	assert.Nil(t, cr.Outputs)
	assert.Equal(t, "vendor rejected the request", cr.Err)
}
