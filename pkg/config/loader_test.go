package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weft.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_DefaultsApplied(t *testing.T) {
	dir := writeConfig(t, `
llm:
  default_model: gpt-4o
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, BusPostgres, cfg.Bus.Backend)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 15*time.Minute, cfg.Queue.RunTimeout)
	assert.Equal(t, 30*time.Second, cfg.Queue.HeartbeatInterval)
	assert.Equal(t, "localhost:50051", cfg.LLM.SidecarAddr)
	assert.Equal(t, "gpt-4o", cfg.LLM.DefaultModel)
	assert.Empty(t, cfg.Skills.Dir)
}

func TestInitialize_OverridesMergedOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
queue:
  worker_count: 2
  run_timeout: 5m
bus:
  backend: redis
  redis_addr: localhost:6379
llm:
  default_model: gpt-4o
  request_timeout: 30s
skills:
  dir: ./skills
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.RunTimeout)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, 1*time.Minute, cfg.Queue.OrphanDetectionInterval)
	assert.Equal(t, BusRedis, cfg.Bus.Backend)
	assert.Equal(t, "localhost:6379", cfg.Bus.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout)
	assert.Equal(t, "./skills", cfg.Skills.Dir)
}

func TestInitialize_EnvironmentExpansion(t *testing.T) {
	t.Setenv("WEFT_TEST_MODEL", "claude-sonnet")
	t.Setenv("WEFT_TEST_REDIS", "redis.internal:6379")

	dir := writeConfig(t, `
bus:
  backend: redis
  redis_addr: {{.WEFT_TEST_REDIS}}
llm:
  default_model: {{.WEFT_TEST_MODEL}}
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", cfg.Bus.RedisAddr)
	assert.Equal(t, "claude-sonnet", cfg.LLM.DefaultModel)
}

func TestInitialize_MissingConfigFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "weft.yaml", loadErr.File)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "llm: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown bus backend",
			yaml: `
bus:
  backend: kafka
llm:
  default_model: gpt-4o
`,
		},
		{
			name: "redis backend without address",
			yaml: `
bus:
  backend: redis
llm:
  default_model: gpt-4o
`,
		},
		{
			name: "missing default model",
			yaml: `
server:
  port: 8080
`,
		},
		{
			name: "invalid port",
			yaml: `
server:
  port: 99999
llm:
  default_model: gpt-4o
`,
		},
		{
			name: "heartbeat not shorter than orphan threshold",
			yaml: `
queue:
  heartbeat_interval: 10m
  orphan_threshold: 5m
llm:
  default_model: gpt-4o
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()
	assert.Positive(t, cfg.WorkerCount)
	assert.Positive(t, cfg.MaxConcurrentRuns)
	assert.Less(t, cfg.HeartbeatInterval, cfg.OrphanThreshold)
	assert.Equal(t, cfg.RunTimeout, cfg.GracefulShutdownTimeout)
}
