// Package config loads and validates weft.yaml configuration.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Server *ServerConfig
	Queue  *QueueConfig
	Bus    *BusConfig
	LLM    *LLMConfig
	Skills *SkillsConfig
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	// Port the API server listens on.
	Port int `yaml:"port"`

	// AllowedOrigins are additional CORS origins beyond localhost.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port: 8080,
	}
}

// BusBackend selects the pub/sub implementation.
type BusBackend string

// Supported bus backends.
const (
	BusPostgres BusBackend = "postgres"
	BusRedis    BusBackend = "redis"
)

// BusConfig selects and configures the event bus backend.
type BusConfig struct {
	// Backend is "postgres" (NOTIFY/LISTEN on the main database) or "redis".
	Backend BusBackend `yaml:"backend"`

	// RedisAddr is the host:port of the Redis server (redis backend only).
	RedisAddr string `yaml:"redis_addr"`

	// RedisPassword authenticates to Redis. Usually set via {{.REDIS_PASSWORD}}.
	RedisPassword string `yaml:"redis_password"`

	// RedisDB selects the Redis logical database.
	RedisDB int `yaml:"redis_db"`
}

// DefaultBusConfig returns the built-in bus defaults.
func DefaultBusConfig() *BusConfig {
	return &BusConfig{
		Backend: BusPostgres,
	}
}

// LLMConfig configures the LLM sidecar connection.
type LLMConfig struct {
	// SidecarAddr is the gRPC address of the LLM sidecar.
	SidecarAddr string `yaml:"sidecar_addr"`

	// DefaultModel is used for runs without a model override.
	DefaultModel string `yaml:"default_model"`

	// RequestTimeout bounds a single completion call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		SidecarAddr:    "localhost:50051",
		RequestTimeout: 2 * time.Minute,
	}
}

// SkillsConfig configures the skill registry sources.
type SkillsConfig struct {
	// Dir is the root of filesystem skill packages. Empty disables the
	// filesystem source.
	Dir string `yaml:"dir"`
}
