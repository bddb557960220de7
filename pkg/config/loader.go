package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WeftYAMLConfig represents the complete weft.yaml file structure.
type WeftYAMLConfig struct {
	Server *ServerConfig `yaml:"server"`
	Queue  *QueueConfig  `yaml:"queue"`
	Bus    *BusConfig    `yaml:"bus"`
	LLM    *LLMConfig    `yaml:"llm"`
	Skills *SkillsConfig `yaml:"skills"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load weft.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"bus_backend", cfg.Bus.Backend,
		"workers", cfg.Queue.WorkerCount,
		"skills_dir", cfg.Skills.Dir)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(configDir string) (*Config, error) {
	var raw WeftYAMLConfig
	if err := loadYAML(configDir, "weft.yaml", &raw); err != nil {
		return nil, NewLoadError("weft.yaml", err)
	}

	// Start with defaults, then merge user config on top so unset fields
	// keep their default values.
	server := DefaultServerConfig()
	if raw.Server != nil {
		if err := mergo.Merge(server, raw.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}
	queue := DefaultQueueConfig()
	if raw.Queue != nil {
		if err := mergo.Merge(queue, raw.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	bus := DefaultBusConfig()
	if raw.Bus != nil {
		if err := mergo.Merge(bus, raw.Bus, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge bus config: %w", err)
		}
	}
	llm := DefaultLLMConfig()
	if raw.LLM != nil {
		if err := mergo.Merge(llm, raw.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	skills := raw.Skills
	if skills == nil {
		skills = &SkillsConfig{}
	}

	return &Config{
		configDir: configDir,
		Server:    server,
		Queue:     queue,
		Bus:       bus,
		LLM:       llm,
		Skills:    skills,
	}, nil
}

// validate performs cross-field validation on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return NewValidationError("server", "server", "port", ErrInvalidValue)
	}

	switch cfg.Bus.Backend {
	case BusPostgres:
	case BusRedis:
		if cfg.Bus.RedisAddr == "" {
			return NewValidationError("bus", string(BusRedis), "redis_addr", ErrMissingRequiredField)
		}
	default:
		return NewValidationError("bus", string(cfg.Bus.Backend), "backend", ErrInvalidValue)
	}

	if cfg.Queue.WorkerCount <= 0 {
		return NewValidationError("queue", "queue", "worker_count", ErrInvalidValue)
	}
	if cfg.Queue.MaxConcurrentRuns <= 0 {
		return NewValidationError("queue", "queue", "max_concurrent_runs", ErrInvalidValue)
	}
	if cfg.Queue.HeartbeatInterval >= cfg.Queue.OrphanThreshold {
		return NewValidationError("queue", "queue", "heartbeat_interval",
			fmt.Errorf("%w: must be shorter than orphan_threshold", ErrInvalidValue))
	}

	if cfg.LLM.DefaultModel == "" {
		return NewValidationError("llm", "llm", "default_model", ErrMissingRequiredField)
	}

	return nil
}

func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}
