package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how runs are polled, claimed, and driven.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and drives runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of runs being driven across
	// ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RunTimeout is the maximum time a single engine drive may take. A
	// drive ends at the next pause or terminal state, so this bounds one
	// claim, not the run's total lifetime.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active drives
	// to complete during shutdown. Should match RunTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned runs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat before
	// it is requeued for another replica.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// CallbackSweepInterval is how often to requeue paused runs whose
	// callback deadline expired.
	CallbackSweepInterval time.Duration `yaml:"callback_sweep_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		CallbackSweepInterval:   30 * time.Second,
	}
}
