// Package events provides the pub/sub bus that fans run lifecycle events out
// to API subscribers and other engine processes. Two durable backends are
// provided (Postgres NOTIFY/LISTEN and Redis pub/sub) plus an in-process bus
// for tests and embedded use. Delivery is at-most-once: subscribers are
// ephemeral and a subscriber joining after a publish does not observe it.
package events

import (
	"context"
	"time"
)

// ChannelRunEvents is the firehose channel every checkpoint save publishes to.
const ChannelRunEvents = "run_events"

// ChannelRunControl carries control signals (cancellation) to the worker
// currently driving a run.
const ChannelRunControl = "run_control"

// ControlActionCancel asks the driving worker to stop the run.
const ControlActionCancel = "cancel"

// ThreadChannel returns the per-thread channel for a run's events.
func ThreadChannel(threadID string) string {
	return "run:" + threadID
}

// ControlEvent is the message envelope on ChannelRunControl.
type ControlEvent struct {
	ThreadID string `json:"thread_id"`
	Action   string `json:"action"`
}

// Metadata is the denormalized run snapshot carried by every event.
type Metadata struct {
	ActiveSkill string `json:"active_skill,omitempty"`
	Status      string `json:"status"`
}

// RunEvent is the message envelope on run channels. Consumers must tolerate
// unknown fields.
type RunEvent struct {
	ThreadID     string    `json:"thread_id"`
	CheckpointID string    `json:"checkpoint_id"`
	TS           time.Time `json:"ts"`
	Metadata     Metadata  `json:"metadata"`
}

// Handler receives the raw JSON payload published on a channel.
type Handler func(ctx context.Context, payload []byte)

// Bus publishes JSON-serializable messages to named channels and delivers
// them to live subscribers. Per-channel ordering is FIFO within a single
// publisher; there is no cross-channel ordering.
type Bus interface {
	// Publish serializes message as JSON and delivers it to current
	// subscribers of channel.
	Publish(ctx context.Context, channel string, message any) error

	// Subscribe registers handler for channel until ctx is done or the
	// returned cancel function is called.
	Subscribe(ctx context.Context, channel string, handler Handler) (cancel func(), err error)
}
