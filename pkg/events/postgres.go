package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// notifyPayloadLimit keeps NOTIFY payloads under PostgreSQL's 8000-byte cap,
// with headroom for protocol overhead.
const notifyPayloadLimit = 7900

// listenCmd represents a LISTEN/UNLISTEN command to be executed by the
// receive loop, which is the sole goroutine that touches the pgx connection.
type listenCmd struct {
	sql    string
	result chan error
}

// PostgresBus is the NOTIFY/LISTEN Bus backend. Publishes ride the shared
// *sql.DB pool; subscriptions share one dedicated pgx connection whose
// receive loop serializes LISTEN/UNLISTEN with WaitForNotification.
//
// Oversized payloads are replaced by a truncation envelope carrying only the
// routing fields; consumers refetch full state from the checkpoint store.
type PostgresBus struct {
	db         *sql.DB
	connString string
	logger     *slog.Logger

	conn   *pgx.Conn
	connMu sync.Mutex

	subsMu sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler // channel → id → handler

	channelsMu sync.RWMutex
	channels   map[string]bool // channels currently LISTENed on

	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewPostgresBus creates the bus. db is the shared pool from
// database.Client.DB(); connString is dialed once for the LISTEN connection.
func NewPostgresBus(db *sql.DB, connString string, logger *slog.Logger) *PostgresBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresBus{
		db:         db,
		connString: connString,
		logger:     logger,
		subs:       make(map[string]map[int]Handler),
		channels:   make(map[string]bool),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving.
func (b *PostgresBus) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, b.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	b.connMu.Lock()
	b.conn = conn
	b.connMu.Unlock()
	b.running.Store(true)

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.cancelLoop = cancel
	b.loopDone = make(chan struct{})
	go func() {
		defer close(b.loopDone)
		b.receiveLoop(loopCtx)
	}()

	b.logger.Info("Postgres event bus started")
	return nil
}

// Publish implements Bus via pg_notify on the shared pool.
func (b *PostgresBus) Publish(ctx context.Context, channel string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshaling event for channel %s: %w", channel, err)
	}
	notifyPayload, err := truncateIfNeeded(payload)
	if err != nil {
		return err
	}
	if _, err := b.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// Subscribe implements Bus. The first subscriber of a channel issues LISTEN;
// the last one leaving issues UNLISTEN.
func (b *PostgresBus) Subscribe(ctx context.Context, channel string, handler Handler) (func(), error) {
	if !b.running.Load() {
		return nil, fmt.Errorf("event bus not started")
	}

	b.subsMu.Lock()
	id := b.nextID
	b.nextID++
	first := len(b.subs[channel]) == 0
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]Handler)
	}
	b.subs[channel][id] = handler
	b.subsMu.Unlock()

	if first {
		if err := b.listen(ctx, channel); err != nil {
			b.subsMu.Lock()
			delete(b.subs[channel], id)
			b.subsMu.Unlock()
			return nil, err
		}
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.subsMu.Lock()
			delete(b.subs[channel], id)
			last := len(b.subs[channel]) == 0
			b.subsMu.Unlock()
			if last {
				if err := b.unlisten(context.Background(), channel); err != nil {
					b.logger.Warn("UNLISTEN failed", "channel", channel, "error", err)
				}
			}
		})
	}
	stop := context.AfterFunc(ctx, cancel)
	return func() { stop(); cancel() }, nil
}

// listen sends LISTEN through the receive loop, the sole pgx user.
func (b *PostgresBus) listen(ctx context.Context, channel string) error {
	b.channelsMu.Lock()
	if b.channels[channel] {
		b.channelsMu.Unlock()
		return nil
	}
	b.channelsMu.Unlock()

	if err := b.execCmd(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", channel, err)
	}
	b.channelsMu.Lock()
	b.channels[channel] = true
	b.channelsMu.Unlock()
	return nil
}

func (b *PostgresBus) unlisten(ctx context.Context, channel string) error {
	b.channelsMu.Lock()
	if !b.channels[channel] {
		b.channelsMu.Unlock()
		return nil
	}
	b.channelsMu.Unlock()

	if !b.running.Load() {
		return nil
	}
	if err := b.execCmd(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return err
	}
	b.channelsMu.Lock()
	delete(b.channels, channel)
	b.channelsMu.Unlock()
	return nil
}

func (b *PostgresBus) execCmd(ctx context.Context, sqlText string) error {
	cmd := listenCmd{sql: sqlText, result: make(chan error, 1)}
	select {
	case b.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop continuously receives notifications and dispatches them to
// local subscribers. It is the sole goroutine touching the pgx connection,
// avoiding the "conn busy" race between WaitForNotification and Exec.
func (b *PostgresBus) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		b.processPendingCmds(ctx)

		b.connMu.Lock()
		conn := b.conn
		b.connMu.Unlock()
		if conn == nil {
			b.reconnect(ctx)
			continue
		}

		// Short timeout so pending LISTEN/UNLISTEN commands get processed.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			b.logger.Error("NOTIFY receive error", "error", err)
			b.reconnect(ctx)
			continue
		}

		b.dispatch(ctx, notification.Channel, []byte(notification.Payload))
	}
}

func (b *PostgresBus) dispatch(ctx context.Context, channel string, payload []byte) {
	b.subsMu.RLock()
	handlers := make([]Handler, 0, len(b.subs[channel]))
	for _, h := range b.subs[channel] {
		handlers = append(handlers, h)
	}
	b.subsMu.RUnlock()
	for _, h := range handlers {
		h(ctx, payload)
	}
}

func (b *PostgresBus) processPendingCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-b.cmdCh:
			b.connMu.Lock()
			conn := b.conn
			b.connMu.Unlock()
			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff
// and re-subscribes every channel.
func (b *PostgresBus) reconnect(ctx context.Context) {
	b.connMu.Lock()
	defer b.connMu.Unlock()

	if b.conn != nil {
		_ = b.conn.Close(ctx)
		b.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, b.connString)
		if err != nil {
			b.logger.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		b.conn = conn

		b.channelsMu.RLock()
		for ch := range b.channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				b.logger.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		b.channelsMu.RUnlock()

		b.logger.Info("Postgres event bus reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// LISTEN connection.
func (b *PostgresBus) Stop(ctx context.Context) {
	b.running.Store(false)
	if b.cancelLoop != nil {
		b.cancelLoop()
	}
	if b.loopDone != nil {
		<-b.loopDone
	}

	b.connMu.Lock()
	defer b.connMu.Unlock()
	if b.conn != nil {
		_ = b.conn.Close(ctx)
		b.conn = nil
	}
}

// truncateIfNeeded returns the payload as-is when it fits the NOTIFY limit,
// otherwise a minimal envelope with the routing fields consumers need to
// refetch full state from the checkpoint store.
func truncateIfNeeded(payload []byte) (string, error) {
	if len(payload) <= notifyPayloadLimit {
		return string(payload), nil
	}

	var routing struct {
		ThreadID     string `json:"thread_id"`
		CheckpointID string `json:"checkpoint_id"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}
	truncated, err := json.Marshal(map[string]any{
		"thread_id":     routing.ThreadID,
		"checkpoint_id": routing.CheckpointID,
		"truncated":     true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncated), nil
}
