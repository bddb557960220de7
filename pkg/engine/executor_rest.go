package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/weftworks/weft/pkg/templates"
	"github.com/weftworks/weft/pkg/version"
)

const (
	// defaultCallbackDeadline bounds how long a paused run waits for its
	// callback when rest_config omits timeout_ms.
	defaultCallbackDeadline = 60 * time.Second

	// restDispatchTimeout bounds the outbound fire-and-forget request itself.
	restDispatchTimeout = 15 * time.Second
)

// restExecutor dispatches an asynchronous request and pauses the run until
// the external service calls back with the correlation token.
type restExecutor struct {
	recorder CallbackRecorder
	client   *http.Client
	logger   *slog.Logger
}

func (e *restExecutor) Execute(ctx context.Context, inv *Invocation) (*Result, error) {
	s := inv.Skill
	cfg := s.Rest

	url, err := templates.Compile(cfg.URLTemplate).Render(inv.DataStore)
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("rendering url_template: %w", err))
	}

	token := uuid.NewString()
	deadline := time.Now().Add(defaultCallbackDeadline)
	if cfg.TimeoutMS > 0 {
		deadline = time.Now().Add(time.Duration(cfg.TimeoutMS) * time.Millisecond)
	}

	// The record must exist before the request leaves: a fast callback may
	// arrive before the dispatch returns.
	if err := e.recorder.RecordCallback(ctx, &CallbackRecord{
		ThreadID:  inv.Run.ThreadID,
		Token:     token,
		SkillName: s.Name,
		Deadline:  deadline,
	}); err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("recording callback: %w", err))
	}

	body, err := e.requestBody(cfg.Body, token, inv)
	if err != nil {
		return nil, execError(s.Name, "", err)
	}

	method := strings.ToUpper(cfg.Method)
	if method == "" {
		method = http.MethodPost
	}
	reqCtx, cancel := context.WithTimeout(ctx, restDispatchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, method, url, strings.NewReader(body))
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())
	req.Header.Set("X-Correlation-Token", token)
	for name, tmpl := range cfg.Headers {
		value, err := templates.Compile(tmpl).Render(inv.DataStore)
		if err != nil {
			return nil, execError(s.Name, "", fmt.Errorf("rendering header %s: %w", name, err))
		}
		req.Header.Set(name, value)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, execError(s.Name, InnerHTTPNon2xx, fmt.Errorf("dispatching %s %s: %w", method, url, err))
	}
	snippet := readSnippet(resp.Body, 256)
	resp.Body.Close()

	// Fire-and-forget: the response is recorded, not awaited. Non-2xx is
	// surfaced in history; the deadline sweep turns a dead endpoint into
	// rest_timeout.
	if resp.StatusCode >= 300 {
		e.logger.Warn("REST dispatch returned non-2xx",
			"skill", s.Name, "thread_id", inv.Run.ThreadID, "status", resp.StatusCode)
	}

	return &Result{
		Pause:            true,
		CallbackToken:    token,
		CallbackDeadline: deadline,
		Note:             fmt.Sprintf("%s dispatched %s %s: %d %s", s.Name, method, url, resp.StatusCode, snippet),
	}, nil
}

// requestBody renders the configured body template, or falls back to a JSON
// envelope carrying the token and the resolved inputs.
func (e *restExecutor) requestBody(tmpl, token string, inv *Invocation) (string, error) {
	if tmpl != "" {
		body, err := templates.Compile(tmpl).Render(inv.DataStore)
		if err != nil {
			return "", fmt.Errorf("rendering body: %w", err)
		}
		return body, nil
	}
	raw, err := json.Marshal(map[string]any{
		"correlation_token": token,
		"inputs":            inv.Inputs,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request body: %w", err)
	}
	return string(raw), nil
}

func readSnippet(r io.Reader, limit int64) string {
	raw, _ := io.ReadAll(io.LimitReader(r, limit))
	return strings.TrimSpace(string(raw))
}
