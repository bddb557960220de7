package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/weftworks/weft/pkg/credentials"
	"github.com/weftworks/weft/pkg/engine/pipeline"
	"github.com/weftworks/weft/pkg/skills"
	"github.com/weftworks/weft/pkg/templates"
)

// actionExecutor runs the synchronous action sub-handlers. The workflow
// blocks until the handler returns; action_config.timeout_ms bounds it.
type actionExecutor struct {
	functions *FunctionTable
	queries   pipeline.QueryRunner
	client    *http.Client
	pipelines *pipeline.Runner
}

func (e *actionExecutor) Execute(ctx context.Context, inv *Invocation) (*Result, error) {
	cfg := inv.Skill.Action
	if cfg.TimeoutMS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutMS)*time.Millisecond)
		defer cancel()
	}

	switch cfg.Type {
	case skills.ActionPythonFunction:
		return e.runFunction(ctx, inv)
	case skills.ActionDataQuery:
		return e.runQuery(ctx, inv)
	case skills.ActionHTTPCall:
		return e.runHTTP(ctx, inv)
	case skills.ActionScript:
		return e.runScript(ctx, inv)
	case skills.ActionDataPipeline:
		return e.runPipeline(ctx, inv)
	default:
		return nil, execError(inv.Skill.Name, "", fmt.Errorf("unknown action type %q", cfg.Type))
	}
}

func (e *actionExecutor) runFunction(ctx context.Context, inv *Invocation) (*Result, error) {
	cfg := inv.Skill.Action
	fn, err := e.functions.Action(cfg.Module, cfg.Function)
	if err != nil {
		return nil, execError(inv.Skill.Name, "", err)
	}
	outputs, err := fn(ctx, inv.Inputs, inv.Run)
	if err != nil {
		return nil, execError(inv.Skill.Name, "", err)
	}
	return &Result{Outputs: outputs}, nil
}

func (e *actionExecutor) runQuery(ctx context.Context, inv *Invocation) (*Result, error) {
	cfg := inv.Skill.Action
	outputs, err := e.queries.RunQuery(ctx, cfg.CredentialRef, cfg.Source, cfg.Collection, cfg.Query, inv.Inputs)
	if err != nil {
		inner := InnerDBQueryFailed
		if errors.Is(err, credentials.ErrNotFound) {
			inner = InnerCredentialNotFound
		}
		return nil, execError(inv.Skill.Name, inner, err)
	}
	return &Result{Outputs: outputs}, nil
}

func (e *actionExecutor) runHTTP(ctx context.Context, inv *Invocation) (*Result, error) {
	s := inv.Skill
	cfg := s.Action

	url, err := templates.Compile(cfg.URLTemplate).Render(inv.DataStore)
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("rendering url_template: %w", err))
	}
	method := strings.ToUpper(cfg.Method)
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if cfg.Body != "" {
		rendered, err := templates.Compile(cfg.Body).Render(inv.DataStore)
		if err != nil {
			return nil, execError(s.Name, "", fmt.Errorf("rendering body: %w", err))
		}
		body = strings.NewReader(rendered)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("building request: %w", err))
	}
	for name, tmpl := range cfg.Headers {
		value, err := templates.Compile(tmpl).Render(inv.DataStore)
		if err != nil {
			return nil, execError(s.Name, "", fmt.Errorf("rendering header %s: %w", name, err))
		}
		req.Header.Set(name, value)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, execError(s.Name, InnerHTTPNon2xx, fmt.Errorf("%s %s: %w", method, url, err))
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("reading response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, execError(s.Name, InnerHTTPNon2xx,
			fmt.Errorf("%s %s returned %d: %s", method, url, resp.StatusCode, readableSnippet(raw)))
	}

	var response any
	if err := json.Unmarshal(raw, &response); err != nil {
		response = string(raw)
	}
	return &Result{Outputs: map[string]any{
		"response":    response,
		"status_code": resp.StatusCode,
	}}, nil
}

// runScript spawns the configured interpreter, feeds the resolved inputs as
// JSON on stdin and expects a single JSON object on stdout. Relative script
// paths resolve against the skill's own directory.
func (e *actionExecutor) runScript(ctx context.Context, inv *Invocation) (*Result, error) {
	s := inv.Skill
	cfg := s.Action

	script := cfg.Script
	if !filepath.IsAbs(script) && s.Source.Dir != "" {
		script = filepath.Join(s.Source.Dir, script)
	}
	stdin, err := json.Marshal(inv.Inputs)
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("encoding inputs: %w", err))
	}

	args := append([]string{script}, cfg.Args...)
	cmd := exec.CommandContext(ctx, cfg.Interpreter, args...)
	cmd.Dir = s.Source.Dir
	cmd.Stdin = bytes.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, execError(s.Name, InnerSubprocessNonzero,
			fmt.Errorf("%s %s: %w: %s", cfg.Interpreter, script, err, readableSnippet(stderr.Bytes())))
	}

	var outputs map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &outputs); err != nil {
		return nil, execError(s.Name, "",
			fmt.Errorf("%s did not print a JSON object: %s", script, readableSnippet(stdout.Bytes())))
	}
	return &Result{Outputs: outputs}, nil
}

func (e *actionExecutor) runPipeline(ctx context.Context, inv *Invocation) (*Result, error) {
	s := inv.Skill
	final, err := e.pipelines.Run(ctx, s.Pipeline(), inv.Inputs)
	if err != nil {
		return nil, execError(s.Name, InnerPipelineStepFailed, err)
	}
	return &Result{Outputs: final}, nil
}

func readableSnippet(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) > limit {
		return text[:limit] + "…"
	}
	return text
}
