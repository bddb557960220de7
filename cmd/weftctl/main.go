// weftctl is a small operator CLI for the weft HTTP API.
//
// Usage:
//
//	weftctl [-api URL] skills reload
//	weftctl [-api URL] runs list [--status pending|running|paused|completed|error]
//	weftctl [-api URL] runs rerun <thread_id>
//
// The API base URL defaults to the WEFT_API environment variable, then
// http://localhost:8080.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	exitOK           = 0
	exitUsage        = 1
	exitRuntime      = 2
	exitNotFound     = 3
	exitUnauthorized = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("weftctl", flag.ContinueOnError)
	flags.Usage = usage
	apiBase := flags.String("api", defaultAPIBase(), "Base URL of the weft API")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	rest := flags.Args()
	if len(rest) == 0 {
		usage()
		return exitUsage
	}

	client := &apiClient{base: strings.TrimRight(*apiBase, "/"), http: &http.Client{Timeout: 30 * time.Second}}

	switch rest[0] {
	case "skills":
		return runSkills(client, rest[1:])
	case "runs":
		return runRuns(client, rest[1:])
	default:
		fmt.Fprintf(os.Stderr, "weftctl: unknown command %q\n", rest[0])
		usage()
		return exitUsage
	}
}

func defaultAPIBase() string {
	if base := os.Getenv("WEFT_API"); base != "" {
		return base
	}
	return "http://localhost:8080"
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: weftctl [-api URL] <command>

Commands:
  skills reload                 Reload the skill registry from disk and database
  runs list [--status STATUS]   List runs, optionally filtered by status
  runs rerun <thread_id>        Fork a new run from an existing thread
`)
}

func runSkills(client *apiClient, args []string) int {
	if len(args) != 1 || args[0] != "reload" {
		usage()
		return exitUsage
	}

	var resp struct {
		Message     string `json:"message"`
		Diagnostics []struct {
			Name   string `json:"name"`
			Source string `json:"source"`
			Error  string `json:"error"`
		} `json:"diagnostics"`
	}
	if code := client.do(http.MethodPost, "/api/v1/skills/reload", nil, &resp); code != exitOK {
		return code
	}

	fmt.Println(resp.Message)
	for _, diag := range resp.Diagnostics {
		fmt.Printf("  warning: %s (%s): %s\n", diag.Name, diag.Source, diag.Error)
	}
	return exitOK
}

func runRuns(client *apiClient, args []string) int {
	if len(args) == 0 {
		usage()
		return exitUsage
	}

	switch args[0] {
	case "list":
		return runRunsList(client, args[1:])
	case "rerun":
		return runRunsRerun(client, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "weftctl: unknown runs subcommand %q\n", args[0])
		usage()
		return exitUsage
	}
}

func runRunsList(client *apiClient, args []string) int {
	flags := flag.NewFlagSet("runs list", flag.ContinueOnError)
	status := flags.String("status", "", "Filter by run status")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	path := "/api/v1/runs"
	if *status != "" {
		path += "?status=" + url.QueryEscape(*status)
	}

	var resp struct {
		Runs []struct {
			ID          string `json:"id"`
			RunName     string `json:"run_name"`
			Status      string `json:"status"`
			OwnerID     string `json:"owner_id"`
			WorkspaceID string `json:"workspace_id"`
			CreatedAt   string `json:"created_at"`
		} `json:"runs"`
		TotalCount int `json:"total_count"`
	}
	if code := client.do(http.MethodGet, path, nil, &resp); code != exitOK {
		return code
	}

	fmt.Printf("%-36s  %-10s  %-12s  %-20s  %s\n", "THREAD", "STATUS", "WORKSPACE", "NAME", "CREATED")
	for _, r := range resp.Runs {
		fmt.Printf("%-36s  %-10s  %-12s  %-20s  %s\n", r.ID, r.Status, r.WorkspaceID, r.RunName, r.CreatedAt)
	}
	fmt.Printf("%d run(s)\n", resp.TotalCount)
	return exitOK
}

func runRunsRerun(client *apiClient, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "weftctl: runs rerun requires exactly one thread_id")
		return exitUsage
	}
	threadID := args[0]

	var resp struct {
		ThreadID       string `json:"thread_id"`
		ParentThreadID string `json:"parent_thread_id"`
		Status         string `json:"status"`
	}
	path := "/api/v1/runs/" + url.PathEscape(threadID) + "/rerun"
	if code := client.do(http.MethodPost, path, nil, &resp); code != exitOK {
		return code
	}

	fmt.Printf("rerun queued: %s (parent %s)\n", resp.ThreadID, resp.ParentThreadID)
	return exitOK
}

type apiClient struct {
	base string
	http *http.Client
}

// do issues a request and decodes the JSON response into out. It returns a
// process exit code rather than an error so callers can pass it straight up.
func (c *apiClient) do(method, path string, body any, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "weftctl: encoding request: %v\n", err)
			return exitRuntime
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weftctl: building request: %v\n", err)
		return exitRuntime
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weftctl: %v\n", err)
		return exitRuntime
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weftctl: reading response: %v\n", err)
		return exitRuntime
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		fmt.Fprintf(os.Stderr, "weftctl: not found: %s\n", apiErrorMessage(raw))
		return exitNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		fmt.Fprintf(os.Stderr, "weftctl: unauthorized: %s\n", apiErrorMessage(raw))
		return exitUnauthorized
	case resp.StatusCode >= 400:
		fmt.Fprintf(os.Stderr, "weftctl: %s: %s\n", resp.Status, apiErrorMessage(raw))
		return exitRuntime
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			fmt.Fprintf(os.Stderr, "weftctl: decoding response: %v\n", err)
			return exitRuntime
		}
	}
	return exitOK
}

func apiErrorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
