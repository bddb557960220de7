// Package llm talks to the LLM sidecar over gRPC and decodes structured
// JSON responses against a declared output schema.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/weftworks/weft/proto"
)

// ErrInvalidOutput marks responses that are not valid JSON or do not conform
// to the declared schema. The engine maps it to the llm_output_invalid kind.
var ErrInvalidOutput = errors.New("llm output invalid")

// Request is a single structured-generation call.
type Request struct {
	ThreadID     string
	SystemPrompt string
	Prompt       string
	Model        string
	Schema       *Schema
}

// Client generates a structured JSON object for a prompt. Implementations
// must be safe for concurrent use across runs.
type Client interface {
	GenerateStructured(ctx context.Context, req *Request) (map[string]any, error)
}

// GRPCClient implements Client against the LLM sidecar.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient dials the sidecar. grpc.NewClient dials lazily; the first
// RPC establishes the connection.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{conn: conn, client: llmv1.NewLLMServiceClient(conn)}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// GenerateStructured implements Client. The decoded object is validated
// against the request schema before it is returned.
func (c *GRPCClient) GenerateStructured(ctx context.Context, req *Request) (map[string]any, error) {
	schemaJSON, err := req.Schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshaling response schema: %w", err)
	}

	resp, err := c.client.GenerateStructured(ctx, &llmv1.GenerateStructuredRequest{
		ThreadId:       req.ThreadID,
		SystemPrompt:   req.SystemPrompt,
		Prompt:         req.Prompt,
		Model:          req.Model,
		ResponseSchema: string(schemaJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC GenerateStructured failed: %w", err)
	}
	if resp.Error != nil && resp.Error.Message != "" {
		return nil, fmt.Errorf("llm service error (%s): %s", resp.Error.Code, resp.Error.Message)
	}

	return DecodeAndValidate(resp.Content, req.Schema)
}

// DecodeAndValidate parses content as JSON and validates it against schema.
// Both failure modes wrap ErrInvalidOutput.
func DecodeAndValidate(content string, schema *Schema) (map[string]any, error) {
	decoded, err := jsonschema.UnmarshalJSON(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", ErrInvalidOutput, err)
	}

	compiled, err := schema.Compile()
	if err != nil {
		return nil, fmt.Errorf("compiling response schema: %w", err)
	}
	if err := compiled.Validate(decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrInvalidOutput)
	}
	return obj, nil
}
