package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/ops"
	"github.com/hpungsan/sift/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store store.Store
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st store.Store, cfg *config.Config) *Handlers {
	return &Handlers{store: st, cfg: cfg}
}

// Request types for each tool

// CreateRequest represents the arguments for create. Value stays untyped so a
// non-string can be reported as INVALID_TYPE instead of a decode failure.
type CreateRequest struct {
	Value any `json:"value"`
}

// ValueRequest represents the arguments for fetch and delete.
type ValueRequest struct {
	Value string `json:"value"`
}

// QueryRequest represents the arguments for query.
type QueryRequest struct {
	Query string `json:"query"`
}

// Handler implementations

// HandleCreate handles the string_create tool call.
func (h *Handlers) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CreateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	var value *string
	switch v := input.Value.(type) {
	case nil:
	case string:
		value = &v
	default:
		return errorResult(errors.NewInvalidType("value", "string")), nil
	}

	rec, err := ops.Create(ctx, h.store, h.cfg, ops.CreateInput{Value: value})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(rec)
}

// HandleFetch handles the string_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ValueRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	rec, err := ops.Fetch(ctx, h.store, ops.FetchInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(rec)
}

// HandleDelete handles the string_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ValueRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	out, err := ops.Delete(ctx, h.store, ops.DeleteInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(out)
}

// HandleList handles the string_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Arguments go to the filter engine untyped, so a malformed predicate is
	// skipped the same way it is for query parameters.
	spec, err := decode[filter.Spec](req)
	if err != nil {
		return errorResult(err), nil
	}

	out, err := ops.List(ctx, h.store, ops.ListInput{Filters: spec})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(out)
}

// HandleQuery handles the string_query tool call.
func (h *Handlers) HandleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[QueryRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	out, err := ops.Query(ctx, h.store, ops.QueryInput{Query: input.Query})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(out)
}

// errorResult converts an error to an MCP error result.
func errorResult(err error) *mcp.CallToolResult {
	sErr := errors.As(err)

	errorObj := map[string]any{
		"code":    sErr.Code,
		"message": sErr.Message,
		"status":  sErr.Status,
	}
	// Internal details may carry SQL errors or paths
	if sErr.Code != errors.ErrInternal && len(sErr.Details) > 0 {
		errorObj["details"] = sErr.Details
	}

	content, _ := json.Marshal(map[string]any{"error": errorObj})
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult wraps data in an MCP success result.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
