package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/store"
)

// testSetup creates an in-memory store and default config for testing.
func testSetup(t *testing.T) *Handlers {
	t.Helper()
	return NewHandlers(store.NewMemory(), config.DefaultConfig())
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func decodeSuccess(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.False(t, result.IsError, "unexpected error result: %s", resultText(t, result))
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	return out
}

func errorCode(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.True(t, result.IsError, "expected error result, got success: %s", resultText(t, result))
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	return payload.Error.Code
}

func create(t *testing.T, h *Handlers, values ...string) {
	t.Helper()
	for _, v := range values {
		result, err := h.HandleCreate(context.Background(), makeRequest(map[string]any{"value": v}))
		require.NoError(t, err)
		decodeSuccess(t, result)
	}
}

func dataValues(t *testing.T, out map[string]any) []string {
	t.Helper()
	data := out["data"].([]any)
	values := make([]string, len(data))
	for i, d := range data {
		values[i] = d.(map[string]any)["value"].(string)
	}
	return values
}

func TestHandleCreate(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleCreate(context.Background(), makeRequest(map[string]any{"value": "level"}))
	require.NoError(t, err)

	out := decodeSuccess(t, result)
	require.Equal(t, "level", out["value"])
	require.Equal(t, true, out["properties"].(map[string]any)["is_palindrome"])
}

func TestHandleCreate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		code string
	}{
		{name: "missing", args: map[string]any{}, code: "INVALID_REQUEST"},
		{name: "empty", args: map[string]any{"value": ""}, code: "INVALID_REQUEST"},
		{name: "number", args: map[string]any{"value": 12}, code: "INVALID_TYPE"},
		{name: "object", args: map[string]any{"value": map[string]any{"a": 1}}, code: "INVALID_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testSetup(t)
			result, err := h.HandleCreate(context.Background(), makeRequest(tt.args))
			require.NoError(t, err)
			require.Equal(t, tt.code, errorCode(t, result))
		})
	}
}

func TestHandleCreate_Duplicate(t *testing.T) {
	h := testSetup(t)
	create(t, h, "hello")

	result, err := h.HandleCreate(context.Background(), makeRequest(map[string]any{"value": "hello"}))
	require.NoError(t, err)
	require.Equal(t, "ALREADY_EXISTS", errorCode(t, result))
}

func TestHandleFetchAndDelete(t *testing.T) {
	h := testSetup(t)
	ctx := context.Background()
	create(t, h, "noon")

	result, err := h.HandleFetch(ctx, makeRequest(map[string]any{"value": "noon"}))
	require.NoError(t, err)
	require.Equal(t, "noon", decodeSuccess(t, result)["value"])

	result, err = h.HandleDelete(ctx, makeRequest(map[string]any{"value": "noon"}))
	require.NoError(t, err)
	require.Equal(t, true, decodeSuccess(t, result)["deleted"])

	result, err = h.HandleFetch(ctx, makeRequest(map[string]any{"value": "noon"}))
	require.NoError(t, err)
	require.Equal(t, "NOT_FOUND", errorCode(t, result))

	result, err = h.HandleDelete(ctx, makeRequest(map[string]any{"value": "noon"}))
	require.NoError(t, err)
	require.Equal(t, "NOT_FOUND", errorCode(t, result))
}

func TestHandleList(t *testing.T) {
	h := testSetup(t)
	create(t, h, "racecar", "hello", "Hello World", "noon")

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{name: "all", args: map[string]any{}, want: []string{"racecar", "hello", "Hello World", "noon"}},
		{name: "palindromes", args: map[string]any{"is_palindrome": true}, want: []string{"racecar", "noon"}},
		{name: "non-palindromes", args: map[string]any{"is_palindrome": false}, want: []string{"hello", "Hello World"}},
		{name: "length", args: map[string]any{"min_length": 5, "max_length": 7}, want: []string{"racecar", "hello"}},
		{name: "words", args: map[string]any{"word_count": 2}, want: []string{"Hello World"}},
		{name: "contains", args: map[string]any{"contains_character": "H"}, want: []string{"Hello World"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleList(context.Background(), makeRequest(tt.args))
			require.NoError(t, err)
			out := decodeSuccess(t, result)
			require.Equal(t, tt.want, dataValues(t, out))
			require.Equal(t, float64(len(tt.want)), out["count"])
		})
	}
}

func TestHandleList_LooseArgs(t *testing.T) {
	h := testSetup(t)
	create(t, h, "racecar", "hello", "Hello World", "noon")
	all := []string{"racecar", "hello", "Hello World", "noon"}

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{name: "malformed min length skipped", args: map[string]any{"min_length": "abc"}, want: all},
		{name: "fractional length truncates", args: map[string]any{"min_length": 5.7}, want: []string{"racecar", "hello", "Hello World"}},
		{name: "numeric string", args: map[string]any{"max_length": "4"}, want: []string{"noon"}},
		{name: "palindrome as string", args: map[string]any{"is_palindrome": "true"}, want: []string{"racecar", "noon"}},
		{name: "non-string character skipped", args: map[string]any{"contains_character": 5}, want: all},
		{name: "null skipped", args: map[string]any{"word_count": nil}, want: all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleList(context.Background(), makeRequest(tt.args))
			require.NoError(t, err)
			require.False(t, result.IsError)
			out := decodeSuccess(t, result)
			require.Equal(t, tt.want, dataValues(t, out))
		})
	}
}

func TestHandleList_EchoesFilters(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleList(context.Background(), makeRequest(map[string]any{"min_length": "abc", "is_palindrome": true}))
	require.NoError(t, err)

	out := decodeSuccess(t, result)
	require.Equal(t, map[string]any{"min_length": "abc", "is_palindrome": true}, out["filters_applied"])
}

func TestHandleQuery(t *testing.T) {
	h := testSetup(t)
	create(t, h, "racecar", "hello", "noon", "zebra")

	result, err := h.HandleQuery(context.Background(), makeRequest(map[string]any{"query": "strings containing the letter z"}))
	require.NoError(t, err)

	out := decodeSuccess(t, result)
	require.Equal(t, []string{"zebra"}, dataValues(t, out))
	interpreted := out["interpreted_query"].(map[string]any)
	require.Equal(t, "strings containing the letter z", interpreted["original"])
	require.Equal(t, map[string]any{"contains_character": "z"}, interpreted["parsed_filters"])
}

func TestHandleQuery_Errors(t *testing.T) {
	h := testSetup(t)

	result, err := h.HandleQuery(context.Background(), makeRequest(map[string]any{}))
	require.NoError(t, err)
	require.Equal(t, "INVALID_REQUEST", errorCode(t, result))

	result, err = h.HandleQuery(context.Background(), makeRequest(map[string]any{"query": "anything at all"}))
	require.NoError(t, err)
	require.Equal(t, "UNPARSEABLE_QUERY", errorCode(t, result))
}

func TestErrorResult_HidesInternalDetails(t *testing.T) {
	result := errorResult(context.Canceled)
	require.True(t, result.IsError)
	require.NotContains(t, resultText(t, result), "details")
	require.Equal(t, "INTERNAL", errorCode(t, result))
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"string_create", "bogus_tool", "bogus"})
	require.Equal(t, []string{"bogus_tool", "bogus"}, unknown)
	require.Empty(t, ValidateDisabledTools(AllToolNames()))
}

func TestAllToolNames(t *testing.T) {
	require.Equal(t, []string{"string_create", "string_delete", "string_fetch", "string_list", "string_query"}, AllToolNames())
}

func TestEnabledTools(t *testing.T) {
	require.Equal(t, AllToolNames(), enabledTools(nil))
	require.Equal(t,
		[]string{"string_create", "string_fetch", "string_list", "string_query"},
		enabledTools([]string{"string_delete", "unknown_tool"}),
	)
}

func TestNewServer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DisabledTools = []string{"string_delete"}

	require.NotNil(t, NewServer(store.NewMemory(), cfg, "test"))
}
