package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mcpgolang "github.com/metoro-io/mcp-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

func TestDirectExecutorReturnsJSON(t *testing.T) {
	pool, _ := newTestPool(t, 1, healthySession)
	exec := NewDirectExecutor(pool, logger.NewNoOpLogger(), "upload_blob")

	output := exec.Execute(context.Background(), "upload_blob", map[string]interface{}{
		"content":   "summary",
		"container": "news",
	})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, "ok", decoded["status"])
}

func TestDirectExecutorNeverRaises(t *testing.T) {
	pool, _ := newTestPool(t, 1, func() *fakeSession {
		s := healthySession()
		s.callTool = func(ctx context.Context, name string, arguments any) (*mcpgolang.ToolResponse, error) {
			return nil, errors.New("storage unavailable")
		}
		return s
	})
	exec := NewDirectExecutor(pool, logger.NewNoOpLogger(), "upload_blob")

	output := exec.Execute(context.Background(), "upload_blob", nil)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Contains(t, decoded["error"], "upload_blob")
}

func TestDirectExecutorAliasesUploadContent(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "text alias maps onto content",
			args:     map[string]interface{}{"text": "summary"},
			expected: "summary",
		},
		{
			name:     "value alias maps onto content",
			args:     map[string]interface{}{"value": "summary"},
			expected: "summary",
		},
		{
			name:     "existing content wins over aliases",
			args:     map[string]interface{}{"content": "original", "text": "other"},
			expected: "original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured map[string]interface{}
			pool, _ := newTestPool(t, 1, func() *fakeSession {
				s := healthySession()
				s.callTool = func(ctx context.Context, name string, arguments any) (*mcpgolang.ToolResponse, error) {
					captured = arguments.(map[string]interface{})
					return mcpgolang.NewToolResponse(mcpgolang.NewTextContent(`{"status":"ok"}`)), nil
				}
				return s
			})
			exec := NewDirectExecutor(pool, logger.NewNoOpLogger(), "upload_blob")

			exec.Execute(context.Background(), "upload_blob", tt.args)

			assert.Equal(t, tt.expected, captured[uploadContentField])
		})
	}
}

func TestDirectExecutorSkipsAliasingForOtherTools(t *testing.T) {
	var captured map[string]interface{}
	pool, _ := newTestPool(t, 1, func() *fakeSession {
		s := &fakeSession{
			listTools: func(ctx context.Context, cursor *string) (*mcpgolang.ToolsResponse, error) {
				return &mcpgolang.ToolsResponse{Tools: []mcpgolang.ToolRetType{listedTool("list_blobs")}}, nil
			},
		}
		s.callTool = func(ctx context.Context, name string, arguments any) (*mcpgolang.ToolResponse, error) {
			captured = arguments.(map[string]interface{})
			return mcpgolang.NewToolResponse(mcpgolang.NewTextContent(`{"status":"ok"}`)), nil
		}
		return s
	})
	exec := NewDirectExecutor(pool, logger.NewNoOpLogger(), "upload_blob")

	exec.Execute(context.Background(), "list_blobs", map[string]interface{}{"text": "news"})

	_, hasContent := captured[uploadContentField]
	assert.False(t, hasContent)
	assert.Equal(t, "news", captured["text"])
}
