package agent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ownway22/Az-AIAgentSvc-MCP/agent"
	"github.com/ownway22/Az-AIAgentSvc-MCP/config"
	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
	"github.com/ownway22/Az-AIAgentSvc-MCP/mcp"
	"github.com/ownway22/Az-AIAgentSvc-MCP/tests/mocks"
)

const testUploadTool = "upload_blob"

func newTestAgent(t *testing.T) (agent.Agent, *mocks.MockChatProvider, *mocks.MockFunctions, *mocks.MockDirect) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockChatProvider(ctrl)
	functions := mocks.NewMockFunctions(ctrl)
	direct := mocks.NewMockDirect(ctrl)

	cfg := &config.AgentConfig{Model: "gpt-4o"}
	a := agent.NewAgent(logger.NewNoOpLogger(), provider, functions, direct, nil, cfg, config.DefaultPersona, testUploadTool)
	return a, provider, functions, direct
}

func TestRunTurnWithoutToolCalls(t *testing.T) {
	a, provider, functions, _ := newTestAgent(t)

	functions.EXPECT().Definitions().Return(nil)
	provider.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req agent.ChatRequest) (agent.ChatResponse, error) {
			assert.Equal(t, "gpt-4o", req.Model)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, agent.MessageRoleSystem, req.Messages[0].Role)
			assert.Equal(t, agent.MessageRoleUser, req.Messages[1].Role)
			assert.Equal(t, "hello", req.Messages[1].Content)
			return agent.ChatResponse{Content: "hi there"}, nil
		})

	answer, history, err := a.RunTurn(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", answer)
	require.Len(t, history, 3)
	assert.Equal(t, agent.MessageRoleAssistant, history[2].Role)
	assert.Equal(t, "hi there", history[2].Content)
}

func TestRunTurnPreservesExistingHistory(t *testing.T) {
	a, provider, functions, _ := newTestAgent(t)

	prior := []agent.Message{
		{Role: agent.MessageRoleSystem, Content: "custom system prompt"},
		{Role: agent.MessageRoleUser, Content: "earlier"},
		{Role: agent.MessageRoleAssistant, Content: "earlier answer"},
	}

	functions.EXPECT().Definitions().Return(nil)
	provider.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req agent.ChatRequest) (agent.ChatResponse, error) {
			require.Len(t, req.Messages, 4)
			assert.Equal(t, "custom system prompt", req.Messages[0].Content)
			return agent.ChatResponse{Content: "done"}, nil
		})

	_, history, err := a.RunTurn(context.Background(), prior, "next question")
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestRunTurnExecutesToolCalls(t *testing.T) {
	a, provider, functions, _ := newTestAgent(t)

	functions.EXPECT().Definitions().Return([]mcp.ToolDefinition{})
	functions.EXPECT().Has("fetch_news").Return(true)
	functions.EXPECT().
		Call(gomock.Any(), "fetch_news", map[string]interface{}{"topic": "ai"}).
		Return(map[string]interface{}{"headline": "big launch"}, nil)

	first := provider.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any()).
		Return(agent.ChatResponse{
			ToolCalls: []agent.ToolCall{{
				ID:   "call-1",
				Type: "function",
				Function: agent.FunctionCall{
					Name:      "fetch_news",
					Arguments: `{"topic":"ai"}`,
				},
			}},
		}, nil)
	provider.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(_ context.Context, req agent.ChatRequest) (agent.ChatResponse, error) {
			last := req.Messages[len(req.Messages)-1]
			assert.Equal(t, agent.MessageRoleTool, last.Role)
			assert.Equal(t, "call-1", last.ToolCallID)
			assert.JSONEq(t, `{"headline":"big launch"}`, last.Content)
			return agent.ChatResponse{Content: "here is the news"}, nil
		})

	answer, _, err := a.RunTurn(context.Background(), nil, "any ai news?")
	require.NoError(t, err)
	assert.Equal(t, "here is the news", answer)
}

func TestRunTurnProviderError(t *testing.T) {
	a, provider, functions, _ := newTestAgent(t)

	functions.EXPECT().Definitions().Return(nil)
	provider.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any()).
		Return(agent.ChatResponse{}, errors.New("service unavailable"))

	answer, history, err := a.RunTurn(context.Background(), nil, "hello")
	require.Error(t, err)
	assert.Empty(t, answer)
	assert.Empty(t, history)
	assert.Contains(t, err.Error(), "chat completion")
}

func TestRunTurnMaxIterations(t *testing.T) {
	a, provider, functions, _ := newTestAgent(t)

	functions.EXPECT().Definitions().Return(nil)
	functions.EXPECT().Has("loop_tool").Return(true).Times(agent.MaxIterations)
	functions.EXPECT().
		Call(gomock.Any(), "loop_tool", gomock.Any()).
		Return(map[string]interface{}{"again": true}, nil).
		Times(agent.MaxIterations)
	provider.EXPECT().
		ChatCompletion(gomock.Any(), gomock.Any()).
		Return(agent.ChatResponse{
			ToolCalls: []agent.ToolCall{{
				ID:       "call-loop",
				Type:     "function",
				Function: agent.FunctionCall{Name: "loop_tool", Arguments: `{}`},
			}},
		}, nil).
		Times(agent.MaxIterations)

	_, _, err := a.RunTurn(context.Background(), nil, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max iterations")
}

func TestExecuteToolsRoutesUploadThroughDirect(t *testing.T) {
	a, _, _, direct := newTestAgent(t)

	direct.EXPECT().
		Execute(gomock.Any(), testUploadTool, map[string]interface{}{"content": "report text"}).
		Return(`{"status":"uploaded"}`)

	results := a.ExecuteTools(context.Background(), []agent.ToolCall{{
		ID:   "call-up",
		Type: "function",
		Function: agent.FunctionCall{
			Name:      testUploadTool,
			Arguments: `{"content":"report text"}`,
		},
	}})

	require.Len(t, results, 1)
	assert.Equal(t, agent.MessageRoleTool, results[0].Role)
	assert.Equal(t, "call-up", results[0].ToolCallID)
	assert.JSONEq(t, `{"status":"uploaded"}`, results[0].Content)
}

func TestExecuteToolsErrorsBecomeToolMessages(t *testing.T) {
	tests := []struct {
		name       string
		toolCall   agent.ToolCall
		setup      func(functions *mocks.MockFunctions)
		wantSubstr string
	}{
		{
			name: "malformed arguments",
			toolCall: agent.ToolCall{
				ID:       "call-bad",
				Function: agent.FunctionCall{Name: "fetch_news", Arguments: `{not json`},
			},
			setup:      func(functions *mocks.MockFunctions) {},
			wantSubstr: "Failed to parse arguments",
		},
		{
			name: "unknown tool",
			toolCall: agent.ToolCall{
				ID:       "call-missing",
				Function: agent.FunctionCall{Name: "no_such_tool", Arguments: `{}`},
			},
			setup: func(functions *mocks.MockFunctions) {
				functions.EXPECT().Has("no_such_tool").Return(false)
			},
			wantSubstr: "not found on the MCP server",
		},
		{
			name: "execution failure",
			toolCall: agent.ToolCall{
				ID:       "call-fail",
				Function: agent.FunctionCall{Name: "fetch_news", Arguments: `{}`},
			},
			setup: func(functions *mocks.MockFunctions) {
				functions.EXPECT().Has("fetch_news").Return(true)
				functions.EXPECT().
					Call(gomock.Any(), "fetch_news", gomock.Any()).
					Return(nil, errors.New("server unreachable"))
			},
			wantSubstr: "server unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, functions, _ := newTestAgent(t)
			tt.setup(functions)

			results := a.ExecuteTools(context.Background(), []agent.ToolCall{tt.toolCall})
			require.Len(t, results, 1)
			assert.Equal(t, agent.MessageRoleTool, results[0].Role)
			assert.Equal(t, tt.toolCall.ID, results[0].ToolCallID)
			assert.Contains(t, results[0].Content, tt.wantSubstr)
		})
	}
}

func TestExecuteToolsContinuesAfterFailure(t *testing.T) {
	a, _, functions, _ := newTestAgent(t)

	functions.EXPECT().Has("broken_tool").Return(true)
	functions.EXPECT().
		Call(gomock.Any(), "broken_tool", gomock.Any()).
		Return(nil, errors.New("boom"))
	functions.EXPECT().Has("fetch_news").Return(true)
	functions.EXPECT().
		Call(gomock.Any(), "fetch_news", gomock.Any()).
		Return(map[string]interface{}{"ok": true}, nil)

	results := a.ExecuteTools(context.Background(), []agent.ToolCall{
		{ID: "c1", Function: agent.FunctionCall{Name: "broken_tool", Arguments: `{}`}},
		{ID: "c2", Function: agent.FunctionCall{Name: "fetch_news", Arguments: `{}`}},
	})

	require.Len(t, results, 2)
	assert.Contains(t, results[0].Content, "Error")
	assert.JSONEq(t, `{"ok":true}`, results[1].Content)
}
