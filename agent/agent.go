package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ownway22/Az-AIAgentSvc-MCP/config"
	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
	"github.com/ownway22/Az-AIAgentSvc-MCP/mcp"
	"github.com/ownway22/Az-AIAgentSvc-MCP/otel"
)

// MaxIterations limits the number of agent loop iterations per turn.
const MaxIterations = 10

// ChatRequest is the payload sent to the LLM collaborator.
type ChatRequest struct {
	Model    string               `json:"model"`
	Messages []Message            `json:"messages"`
	Tools    []mcp.ToolDefinition `json:"tools,omitempty"`
}

// ChatResponse is the LLM collaborator's answer for one request.
type ChatResponse struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ChatProvider is the narrow interface to the hosted LLM agent service. The
// run/polling protocol behind it is not this repository's concern.
//
//go:generate mockgen -source=agent.go -destination=../tests/mocks/agent.go -package=mocks
type ChatProvider interface {
	ChatCompletion(ctx context.Context, request ChatRequest) (ChatResponse, error)
}

// Functions is the callable view of the discovered remote tools.
type Functions interface {
	Has(name string) bool
	Call(ctx context.Context, name string, args map[string]interface{}) (map[string]interface{}, error)
	Definitions() []mcp.ToolDefinition
}

// Direct is the bypass executor for tools needing extra argument massaging.
type Direct interface {
	Execute(ctx context.Context, name string, args map[string]interface{}) string
}

// Agent drives one conversational turn end to end, executing any tool calls
// the LLM requests.
type Agent interface {
	RunTurn(ctx context.Context, history []Message, userText string) (string, []Message, error)
	ExecuteTools(ctx context.Context, toolCalls []ToolCall) []Message
}

// Ensure agentImpl implements Agent interface at compile time
var _ Agent = (*agentImpl)(nil)

type agentImpl struct {
	logger     logger.Logger
	provider   ChatProvider
	functions  Functions
	direct     Direct
	telemetry  otel.OpenTelemetry
	model      string
	uploadTool string
	persona    config.Persona
}

// NewAgent creates a new Agent instance. telemetry may be nil.
func NewAgent(log logger.Logger, provider ChatProvider, functions Functions, direct Direct, telemetry otel.OpenTelemetry, cfg *config.AgentConfig, persona config.Persona, uploadTool string) Agent {
	return &agentImpl{
		logger:     log,
		provider:   provider,
		functions:  functions,
		direct:     direct,
		telemetry:  telemetry,
		model:      cfg.Model,
		uploadTool: uploadTool,
		persona:    persona,
	}
}

// RunTurn appends the user message to the history, loops provider calls and
// tool executions until the LLM stops requesting tools, and returns the final
// assistant text together with the updated history.
func (a *agentImpl) RunTurn(ctx context.Context, history []Message, userText string) (string, []Message, error) {
	messages := history
	if len(messages) == 0 {
		messages = append(messages, Message{Role: MessageRoleSystem, Content: a.persona.Instructions})
	}
	messages = append(messages, Message{Role: MessageRoleUser, Content: userText})

	request := ChatRequest{
		Model:    a.model,
		Messages: messages,
		Tools:    a.functions.Definitions(),
	}

	for iteration := 0; iteration < MaxIterations; iteration++ {
		a.logger.Debug("agent loop iteration", "iteration", iteration+1, "messages", len(request.Messages))

		response, err := a.provider.ChatCompletion(ctx, request)
		if err != nil {
			a.logger.Error("failed to get agent response", err)
			return "", history, fmt.Errorf("chat completion: %w", err)
		}

		if len(response.ToolCalls) == 0 {
			messages = append(request.Messages, Message{Role: MessageRoleAssistant, Content: response.Content})
			a.logger.Debug("agent loop completed", "iterations", iteration+1)
			return response.Content, messages, nil
		}

		a.logger.Debug("executing tool calls", "count", len(response.ToolCalls))
		toolResults := a.ExecuteTools(ctx, response.ToolCalls)

		request.Messages = append(request.Messages, Message{
			Role:      MessageRoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})
		request.Messages = append(request.Messages, toolResults...)
	}

	err := fmt.Errorf("max iterations reached: %d", MaxIterations)
	a.logger.Error("agent loop reached maximum iterations", err)
	return "", history, err
}

// ExecuteTools runs the requested tool calls and turns each outcome into a
// tool-role message. Individual failures become error messages for the LLM
// rather than aborting the turn.
func (a *agentImpl) ExecuteTools(ctx context.Context, toolCalls []ToolCall) []Message {
	var results []Message

	for _, toolCall := range toolCalls {
		name := toolCall.Function.Name

		var args map[string]interface{}
		if toolCall.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
				a.logger.Error("failed to parse tool arguments", err, "tool", name, "args", toolCall.Function.Arguments)
				results = append(results, Message{
					Role:       MessageRoleTool,
					Content:    fmt.Sprintf("Error: Failed to parse arguments: %v", err),
					ToolCallID: toolCall.ID,
				})
				continue
			}
		}

		if !a.functions.Has(name) {
			a.logger.Error("requested tool not found", nil, "tool", name)
			results = append(results, Message{
				Role:       MessageRoleTool,
				Content:    fmt.Sprintf("Error: Tool '%s' not found on the MCP server", name),
				ToolCallID: toolCall.ID,
			})
			continue
		}

		start := time.Now()
		output, err := a.executeOne(ctx, name, args)
		a.recordToolCall(ctx, name, err, time.Since(start))

		if err != nil {
			a.logger.Error("failed to execute tool call", err, "tool", name)
			results = append(results, Message{
				Role:       MessageRoleTool,
				Content:    fmt.Sprintf("Error: %v", err),
				ToolCallID: toolCall.ID,
			})
			continue
		}

		results = append(results, Message{
			Role:       MessageRoleTool,
			Content:    output,
			ToolCallID: toolCall.ID,
		})
	}

	return results
}

// executeOne routes one call: the upload tool goes through the direct
// executor, everything else through the function adapter layer.
func (a *agentImpl) executeOne(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	if name == a.uploadTool {
		return a.direct.Execute(ctx, name, args), nil
	}

	result, err := a.functions.Call(ctx, name, args)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode tool result: %w", err)
	}
	return string(data), nil
}

func (a *agentImpl) recordToolCall(ctx context.Context, tool string, err error, elapsed time.Duration) {
	if a.telemetry == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	a.telemetry.RecordToolCall(ctx, tool, outcome, elapsed.Seconds())
}
