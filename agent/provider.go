package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

// HTTPChatProvider talks to an OpenAI-compatible chat completions endpoint.
type HTTPChatProvider struct {
	logger   logger.Logger
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewHTTPChatProvider(log logger.Logger, endpoint, apiKey string, timeout time.Duration) *HTTPChatProvider {
	return &HTTPChatProvider{
		logger:   log,
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   string     `json:"content"`
			ToolCalls []ToolCall `json:"tool_calls,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (p *HTTPChatProvider) ChatCompletion(ctx context.Context, request ChatRequest) (ChatResponse, error) {
	payloadBytes, err := json.Marshal(request)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := p.endpoint + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return ChatResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ChatResponse{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return ChatResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Choices) == 0 {
		return ChatResponse{}, fmt.Errorf("no choices in response")
	}

	choice := response.Choices[0]
	p.logger.Debug("chat completion received",
		"finishReason", choice.FinishReason,
		"toolCalls", len(choice.Message.ToolCalls))

	return ChatResponse{
		Content:   choice.Message.Content,
		ToolCalls: choice.Message.ToolCalls,
	}, nil
}
