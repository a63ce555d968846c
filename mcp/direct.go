package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

// uploadContentField is the field the upload tool requires its payload under.
const uploadContentField = "content"

// uploadContentAliases are alternate field names LLM agents have been seen
// using for the upload payload, checked in order.
var uploadContentAliases = []string{"text", "value"}

// DirectExecutor drives tool calls without going through the function
// adapter layer. It applies the same argument normalization to every tool,
// plus payload-field aliasing for the configured upload tool, and always
// returns a JSON string: either the structured result or {"error": ...}.
// It never propagates a failure past its own boundary.
type DirectExecutor struct {
	pool       *Pool
	logger     logger.Logger
	uploadTool string
}

// NewDirectExecutor creates an executor over the given pool. uploadTool names
// the tool whose payload must arrive under the "content" field.
func NewDirectExecutor(pool *Pool, log logger.Logger, uploadTool string) *DirectExecutor {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &DirectExecutor{
		pool:       pool,
		logger:     log,
		uploadTool: uploadTool,
	}
}

// Execute normalizes the argument bundle and runs the named tool, returning
// the outcome as a JSON document in all cases.
func (d *DirectExecutor) Execute(ctx context.Context, name string, args map[string]interface{}) string {
	d.logger.Info("direct tool execution", "tool", name, "args", args)

	normalized := NormalizeArguments(d.logger, args)
	if name == d.uploadTool {
		normalized = d.aliasUploadContent(normalized)
	}

	result, err := d.pool.Execute(ctx, name, normalized)
	if err != nil {
		d.logger.Error("direct tool execution failed", err, "tool", name)
		return encodeErrorMarker(fmt.Sprintf("failed to execute %s: %v", name, err))
	}

	data, err := json.Marshal(result)
	if err != nil {
		d.logger.Error("failed to encode tool result", err, "tool", name)
		return encodeErrorMarker(fmt.Sprintf("failed to encode result of %s: %v", name, err))
	}

	d.logger.Debug("direct tool execution result", "tool", name, "result", string(data))
	return string(data)
}

// aliasUploadContent maps alternate payload field names onto the required
// "content" field when it is absent.
func (d *DirectExecutor) aliasUploadContent(args map[string]interface{}) map[string]interface{} {
	if _, ok := args[uploadContentField]; ok {
		return args
	}
	for _, alias := range uploadContentAliases {
		if v, ok := args[alias]; ok {
			d.logger.Warn("upload payload missing required field, using alias",
				"field", uploadContentField, "alias", alias)
			args[uploadContentField] = v
			return args
		}
	}
	d.logger.Warn("upload payload missing required field and no alias present",
		"field", uploadContentField)
	return args
}

func encodeErrorMarker(message string) string {
	data, err := json.Marshal(ErrorMarker(message))
	if err != nil {
		return `{"error": "tool execution failed"}`
	}
	return string(data)
}
