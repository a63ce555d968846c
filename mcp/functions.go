package mcp

import (
	"context"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

// FunctionDefinition is the calling contract of one tool as registered with
// the LLM agent.
type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolDefinition wraps a FunctionDefinition in the function-call toolset
// shape expected by chat completion APIs.
type ToolDefinition struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionSet is the result of one tool discovery: every discovered remote tool
// becomes a locally callable unit keyed by the tool's name. It is a value
// owned by the caller that performed discovery; there is no process-wide
// registry.
type FunctionSet struct {
	logger logger.Logger
	pool   *Pool
	tools  map[string]Tool
	order  []string
}

// Discover lists the server's tools over a pooled connection and returns the
// callable set. Discovery failures degrade to an empty set so the bot still
// runs, just without tool capability.
func Discover(ctx context.Context, pool *Pool, log logger.Logger) *FunctionSet {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	fs := &FunctionSet{
		logger: log,
		pool:   pool,
		tools:  map[string]Tool{},
	}

	tools, err := pool.ListTools(ctx)
	if err != nil {
		log.Error("failed to discover MCP tools, continuing without tool capability", err)
		return fs
	}

	for _, t := range tools {
		fs.tools[t.Name] = t
		fs.order = append(fs.order, t.Name)
	}
	log.Info("discovered MCP tools", "count", len(fs.order), "tools", fs.order)
	return fs
}

// Has reports whether name was returned by the discovery that produced this
// set. False for any name before discovery or outside the listing.
func (f *FunctionSet) Has(name string) bool {
	_, ok := f.tools[name]
	return ok
}

// Names returns the discovered tool names in server order.
func (f *FunctionSet) Names() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// Tool returns the schema of one discovered tool.
func (f *FunctionSet) Tool(name string) (Tool, bool) {
	t, ok := f.tools[name]
	return t, ok
}

// Definitions returns the toolset registration payload for the LLM agent.
func (f *FunctionSet) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(f.order))
	for _, name := range f.order {
		t := f.tools[name]
		defs = append(defs, ToolDefinition{
			Type: "function",
			Function: FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema.Raw(),
			},
		})
	}
	return defs
}

// Call normalizes the argument bundle and executes the named tool over the
// pool. Unknown names fail without a network round trip.
func (f *FunctionSet) Call(ctx context.Context, name string, args map[string]interface{}) (map[string]interface{}, error) {
	if !f.Has(name) {
		return nil, &ToolNotFoundError{Tool: name}
	}

	normalized := NormalizeArguments(f.logger, args)
	f.logger.Debug("executing MCP tool", "tool", name, "args", normalized)
	return f.pool.Execute(ctx, name, normalized)
}
