package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	mcpgolang "github.com/metoro-io/mcp-golang"
	mcphttp "github.com/metoro-io/mcp-golang/transport/http"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

const (
	// DefaultConnectTimeout bounds session establishment.
	DefaultConnectTimeout = 30 * time.Second
	// DefaultMaxRetries is the number of additional attempts for a failed tool call.
	DefaultMaxRetries = 3
	// DefaultRetryBackoff is the base delay of the exponential backoff.
	DefaultRetryBackoff = 1 * time.Second
)

// errorKey marks a data-level error result, e.g. an empty tool response.
// Callers must check for it; it is a value, not a raised failure.
const errorKey = "error"

// ToolSession is the session handle obtained after a successful handshake
// with the tool server. *mcpgolang.Client satisfies it; tests substitute stubs.
type ToolSession interface {
	Initialize(ctx context.Context) (*mcpgolang.InitializeResponse, error)
	ListTools(ctx context.Context, cursor *string) (*mcpgolang.ToolsResponse, error)
	CallTool(ctx context.Context, name string, arguments any) (*mcpgolang.ToolResponse, error)
}

// Dialer builds an uninitialized session for a server URL.
type Dialer func(serverURL string) ToolSession

// dialHTTP is the production dialer over the streaming HTTP transport.
func dialHTTP(serverURL string) ToolSession {
	return mcpgolang.NewClient(mcphttp.NewHTTPClientTransport(serverURL))
}

// Connection manages one network session to a remote MCP tool server and is
// the sole path through which tool discovery and invocation happen.
//
// A Connection is not safe for concurrent use; operations are strictly
// sequential (Connect, ListTools, ExecuteTool, Cleanup). Cleanup alone is
// guarded and may be called repeatedly or concurrently.
type Connection struct {
	serverURL      string
	logger         logger.Logger
	dial           Dialer
	connectTimeout time.Duration
	maxRetries     int
	retryBackoff   time.Duration
	callTimeout    time.Duration
	onRetry        func(tool string)
	sleep          func(ctx context.Context, d time.Duration) error

	cleanupMu sync.Mutex
	session   ToolSession
	tools     []Tool
	cached    bool
	connected bool
}

// Option configures a Connection.
type Option func(*Connection)

// WithDialer overrides the transport dialer.
func WithDialer(dial Dialer) Option {
	return func(c *Connection) { c.dial = dial }
}

// WithConnectTimeout bounds session establishment.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Connection) { c.connectTimeout = d }
}

// WithRetryPolicy sets the number of additional attempts and the base backoff
// delay for tool execution.
func WithRetryPolicy(maxRetries int, backoff time.Duration) Option {
	return func(c *Connection) {
		c.maxRetries = maxRetries
		c.retryBackoff = backoff
	}
}

// WithCallTimeout bounds one ExecuteTool call overall, including retries and
// backoff sleeps. Zero means no overall deadline.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Connection) { c.callTimeout = d }
}

// WithRetryHook registers a callback invoked once per retry attempt.
func WithRetryHook(hook func(tool string)) Option {
	return func(c *Connection) { c.onRetry = hook }
}

// NewConnection creates a Connection for the given tool server URL.
func NewConnection(serverURL string, log logger.Logger, opts ...Option) *Connection {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	c := &Connection{
		serverURL:      serverURL,
		logger:         log,
		dial:           dialHTTP,
		connectTimeout: DefaultConnectTimeout,
		maxRetries:     DefaultMaxRetries,
		retryBackoff:   DefaultRetryBackoff,
		sleep:          sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ServerURL returns the target tool server address.
func (c *Connection) ServerURL() string {
	return c.serverURL
}

// Connected reports whether an active session exists.
func (c *Connection) Connected() bool {
	return c.connected
}

// Connect establishes the transport and session within the configured
// timeout. On failure the Connection is fully cleaned up before returning, so
// the object stays reusable.
func (c *Connection) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	session := c.dial(c.serverURL)
	if _, err := session.Initialize(ctx); err != nil {
		c.logger.Error("failed to connect to MCP server", err, "server", c.serverURL)
		c.session = session
		c.Cleanup()
		return fmt.Errorf("connect to %s: %w", c.serverURL, err)
	}

	c.session = session
	c.connected = true
	c.logger.Info("connected to MCP server", "server", c.serverURL)
	return nil
}

// ListTools returns the server's tool catalogue. The first call fetches and
// caches the listing; the cache is never refreshed within the Connection's
// lifetime, a stale read is accepted by design.
func (c *Connection) ListTools(ctx context.Context) ([]Tool, error) {
	if c.session == nil {
		return nil, ErrNotConnected
	}

	if !c.cached {
		resp, err := c.session.ListTools(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("list tools: %w", err)
		}
		tools := make([]Tool, 0, len(resp.Tools))
		for _, t := range resp.Tools {
			tools = append(tools, toolFromListing(t))
		}
		c.tools = tools
		c.cached = true
		c.logger.Debug("cached tool listing", "server", c.serverURL, "tools", len(tools))
	}

	return c.tools, nil
}

// FindTool looks a tool up in the cached listing.
func (c *Connection) FindTool(ctx context.Context, name string) (Tool, error) {
	tools, err := c.ListTools(ctx)
	if err != nil {
		return Tool{}, err
	}
	for _, t := range tools {
		if t.Name == name {
			return t, nil
		}
	}
	return Tool{}, &ToolNotFoundError{Tool: name}
}

// ExecuteTool runs a remote tool, retrying transient failures with
// exponential backoff. The result content is decoded as JSON when possible;
// plain text is wrapped as {"text": raw}; an empty response yields the
// {"error": ...} marker value instead of a failure.
func (c *Connection) ExecuteTool(ctx context.Context, name string, arguments map[string]interface{}) (map[string]interface{}, error) {
	if c.session == nil {
		return nil, ErrNotConnected
	}

	if _, err := c.FindTool(ctx, name); err != nil {
		return nil, err
	}

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	maxAttempts := c.maxRetries + 1
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c.logger.Info("executing tool", "tool", name, "attempt", attempt, "maxAttempts", maxAttempts)

		resp, err := c.session.CallTool(ctx, name, arguments)
		if err == nil {
			return decodeToolResponse(resp), nil
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		delay := c.retryBackoff * (1 << (attempt - 1))
		c.logger.Warn("tool execution failed, retrying",
			"tool", name, "delay", delay.String(), "error", err.Error())
		if c.onRetry != nil {
			c.onRetry(name)
		}
		if err := c.sleep(ctx, delay); err != nil {
			lastErr = fmt.Errorf("%w (after: %v)", err, lastErr)
			break
		}
	}

	execErr := &ExecutionError{Tool: name, Attempts: maxAttempts, Err: lastErr}
	c.logger.Error("tool execution failed after all attempts", lastErr, "tool", name, "attempts", maxAttempts)
	return nil, execErr
}

// Cleanup releases all resources acquired during Connect and resets the
// Connection to its initial state. Idempotent and safe under concurrent
// invocation; it never fails, teardown errors are logged and swallowed.
func (c *Connection) Cleanup() {
	c.cleanupMu.Lock()
	defer c.cleanupMu.Unlock()

	c.logger.Debug("cleaning up server connection resources", "server", c.serverURL)

	if c.session != nil {
		if closer, ok := c.session.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				c.logger.Warn("error during resource cleanup", "error", err.Error())
			}
		}
	}

	c.session = nil
	c.tools = nil
	c.cached = false
	c.connected = false
}

// ErrorMarker builds the data-level error result map.
func ErrorMarker(message string) map[string]interface{} {
	return map[string]interface{}{errorKey: message}
}

// IsErrorMarker reports whether a tool result is the data-level error marker.
func IsErrorMarker(result map[string]interface{}) bool {
	_, ok := result[errorKey]
	return ok
}

func decodeToolResponse(resp *mcpgolang.ToolResponse) map[string]interface{} {
	if resp == nil || len(resp.Content) == 0 {
		return ErrorMarker("no content received from tool")
	}
	first := resp.Content[0]
	if first == nil || first.TextContent == nil {
		return ErrorMarker("no content received from tool")
	}

	text := first.TextContent.Text
	var structured map[string]interface{}
	if err := json.Unmarshal([]byte(text), &structured); err != nil {
		return map[string]interface{}{"text": text}
	}
	return structured
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
