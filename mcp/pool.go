package mcp

import (
	"context"
	"errors"
	"sync"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

// DefaultPoolSize is the maximum number of idle connections kept around.
const DefaultPoolSize = 4

// Pool hands out ready Connections to one tool server, amortizing the
// connect handshake across calls while keeping each call's transport state
// isolated: a Connection is owned by exactly one caller between Get and Put.
type Pool struct {
	serverURL string
	logger    logger.Logger
	size      int
	factory   func() *Connection

	mu     sync.Mutex
	idle   []*Connection
	closed bool
}

// NewPool creates a connection pool for one tool server. The options are
// forwarded to every Connection the pool dials.
func NewPool(serverURL string, size int, log logger.Logger, opts ...Option) *Pool {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{
		serverURL: serverURL,
		logger:    log,
		size:      size,
		factory: func() *Connection {
			return NewConnection(serverURL, log, opts...)
		},
	}
}

// Get returns a connected Connection, reusing an idle one when available.
func (p *Pool) Get(ctx context.Context) (*Connection, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, errors.New("connection pool is closed")
	}
	if n := len(p.idle); n > 0 {
		conn := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return conn, nil
	}
	p.mu.Unlock()

	conn := p.factory()
	if err := conn.Connect(ctx); err != nil {
		return nil, err
	}
	return conn, nil
}

// Put returns a Connection to the pool. Disconnected or surplus connections
// are cleaned up and dropped.
func (p *Pool) Put(conn *Connection) {
	if conn == nil {
		return
	}
	if !conn.Connected() {
		conn.Cleanup()
		return
	}

	p.mu.Lock()
	if p.closed || len(p.idle) >= p.size {
		p.mu.Unlock()
		conn.Cleanup()
		return
	}
	p.idle = append(p.idle, conn)
	p.mu.Unlock()
}

// Execute acquires a Connection, runs one tool call and releases the
// Connection, preserving the execute-with-retry contract of Connection.
// Connections that failed mid-call are discarded rather than reused.
func (p *Pool) Execute(ctx context.Context, name string, arguments map[string]interface{}) (map[string]interface{}, error) {
	conn, err := p.Get(ctx)
	if err != nil {
		return nil, err
	}

	result, err := conn.ExecuteTool(ctx, name, arguments)
	if err != nil {
		var notFound *ToolNotFoundError
		if errors.As(err, &notFound) {
			// Call-contract failure, the session itself is still healthy.
			p.Put(conn)
		} else {
			conn.Cleanup()
		}
		return nil, err
	}

	p.Put(conn)
	return result, nil
}

// ListTools acquires a Connection and returns the server's tool catalogue.
func (p *Pool) ListTools(ctx context.Context) ([]Tool, error) {
	conn, err := p.Get(ctx)
	if err != nil {
		return nil, err
	}
	tools, err := conn.ListTools(ctx)
	if err != nil {
		conn.Cleanup()
		return nil, err
	}
	p.Put(conn)
	return tools, nil
}

// Close cleans up all idle connections. Connections currently handed out are
// cleaned up when returned.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()

	for _, conn := range idle {
		conn.Cleanup()
	}
}
