package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	mcpgolang "github.com/metoro-io/mcp-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

func newTestPool(t *testing.T, size int, session func() *fakeSession) (*Pool, *int) {
	t.Helper()
	dials := 0
	pool := NewPool("http://localhost:8000/sse", size, logger.NewNoOpLogger(),
		WithDialer(func(serverURL string) ToolSession {
			dials++
			return session()
		}),
		WithRetryPolicy(0, time.Millisecond))
	t.Cleanup(pool.Close)
	return pool, &dials
}

func healthySession() *fakeSession {
	return &fakeSession{
		listTools: func(ctx context.Context, cursor *string) (*mcpgolang.ToolsResponse, error) {
			return &mcpgolang.ToolsResponse{Tools: []mcpgolang.ToolRetType{listedTool("upload_blob")}}, nil
		},
		callTool: func(ctx context.Context, name string, arguments any) (*mcpgolang.ToolResponse, error) {
			return mcpgolang.NewToolResponse(mcpgolang.NewTextContent(`{"status":"ok"}`)), nil
		},
	}
}

func TestPoolReusesReleasedConnection(t *testing.T) {
	pool, dials := newTestPool(t, 2, healthySession)

	conn, err := pool.Get(context.Background())
	require.NoError(t, err)
	pool.Put(conn)

	again, err := pool.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, conn, again)
	assert.Equal(t, 1, *dials)
	pool.Put(again)
}

func TestPoolDialsWhenEmpty(t *testing.T) {
	pool, dials := newTestPool(t, 2, healthySession)

	a, err := pool.Get(context.Background())
	require.NoError(t, err)
	b, err := pool.Get(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, *dials)
	pool.Put(a)
	pool.Put(b)
}

func TestPoolDropsSurplusConnections(t *testing.T) {
	pool, _ := newTestPool(t, 1, healthySession)

	a, err := pool.Get(context.Background())
	require.NoError(t, err)
	b, err := pool.Get(context.Background())
	require.NoError(t, err)

	pool.Put(a)
	pool.Put(b)

	assert.True(t, a.Connected())
	assert.False(t, b.Connected())
}

func TestPoolExecuteReleasesConnection(t *testing.T) {
	pool, dials := newTestPool(t, 2, healthySession)

	result, err := pool.Execute(context.Background(), "upload_blob", map[string]interface{}{"container": "news"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, result)

	_, err = pool.Execute(context.Background(), "upload_blob", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, *dials)
}

func TestPoolExecuteDiscardsFailedConnection(t *testing.T) {
	pool, dials := newTestPool(t, 2, func() *fakeSession {
		s := healthySession()
		s.callTool = func(ctx context.Context, name string, arguments any) (*mcpgolang.ToolResponse, error) {
			return nil, errors.New("transient failure")
		}
		return s
	})

	_, err := pool.Execute(context.Background(), "upload_blob", nil)
	assert.Error(t, err)

	_, err = pool.Execute(context.Background(), "upload_blob", nil)
	assert.Error(t, err)
	assert.Equal(t, 2, *dials)
}

func TestPoolExecuteKeepsConnectionOnUnknownTool(t *testing.T) {
	pool, dials := newTestPool(t, 2, healthySession)

	_, err := pool.Execute(context.Background(), "no_such_tool", nil)
	var notFound *ToolNotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = pool.Execute(context.Background(), "upload_blob", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, *dials)
}

func TestPoolClose(t *testing.T) {
	pool, _ := newTestPool(t, 2, healthySession)

	conn, err := pool.Get(context.Background())
	require.NoError(t, err)
	pool.Put(conn)

	pool.Close()
	assert.False(t, conn.Connected())

	_, err = pool.Get(context.Background())
	assert.Error(t, err)
}
