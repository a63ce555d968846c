package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ownway22/Az-AIAgentSvc-MCP/api/middlewares"
	"github.com/ownway22/Az-AIAgentSvc-MCP/config"
	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

func serveWith(mw gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	handle := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/health", handle)
	r.POST("/api/messages", handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOIDCDisabledIsNoop(t *testing.T) {
	auth, err := middlewares.NewOIDCAuthenticatorMiddleware(logger.NewNoOpLogger(), config.Config{EnableAuth: false})
	require.NoError(t, err)
	assert.IsType(t, &middlewares.OIDCAuthenticatorNoop{}, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/messages", nil)
	w := serveWith(auth.Middleware(), req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOIDCRejectsMissingBearer(t *testing.T) {
	auth := &middlewares.OIDCAuthenticatorImpl{}

	req := httptest.NewRequest(http.MethodPost, "/api/messages", nil)
	w := serveWith(auth.Middleware(), req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOIDCRejectsMalformedHeader(t *testing.T) {
	auth := &middlewares.OIDCAuthenticatorImpl{}

	req := httptest.NewRequest(http.MethodPost, "/api/messages", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := serveWith(auth.Middleware(), req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOIDCSkipsHealthEndpoint(t *testing.T) {
	auth := &middlewares.OIDCAuthenticatorImpl{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := serveWith(auth.Middleware(), req)
	assert.Equal(t, http.StatusOK, w.Code)
}
