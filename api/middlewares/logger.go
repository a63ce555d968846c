package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

// Logger is the request logging middleware.
type Logger interface {
	Middleware() gin.HandlerFunc
}

type LoggerImpl struct {
	logger *logger.Logger
}

func NewLoggerMiddleware(log *logger.Logger) (Logger, error) {
	return &LoggerImpl{logger: log}, nil
}

func (m *LoggerImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		(*m.logger).Info("request handled",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
			"clientIP", c.ClientIP(),
		)
	}
}
