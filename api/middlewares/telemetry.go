package middlewares

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ownway22/Az-AIAgentSvc-MCP/config"
	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
	"github.com/ownway22/Az-AIAgentSvc-MCP/otel"
)

type Telemetry interface {
	Middleware() gin.HandlerFunc
}

type TelemetryImpl struct {
	cfg       config.Config
	telemetry otel.OpenTelemetry
	logger    logger.Logger
}

func NewTelemetryMiddleware(cfg config.Config, telemetry otel.OpenTelemetry, logger logger.Logger) (Telemetry, error) {
	return &TelemetryImpl{
		cfg:       cfg,
		telemetry: telemetry,
		logger:    logger,
	}, nil
}

// Middleware records the duration of bot turns. Only the activity endpoint is
// measured; everything else passes through.
func (t *TelemetryImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if t.telemetry == nil || !strings.HasPrefix(c.Request.URL.Path, "/api/messages") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		seconds := time.Since(start).Seconds()
		t.logger.Debug("turn latency", "seconds", seconds, "status", c.Writer.Status())
		t.telemetry.RecordTurn(c.Request.Context(), seconds)
	}
}
