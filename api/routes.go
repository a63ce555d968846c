package api

import (
	"net/http"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	bot "github.com/ownway22/Az-AIAgentSvc-MCP/bot"
	config "github.com/ownway22/Az-AIAgentSvc-MCP/config"
	l "github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

type Router interface {
	NotFoundHandler(c *gin.Context)
	MessagesHandler(c *gin.Context)
	HealthcheckHandler(c *gin.Context)
}

type RouterImpl struct {
	cfg    config.Config
	logger l.Logger
	bot    *bot.Bot
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ResponseJSON struct {
	Message string `json:"message"`
}

func NewRouter(cfg config.Config, logger l.Logger, b *bot.Bot) Router {
	return &RouterImpl{
		cfg,
		logger,
		b,
	}
}

func (router *RouterImpl) NotFoundHandler(c *gin.Context) {
	router.logger.Error("requested route is not found", nil)
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Requested route is not found"})
}

// MessagesHandler is the activity endpoint. Message activities drive a bot
// turn and the reply activity is returned; any other activity type is
// acknowledged without processing.
func (router *RouterImpl) MessagesHandler(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		router.logger.Debug("rejecting non-json activity", "contentType", contentType)
		c.Status(http.StatusUnsupportedMediaType)
		return
	}

	var activity bot.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		router.logger.Error("failed to decode activity", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid activity payload"})
		return
	}

	if activity.Type != bot.ActivityTypeMessage {
		router.logger.Debug("ignoring activity", "type", activity.Type)
		c.JSON(http.StatusOK, ResponseJSON{Message: "Activity ignored"})
		return
	}

	start := time.Now()
	reply := router.bot.OnMessageActivity(c.Request.Context(), activity)
	router.logger.Info("processed message activity",
		"conversation", activity.Conversation.ID,
		"durationMs", time.Since(start).Milliseconds())

	c.JSON(http.StatusOK, reply)
}

func (router *RouterImpl) HealthcheckHandler(c *gin.Context) {
	router.logger.Debug("healthcheck")
	c.JSON(http.StatusOK, ResponseJSON{Message: "OK"})
}
