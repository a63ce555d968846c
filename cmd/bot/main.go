package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-envconfig"

	agent "github.com/ownway22/Az-AIAgentSvc-MCP/agent"
	api "github.com/ownway22/Az-AIAgentSvc-MCP/api"
	middlewares "github.com/ownway22/Az-AIAgentSvc-MCP/api/middlewares"
	bot "github.com/ownway22/Az-AIAgentSvc-MCP/bot"
	config "github.com/ownway22/Az-AIAgentSvc-MCP/config"
	l "github.com/ownway22/Az-AIAgentSvc-MCP/logger"
	mcp "github.com/ownway22/Az-AIAgentSvc-MCP/mcp"
	otel "github.com/ownway22/Az-AIAgentSvc-MCP/otel"
	secrets "github.com/ownway22/Az-AIAgentSvc-MCP/secrets"
)

func main() {
	var root config.Config
	cfg, err := root.Load(envconfig.OsLookuper())
	if err != nil {
		log.Printf("Config load error: %v", err)
		return
	}

	var logger l.Logger
	logger, err = l.NewLogger(cfg.Environment)
	if err != nil {
		log.Printf("Logger init error: %v", err)
		return
	}

	// Initialize logger middleware
	loggerMiddleware, err := middlewares.NewLoggerMiddleware(&logger)
	if err != nil {
		logger.Error("Failed to initialize logger middleware", err)
		return
	}

	// Initialize telemetry middleware
	var telemetryRecorder otel.OpenTelemetry
	if cfg.EnableTelemetry {
		otelImpl := &otel.OpenTelemetryImpl{}
		err = otelImpl.Init(cfg)
		if err != nil {
			logger.Error("OpenTelemetry init error", err)
			return
		}
		telemetryRecorder = otelImpl
	}
	telemetry, err := middlewares.NewTelemetryMiddleware(cfg, telemetryRecorder, logger)
	if err != nil {
		logger.Error("Failed to initialize telemetry middleware", err)
		return
	}

	// Initialize OIDC authenticator middleware
	oidcAuthenticator, err := middlewares.NewOIDCAuthenticatorMiddleware(logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize OIDC authenticator", err)
		return
	}

	// MCP tool server connectivity
	poolOpts := []mcp.Option{
		mcp.WithConnectTimeout(cfg.MCP.ConnectTimeout),
		mcp.WithRetryPolicy(cfg.MCP.MaxRetries, cfg.MCP.RetryBackoff),
		mcp.WithCallTimeout(cfg.MCP.CallTimeout),
	}
	if telemetryRecorder != nil {
		recorder := telemetryRecorder
		poolOpts = append(poolOpts, mcp.WithRetryHook(func(tool string) {
			recorder.RecordRetry(context.Background(), tool)
		}))
	}

	pool := mcp.NewPool(cfg.MCP.ServerURL, cfg.MCP.PoolSize, logger, poolOpts...)
	defer pool.Close()

	discoverCtx, cancelDiscover := context.WithTimeout(context.Background(), cfg.MCP.ConnectTimeout)
	functions := mcp.Discover(discoverCtx, pool, logger)
	cancelDiscover()
	logger.Info("Tool discovery completed", "tools", functions.Names())

	direct := mcp.NewDirectExecutor(pool, logger, cfg.MCP.UploadTool)

	// LLM provider, API key resolved through the secrets provider
	secretsProvider := secrets.NewEnvProvider(logger, envconfig.OsLookuper())
	apiKey, err := secretsProvider.GetSecret(context.Background(), cfg.Agent.APIKeySecret)
	if err != nil {
		logger.Warn("Agent API key not found, proceeding without credentials", "secret", cfg.Agent.APIKeySecret)
	}
	provider := agent.NewHTTPChatProvider(logger, cfg.Agent.Endpoint, apiKey, cfg.Agent.Timeout)

	persona, err := config.LoadPersona(cfg.Agent.PersonaPath)
	if err != nil {
		logger.Error("Failed to load persona", err)
		return
	}

	chatAgent := agent.NewAgent(logger, provider, functions, direct, telemetryRecorder, cfg.Agent, persona, cfg.MCP.UploadTool)
	chatBot := bot.New(logger, chatAgent, bot.NewStateStore())

	router := api.NewRouter(cfg, logger, chatBot)
	r := gin.New()
	r.Use(loggerMiddleware.Middleware())
	if cfg.EnableTelemetry {
		r.Use(telemetry.Middleware())
	}
	r.Use(oidcAuthenticator.Middleware())

	r.POST("/api/messages", router.MessagesHandler)
	r.GET("/health", router.HealthcheckHandler)
	if cfg.EnableTelemetry {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.NoRoute(router.NotFoundHandler)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if cfg.Server.TLSCertPath != "" && cfg.Server.TLSKeyPath != "" {
		go func() {
			logger.Info("Starting bot service with TLS", "port", cfg.Server.Port)

			if err := server.ListenAndServeTLS(cfg.Server.TLSCertPath, cfg.Server.TLSKeyPath); err != nil && err != http.ErrServerClosed {
				logger.Error("ListenAndServeTLS error", err)
			}
		}()
	} else {
		go func() {
			logger.Info("Starting bot service", "port", cfg.Server.Port)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("ListenAndServe error", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server Shutdown error", err)
	} else {
		logger.Info("Server gracefully stopped")
	}
}
