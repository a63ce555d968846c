package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the configuration for the bot service.
type Config struct {
	// General settings
	ApplicationName string `env:"APPLICATION_NAME, default=news-capsule-bot" description:"The name of the application"`
	Environment     string `env:"ENVIRONMENT, default=production" description:"The environment"`
	EnableTelemetry bool   `env:"ENABLE_TELEMETRY, default=false" description:"Enable telemetry"`
	EnableAuth      bool   `env:"ENABLE_AUTH, default=false" description:"Enable authentication"`

	// Auth settings
	OIDC *OIDC `env:", prefix=OIDC_" description:"OIDC configuration"`

	// Server settings
	Server *ServerConfig `env:", prefix=SERVER_" description:"Server configuration"`

	// MCP tool server settings
	MCP *MCPConfig `env:", prefix=MCP_" description:"MCP tool server configuration"`

	// Agent settings
	Agent *AgentConfig `env:", prefix=AGENT_" description:"Agent configuration"`
}

// OIDC configuration
type OIDC struct {
	IssuerURL    string `env:"ISSUER_URL, default=http://keycloak:8080/realms/bot-realm" description:"OIDC issuer URL"`
	ClientID     string `env:"CLIENT_ID, default=news-capsule-bot-client" type:"secret" description:"OIDC client ID"`
	ClientSecret string `env:"CLIENT_SECRET" type:"secret" description:"OIDC client secret"`
}

// Server configuration
type ServerConfig struct {
	Host         string        `env:"HOST, default=0.0.0.0" description:"Server host"`
	Port         string        `env:"PORT, default=3978" description:"Server port"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT, default=30s" description:"Read timeout"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=30s" description:"Write timeout"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT, default=120s" description:"Idle timeout"`
	TLSCertPath  string        `env:"TLS_CERT_PATH" description:"TLS certificate path"`
	TLSKeyPath   string        `env:"TLS_KEY_PATH" description:"TLS key path"`
}

// MCPConfig holds the settings for connections to the MCP tool server.
type MCPConfig struct {
	ServerURL      string        `env:"SERVER_URL, default=http://localhost:8000/sse" description:"MCP tool server URL"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT, default=30s" description:"Connection establishment timeout"`
	MaxRetries     int           `env:"MAX_RETRIES, default=3" description:"Additional attempts for a failed tool call"`
	RetryBackoff   time.Duration `env:"RETRY_BACKOFF, default=1s" description:"Base delay of the exponential backoff"`
	CallTimeout    time.Duration `env:"CALL_TIMEOUT, default=2m" description:"Overall deadline for one tool call including retries"`
	UploadTool     string        `env:"UPLOAD_TOOL, default=upload_blob" description:"Tool routed through the direct executor"`
	PoolSize       int           `env:"POOL_SIZE, default=4" description:"Maximum idle connections kept in the pool"`
}

// AgentConfig holds the settings of the LLM agent collaborator.
type AgentConfig struct {
	Name         string        `env:"NAME, default=news-capsule-agent" description:"Agent name"`
	Model        string        `env:"MODEL, default=gpt-4o" description:"Model used by the agent"`
	PersonaPath  string        `env:"PERSONA_PATH, default=persona.yaml" description:"Path to the agent persona file"`
	Endpoint     string        `env:"ENDPOINT, default=https://api.openai.com/v1" description:"Chat completions endpoint"`
	APIKeySecret string        `env:"API_KEY_SECRET, default=agent-api-key" description:"Secret name holding the API key"`
	Timeout      time.Duration `env:"TIMEOUT, default=120s" description:"Chat completion request timeout"`
}

// Load configuration
func (cfg *Config) Load(lookuper envconfig.Lookuper) (Config, error) {
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, err
	}
	return *cfg, nil
}
