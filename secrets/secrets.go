// Package secrets provides a narrow secret-retrieval interface. The default
// provider reads from the process environment; vault-backed providers can be
// swapped in behind the same interface.
package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
)

// Provider retrieves named secrets.
//
//go:generate mockgen -source=secrets.go -destination=../tests/mocks/secrets.go -package=mocks
type Provider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// EnvProvider resolves secrets from environment variables. Secret names may
// use dashes; the lookup also tries the name with dashes replaced by
// underscores, matching how vault secret names map onto env vars.
type EnvProvider struct {
	logger   logger.Logger
	lookuper envconfig.Lookuper
}

func NewEnvProvider(log logger.Logger, lookuper envconfig.Lookuper) *EnvProvider {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	return &EnvProvider{logger: log, lookuper: lookuper}
}

func (p *EnvProvider) GetSecret(_ context.Context, name string) (string, error) {
	if value, ok := p.lookuper.Lookup(name); ok {
		return value, nil
	}

	fallback := strings.ReplaceAll(name, "-", "_")
	if fallback != name {
		if value, ok := p.lookuper.Lookup(fallback); ok {
			p.logger.Debug("secret resolved via underscore fallback", "name", name)
			return value, nil
		}
	}

	return "", fmt.Errorf("secret %q not found", name)
}
