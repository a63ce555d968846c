package secrets_test

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ownway22/Az-AIAgentSvc-MCP/logger"
	"github.com/ownway22/Az-AIAgentSvc-MCP/secrets"
)

func TestGetSecret(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		secret    string
		wantValue string
		wantErr   bool
	}{
		{
			name:      "exact name",
			env:       map[string]string{"app-insights-key": "abc123"},
			secret:    "app-insights-key",
			wantValue: "abc123",
		},
		{
			name:      "underscore fallback",
			env:       map[string]string{"app_insights_key": "xyz789"},
			secret:    "app-insights-key",
			wantValue: "xyz789",
		},
		{
			name:      "exact wins over fallback",
			env:       map[string]string{"key-one": "dashed", "key_one": "underscored"},
			secret:    "key-one",
			wantValue: "dashed",
		},
		{
			name:    "missing",
			env:     map[string]string{},
			secret:  "no-such-secret",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := secrets.NewEnvProvider(logger.NewNoOpLogger(), envconfig.MapLookuper(tt.env))

			value, err := p.GetSecret(context.Background(), tt.secret)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.secret)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
