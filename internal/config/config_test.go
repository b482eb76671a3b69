package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDB = `
database:
  host: localhost
  name: bluberry
  user: bluberry
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "bluberry", cfg.Database.Name)
				assert.False(t, cfg.Ebay.Configured())
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)

				assert.Equal(t, "https://api.ebay.com/identity/v1/oauth2/token", cfg.Ebay.TokenURL)
				assert.Equal(t, "https://auth.ebay.com/oauth2/authorize", cfg.Ebay.AuthURL)
				assert.Equal(t, "https://api.ebay.com/sell/inventory/v1", cfg.Ebay.SellURL)
				assert.Equal(t, "EBAY_US", cfg.Ebay.Marketplace)
				assert.Equal(t, "en-US", cfg.Ebay.ContentLanguage)
				assert.Len(t, cfg.Ebay.Scopes, 1)
				assert.Equal(t, "listing", cfg.Ebay.ConditionTable)
				assert.Equal(t, "USD", cfg.Ebay.Listing.Currency)
				assert.Equal(t, 10*time.Second, cfg.Ebay.Timeout)
				assert.Equal(t, 60*time.Second, cfg.Ebay.OperationTimeout)
				assert.Equal(t, uint64(2), cfg.Ebay.Retry.MaxRetries)
				assert.Equal(t, 200*time.Millisecond, cfg.Ebay.Retry.Interval)
				assert.Equal(t, 5, cfg.Ebay.Breaker.Threshold)
				assert.Equal(t, 30*time.Second, cfg.Ebay.Breaker.Cooldown)
				assert.InDelta(t, 5.0, cfg.Ebay.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 10, cfg.Ebay.RateLimit.Burst)
				assert.Equal(t, time.Duration(0), cfg.Ebay.RefreshSkew)

				assert.Equal(t, time.Duration(0), cfg.Schedule.TokenRefreshInterval)
				assert.False(t, cfg.Notifications.Discord.Enabled)
				assert.False(t, cfg.Tracing.Enabled)
				assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0.0001)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "credentials from environment",
			yaml: minimalDB + `
ebay:
  client_id: "${TEST_EBAY_CLIENT_ID}"
  client_secret: "${TEST_EBAY_CLIENT_SECRET}"
  redirect_uri: BluBerry-RuName
  listing:
    category_id: "38194"
    payment_policy_id: pp-1
`,
			envVars: map[string]string{
				"TEST_EBAY_CLIENT_ID":     "BluBerry-app-PRD",
				"TEST_EBAY_CLIENT_SECRET": "PRD-secret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.Ebay.Configured())
				assert.Equal(t, "BluBerry-app-PRD", cfg.Ebay.ClientID)
				assert.Equal(t, "PRD-secret", cfg.Ebay.ClientSecret)
				assert.Equal(t, "38194", cfg.Ebay.Listing.CategoryID)
				assert.Equal(t, "pp-1", cfg.Ebay.Listing.PaymentPolicyID)
			},
		},
		{
			name: "full config overrides",
			yaml: `
server:
  port: 9090
database:
  host: db.internal
  name: bluberry
  user: app
  password: pw
  pool_size: 25
ebay:
  sell_url: http://localhost:8089/sell/inventory/v1
  token_url: http://localhost:8089/identity/v1/oauth2/token
  condition_table: resolver
  refresh_skew: 2m
  retry:
    max_retries: 4
    interval: 1s
  breaker:
    threshold: 3
    cooldown: 1m
storage:
  public_base_url: https://storage.example.com/items
schedule:
  token_refresh_interval: 90m
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.example.com/api/webhooks/1/abc
tracing:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 25, cfg.Database.PoolSize)
				assert.Equal(t, "http://localhost:8089/sell/inventory/v1", cfg.Ebay.SellURL)
				assert.Equal(t, "resolver", cfg.Ebay.ConditionTable)
				assert.Equal(t, 2*time.Minute, cfg.Ebay.RefreshSkew)
				assert.Equal(t, uint64(4), cfg.Ebay.Retry.MaxRetries)
				assert.Equal(t, 3, cfg.Ebay.Breaker.Threshold)
				assert.Equal(t, "https://storage.example.com/items", cfg.Storage.PublicBaseURL)
				assert.Equal(t, 90*time.Minute, cfg.Schedule.TokenRefreshInterval)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.True(t, cfg.Tracing.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
				assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 0.0001)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: bluberry
  user: bluberry
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: bluberry
`,
			wantErr: "database.user is required",
		},
		{
			name: "client secret without id",
			yaml: minimalDB + `
ebay:
  client_secret: only-the-secret
`,
			wantErr: "must be set together",
		},
		{
			name: "credentials without redirect uri",
			yaml: minimalDB + `
ebay:
  client_id: id
  client_secret: secret
`,
			wantErr: "ebay.redirect_uri is required",
		},
		{
			name: "unknown condition table",
			yaml: minimalDB + `
ebay:
  condition_table: ebay-official
`,
			wantErr: "ebay.condition_table must be one of",
		},
		{
			name: "negative keep-alive interval",
			yaml: minimalDB + `
schedule:
  token_refresh_interval: -5m
`,
			wantErr: "schedule.token_refresh_interval must not be negative",
		},
		{
			name: "discord enabled without webhook",
			yaml: minimalDB + `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name: "sample ratio above one",
			yaml: minimalDB + `
tracing:
  sample_ratio: 1.5
`,
			wantErr: "tracing.sample_ratio must be between 0 and 1",
		},
		{
			name:    "invalid yaml",
			yaml:    "database: [unterminated",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
ebay:
  condition_table: nope
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host is required")
	assert.Contains(t, err.Error(), "database.name is required")
	assert.Contains(t, err.Error(), "ebay.condition_table")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "bluberry",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=bluberry user=admin password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
