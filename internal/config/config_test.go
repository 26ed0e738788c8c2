package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-position-api/internal/domain"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  request_timeout: 5
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
  max_open_conns: 30
  conn_max_lifetime: "1h"
ethereum:
  rpc_url: "http://localhost:8545"
  token_list_address: "0x52908400098527886e0f7030069857d2e4169ee7"
  call_timeout: "2s"
  requests_per_second: 50
templates:
  bond_enabled: true
  share_enabled: false
  membership_enabled: false
  coupon_enabled: true
live:
  max_workers: 4
redis:
  addr: "localhost:6379"
  ttl: "1m"
auth:
  api_keys: ["key-1", "key-2"]
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.RequestTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 30, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, "http://localhost:8545", cfg.Ethereum.RPCURL)
				assert.Equal(t, 2*time.Second, cfg.Ethereum.CallTimeout)
				assert.Equal(t, 50, cfg.ToRateLimitConfig().RequestsPerSecond)
				assert.Equal(t, []domain.Template{domain.TemplateBond, domain.TemplateCoupon}, cfg.Templates.Enabled())
				assert.Equal(t, 4, cfg.Live.MaxWorkers)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, time.Minute, cfg.Redis.TTL)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 25, cfg.Server.RequestTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10*time.Second, cfg.Ethereum.CallTimeout)
				assert.Equal(t, 3*time.Second, cfg.Ethereum.MaxRetryElapsed)
				assert.Equal(t, domain.Templates, cfg.Templates.Enabled())
				assert.Equal(t, 8, cfg.Live.MaxWorkers)
				assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
			},
		},
		{
			name: "non positive worker count is clamped",
			configFile: `
live:
  max_workers: 0
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 1, cfg.Live.MaxWorkers)
			},
		},
		{
			name: "invalid token list address",
			configFile: `
ethereum:
  token_list_address: "0x1234"
`,
			expectError: true,
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 8080, cfg.Server.Port)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestTemplatesConfig_Enabled(t *testing.T) {
	assert.Empty(t, TemplatesConfig{}.Enabled())
	assert.Equal(t, []domain.Template{domain.TemplateShare, domain.TemplateMembership},
		TemplatesConfig{ShareEnabled: true, MembershipEnabled: true}.Enabled())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// godotenv.Overload sets real process variables, unset them once the test is done
	envVars := map[string]string{
		"POSITION_API_DEBUG":                   "true",
		"POSITION_API_DATABASE_HOST":           "env-host",
		"POSITION_API_DATABASE_PORT":           "6543",
		"POSITION_API_TEMPLATES_COUPON_ENABLED": "false",
		"POSITION_API_LIVE_MAX_WORKERS":        "16",
	}
	var envContent string
	for key, value := range envVars {
		envContent += key + "=" + value + "\n"
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
	err = os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
templates:
  coupon_enabled: true
live:
  max_workers: 2
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.False(t, cfg.Templates.CouponEnabled)
	assert.Equal(t, 16, cfg.Live.MaxWorkers)
}

func TestAPIConfig_ToEngineConfig(t *testing.T) {
	cfg := &APIConfig{
		Ethereum: EthereumConfig{
			TokenListAddress: "0x00000000000000000000000000000000000000fF",
			CallTimeout:      5 * time.Second,
			MaxRetryElapsed:  2 * time.Second,
		},
		Templates: TemplatesConfig{BondEnabled: true, MembershipEnabled: true},
		Live:      LiveConfig{MaxWorkers: 4},
	}

	engine := cfg.ToEngineConfig()
	assert.Equal(t, []domain.Template{domain.TemplateBond, domain.TemplateMembership}, engine.EnabledTemplates)
	assert.Equal(t, 4, engine.MaxWorkers)

	reg := cfg.ToRegistryConfig()
	assert.Equal(t, cfg.Ethereum.TokenListAddress, reg.TokenListAddress)
	assert.Equal(t, engine.EnabledTemplates, reg.Enabled)

	led := cfg.ToLedgerConfig()
	assert.Equal(t, 5*time.Second, led.CallTimeout)
	assert.Equal(t, 2*time.Second, led.MaxRetryElapsed)
}
