package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/position"
	"github.com/feral-file/ff-position-api/internal/ratelimit"
	"github.com/feral-file/ff-position-api/internal/registry"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// EthereumConfig holds ledger node configuration
type EthereumConfig struct {
	RPCURL           string        `mapstructure:"rpc_url"`
	TokenListAddress string        `mapstructure:"token_list_address"`
	CallTimeout      time.Duration `mapstructure:"call_timeout"`
	MaxRetryElapsed  time.Duration `mapstructure:"max_retry_elapsed"`
	// RequestsPerSecond caps calls to the node, zero disables limiting.
	// The budget is shared through Redis when redis.addr is set.
	RequestsPerSecond int `mapstructure:"requests_per_second"`
	Burst             int `mapstructure:"burst"`
}

// TemplatesConfig toggles each instrument kind at the service level
type TemplatesConfig struct {
	BondEnabled       bool `mapstructure:"bond_enabled"`
	ShareEnabled      bool `mapstructure:"share_enabled"`
	MembershipEnabled bool `mapstructure:"membership_enabled"`
	CouponEnabled     bool `mapstructure:"coupon_enabled"`
}

// Enabled returns the templates switched on, in stable order
func (c TemplatesConfig) Enabled() []domain.Template {
	var enabled []domain.Template
	if c.BondEnabled {
		enabled = append(enabled, domain.TemplateBond)
	}
	if c.ShareEnabled {
		enabled = append(enabled, domain.TemplateShare)
	}
	if c.MembershipEnabled {
		enabled = append(enabled, domain.TemplateMembership)
	}
	if c.CouponEnabled {
		enabled = append(enabled, domain.TemplateCoupon)
	}
	return enabled
}

// LiveConfig holds live ledger read configuration
type LiveConfig struct {
	MaxWorkers int `mapstructure:"max_workers"`
}

// RedisConfig holds the optional registry cache configuration
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ReadTimeout    int    `mapstructure:"read_timeout"`    // in seconds
	WriteTimeout   int    `mapstructure:"write_timeout"`   // in seconds
	IdleTimeout    int    `mapstructure:"idle_timeout"`    // in seconds
	RequestTimeout int    `mapstructure:"request_timeout"` // in seconds
}

// AuthConfig holds authentication configuration for administrative endpoints
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the position API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Ethereum   EthereumConfig  `mapstructure:"ethereum"`
	Templates  TemplatesConfig `mapstructure:"templates"`
	Live       LiveConfig      `mapstructure:"live"`
	Redis      RedisConfig     `mapstructure:"redis"`
	Auth       AuthConfig      `mapstructure:"auth"`
}

// ToEngineConfig builds the position engine configuration
func (c *APIConfig) ToEngineConfig() position.Config {
	return position.Config{
		EnabledTemplates: c.Templates.Enabled(),
		MaxWorkers:       c.Live.MaxWorkers,
	}
}

// ToRegistryConfig builds the registry resolver configuration
func (c *APIConfig) ToRegistryConfig() registry.Config {
	return registry.Config{
		TokenListAddress: c.Ethereum.TokenListAddress,
		Enabled:          c.Templates.Enabled(),
	}
}

// ToLedgerConfig builds the ledger client configuration
func (c *APIConfig) ToLedgerConfig() ledger.Config {
	return ledger.Config{
		CallTimeout:     c.Ethereum.CallTimeout,
		MaxRetryElapsed: c.Ethereum.MaxRetryElapsed,
	}
}

// ToRateLimitConfig builds the ledger call limiter configuration
func (c *APIConfig) ToRateLimitConfig() ratelimit.Config {
	return ratelimit.Config{
		RequestsPerSecond: c.Ethereum.RequestsPerSecond,
		Burst:             c.Ethereum.Burst,
	}
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.request_timeout", 25)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ethereum.call_timeout", "10s")
	v.SetDefault("ethereum.max_retry_elapsed", "3s")
	v.SetDefault("ethereum.requests_per_second", 0)
	v.SetDefault("templates.bond_enabled", true)
	v.SetDefault("templates.share_enabled", true)
	v.SetDefault("templates.membership_enabled", true)
	v.SetDefault("templates.coupon_enabled", true)
	v.SetDefault("live.max_workers", 8)
	v.SetDefault("redis.ttl", "10m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Ethereum.TokenListAddress != "" && !domain.ValidAddress(config.Ethereum.TokenListAddress) {
		return nil, fmt.Errorf("ethereum.token_list_address is not a valid address: %s", config.Ethereum.TokenListAddress)
	}
	if config.Live.MaxWorkers < 1 {
		config.Live.MaxWorkers = 1
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("POSITION_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.request_timeout",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.token_list_address",
		"ethereum.call_timeout",
		"ethereum.max_retry_elapsed",
		"ethereum.requests_per_second",
		"ethereum.burst",
		// Templates
		"templates.bond_enabled",
		"templates.share_enabled",
		"templates.membership_enabled",
		"templates.coupon_enabled",
		// Live reads
		"live.max_workers",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.ttl",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
