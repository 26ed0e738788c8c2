package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-position-api/internal/adapter"
	"github.com/feral-file/ff-position-api/internal/api/middleware"
	"github.com/feral-file/ff-position-api/internal/api/server"
	"github.com/feral-file/ff-position-api/internal/config"
	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/logger"
	"github.com/feral-file/ff-position-api/internal/position"
	"github.com/feral-file/ff-position-api/internal/ratelimit"
	"github.com/feral-file/ff-position-api/internal/registry"
	"github.com/feral-file/ff-position-api/internal/store"
	"github.com/feral-file/ff-position-api/internal/token"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "position-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Position API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Connect to the ledger node
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial ledger node", zap.Error(err))
	}
	defer ethClient.Close()

	// Redis backs the registry cache and the shared call budget, both optional
	var (
		cache       registry.Cache
		distributed adapter.RedisRateLimiter
	)
	if cfg.Redis.Addr != "" {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisClient.Close()

		if err := redisClient.Ping(ctx); err != nil {
			logger.WarnCtx(ctx, "Redis unreachable, registry cache disabled", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
		} else {
			cache = registry.NewRedisCache(redisClient, cfg.Redis.TTL)
			distributed = redisClient.NewRateLimiter()
			logger.InfoCtx(ctx, "Registry cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
		}
	}

	ledgerConfig := cfg.ToLedgerConfig()
	if cfg.Ethereum.RequestsPerSecond > 0 {
		limiter, err := ratelimit.NewLimiter(cfg.ToRateLimitConfig(), distributed, adapter.NewClock())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create ledger rate limiter", zap.Error(err))
		}
		ledgerConfig.Limiter = limiter
		logger.InfoCtx(ctx, "Ledger calls rate limited",
			zap.Int("requests_per_second", cfg.Ethereum.RequestsPerSecond),
			zap.Bool("distributed", distributed != nil),
		)
	}
	ledgerClient := ledger.NewClient(ethClient, ledgerConfig)

	if cfg.Ethereum.TokenListAddress == "" {
		logger.WarnCtx(ctx, "Token list address not configured, live reads will find no registered tokens")
	}
	resolver := registry.NewResolver(dataStore, ledgerClient, cache, cfg.ToRegistryConfig())

	engineConfig := cfg.ToEngineConfig()
	engine := position.NewEngine(engineConfig, dataStore, resolver, token.NewVariants(dataStore, ledgerClient))
	logger.InfoCtx(ctx, "Position engine ready",
		zap.Any("templates", engineConfig.EnabledTemplates),
		zap.Int("max_workers", engineConfig.MaxWorkers),
	)

	adminAuth, err := middleware.NewAdminAuth(middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to configure admin authentication", zap.Error(err))
	}

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		Admin:          adminAuth,
	}

	srv := server.New(serverConfig, dataStore, engine)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, fmt.Errorf("server forced to shutdown: %w", err))
	}

	logger.Info("API server stopped")
}
