package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-position-api/internal/adapter"
	"github.com/feral-file/ff-position-api/internal/logger"
)

const DEFAULT_REDIS_KEY = "position-api:limiter:ledger"

// Config holds the call budget shared by every ledger read
type Config struct {
	// RequestsPerSecond is the sustained call rate, zero disables limiting
	RequestsPerSecond int
	// Burst defaults to RequestsPerSecond
	Burst int
	// RedisKey names the shared bucket when limiting across replicas
	RedisKey string
	// RecheckInterval is how long the limiter stays local after a Redis failure
	RecheckInterval time.Duration
}

// Limiter blocks until a call may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	Wait(ctx context.Context) error
}

type limiter struct {
	config      Config
	local       *rate.Limiter
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock

	mu          sync.Mutex
	unavailable bool
	failedAt    time.Time
}

// NewLimiter creates a limiter. With a distributed limiter the budget is shared through Redis
// and the local bucket takes over while Redis is failing. distributed may be nil.
func NewLimiter(cfg Config, distributed adapter.RedisRateLimiter, clock adapter.Clock) (Limiter, error) {
	if cfg.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.RedisKey == "" {
		cfg.RedisKey = DEFAULT_REDIS_KEY
	}
	if cfg.RecheckInterval <= 0 {
		cfg.RecheckInterval = 10 * time.Second
	}

	return &limiter{
		config:      cfg,
		local:       rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		distributed: distributed,
		clock:       clock,
	}, nil
}

// Wait blocks until a token is acquired or the context is done
func (l *limiter) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !l.useDistributed() {
			return l.local.Wait(ctx)
		}

		res, err := l.distributed.Allow(ctx, l.config.RedisKey, redis_rate.Limit{
			Rate:   l.config.RequestsPerSecond,
			Burst:  l.config.Burst,
			Period: time.Second,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.markUnavailable()
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
			continue
		}
		if res.Allowed > 0 {
			return nil
		}

		// 50-150% of retryAfter spreads out the replicas
		wait := time.Duration(float64(res.RetryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		logger.DebugCtx(ctx, "Rate limit token unavailable, waiting",
			zap.Duration("retry_after", res.RetryAfter),
			zap.Int("remaining", res.Remaining),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(wait):
		}
	}
}

func (l *limiter) useDistributed() bool {
	if l.distributed == nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.unavailable && l.clock.Since(l.failedAt) >= l.config.RecheckInterval {
		l.unavailable = false
		logger.Info("Retrying Redis rate limiter")
	}
	return !l.unavailable
}

func (l *limiter) markUnavailable() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.unavailable = true
	l.failedAt = l.clock.Now()
}
