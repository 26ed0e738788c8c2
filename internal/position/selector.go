package position

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/logger"
	"github.com/feral-file/ff-position-api/internal/metrics"
	"github.com/feral-file/ff-position-api/internal/registry"
	"github.com/feral-file/ff-position-api/internal/store"
	"github.com/feral-file/ff-position-api/internal/token"
)

// source is one way of answering position queries
type source interface {
	list(ctx context.Context, accountAddress string, variant token.Variant, opts ListOptions) (*Page, error)
	get(ctx context.Context, accountAddress, tokenAddress string, variant token.Variant, opts GetOptions) (*Position, error)
}

// Engine resolves token positions of an account from the index or the ledger
type Engine struct {
	config   Config
	enabled  map[domain.Template]bool
	variants token.Variants
	indexed  source
	live     source
}

// NewEngine creates a position engine
func NewEngine(config Config, st store.Store, resolver registry.Resolver, variants token.Variants) *Engine {
	if config.MaxWorkers < 1 {
		config.MaxWorkers = 1
	}

	return &Engine{
		config: config,
		enabled: lo.SliceToMap(config.EnabledTemplates, func(t domain.Template) (domain.Template, bool) {
			return t, true
		}),
		variants: variants,
		indexed:  &indexedSource{store: st},
		live: &liveSource{
			store:      st,
			registry:   resolver,
			maxWorkers: config.MaxWorkers,
		},
	}
}

// GetList returns the non-zero positions of an account for one template, in listing order
func (e *Engine) GetList(ctx context.Context, accountAddress string, template domain.Template, opts ListOptions) (*Page, error) {
	accountAddress, err := domain.ParseAddress("account_address", accountAddress)
	if err != nil {
		return nil, err
	}
	if opts.Offset != nil && *opts.Offset < 0 {
		return nil, domain.NewInvalidParameterError("offset", strconv.Itoa(*opts.Offset))
	}
	if opts.Limit != nil && *opts.Limit < 0 {
		return nil, domain.NewInvalidParameterError("limit", strconv.Itoa(*opts.Limit))
	}
	variant, err := e.variant(template)
	if err != nil {
		return nil, err
	}

	src, name := e.source(opts.EnableIndex)
	start := time.Now()
	page, err := src.list(ctx, accountAddress, variant, opts)
	e.observe(ctx, "list", name, start, err)
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Resolved position list",
		zap.String("account_address", accountAddress),
		zap.String("template", template.String()),
		zap.String("source", string(name)),
		zap.Uint64("total", page.ResultSet.Total),
		zap.Uint64("count", page.ResultSet.Count),
		zap.Int("returned", len(page.Positions)),
	)

	return page, nil
}

// GetOne returns the position of an account in one token.
// An unlisted token, a token of another template and a zero position are all reported as not existing.
func (e *Engine) GetOne(ctx context.Context, accountAddress, tokenAddress string, template domain.Template, opts GetOptions) (*Position, error) {
	accountAddress, err := domain.ParseAddress("account_address", accountAddress)
	if err != nil {
		return nil, err
	}
	tokenAddress, err = domain.ParseAddress("token_address", tokenAddress)
	if err != nil {
		return nil, err
	}
	variant, err := e.variant(template)
	if err != nil {
		return nil, err
	}

	src, name := e.source(opts.EnableIndex)
	start := time.Now()
	position, err := src.get(ctx, accountAddress, tokenAddress, variant, opts)
	e.observe(ctx, "get", name, start, err)
	if err != nil {
		return nil, err
	}

	return position, nil
}

// IsEnabled checks whether a template is served
func (e *Engine) IsEnabled(template domain.Template) bool {
	return e.enabled[template]
}

// variant checks the template against the configuration before any data access
func (e *Engine) variant(template domain.Template) (token.Variant, error) {
	if !template.Valid() {
		return nil, domain.NewInvalidParameterError("template", template.String())
	}
	if !e.IsEnabled(template) {
		return nil, &domain.NotSupportedError{Template: template}
	}
	variant, ok := e.variants.For(template)
	if !ok {
		return nil, &domain.NotSupportedError{Template: template}
	}
	return variant, nil
}

func (e *Engine) source(enableIndex bool) (source, Source) {
	if enableIndex {
		return e.indexed, SourceIndexed
	}
	return e.live, SourceLive
}

func (e *Engine) observe(ctx context.Context, operation string, src Source, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDataNotExists):
			outcome = "not_found"
		case ctx.Err() != nil:
			outcome = "canceled"
		default:
			outcome = "error"
		}
	}
	metrics.PositionQueries.WithLabelValues(operation, string(src), outcome).Inc()
	metrics.PositionQueryDuration.WithLabelValues(operation, string(src)).Observe(time.Since(start).Seconds())
}
