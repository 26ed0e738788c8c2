package position

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/logger"
	"github.com/feral-file/ff-position-api/internal/metrics"
	"github.com/feral-file/ff-position-api/internal/registry"
)

// LookupKind classifies a failed per-token lookup
type LookupKind string

const (
	// LookupTransport covers unreachable nodes and timeouts
	LookupTransport LookupKind = "transport"
	// LookupUnexpected covers replies of an unexpected shape
	LookupUnexpected LookupKind = "unexpected"
	// LookupUnregistered covers listed tokens missing from the token list
	LookupUnregistered LookupKind = "unregistered"
)

// LookupError is the failure of one per-token lookup. It never aborts an enumeration.
type LookupError struct {
	Kind  LookupKind
	Token string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failure for token %s: %v", e.Kind, e.Token, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// newLookupError classifies err for a token
func newLookupError(tokenAddress string, err error) *LookupError {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr
	}

	kind := LookupTransport
	var callErr *ledger.CallError
	switch {
	case errors.As(err, &callErr):
		if callErr.Kind == ledger.KindUnexpected {
			kind = LookupUnexpected
		}
	case errors.Is(err, registry.ErrUnknownTemplate):
		kind = LookupUnregistered
	}

	return &LookupError{Kind: kind, Token: tokenAddress, Err: err}
}

// lookupScope identifies one per-token lookup in logs and metrics
type lookupScope struct {
	template       domain.Template
	accountAddress string
	tokenAddress   string
}

// contain runs one per-token lookup. A failed lookup is logged and reported as nil
// so the caller skips the token. Only cancellation of the request is returned.
func contain[T any](ctx context.Context, scope lookupScope, fn func(context.Context) (T, error)) (*T, error) {
	value, err := fn(ctx)
	if err == nil {
		return &value, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	lookupErr := newLookupError(scope.tokenAddress, err)
	fields := []zap.Field{
		zap.String("token_address", scope.tokenAddress),
		zap.String("account_address", scope.accountAddress),
		zap.String("template", scope.template.String()),
		zap.String("kind", string(lookupErr.Kind)),
	}

	switch lookupErr.Kind {
	case LookupUnregistered:
		logger.DebugCtx(ctx, "Skipping token missing from the token list", append(fields, zap.Error(err))...)
	case LookupTransport:
		logger.WarnCtx(ctx, "Skipping token after ledger call failure", append(fields, zap.Error(err))...)
	default:
		logger.ErrorCtx(ctx, lookupErr, fields...)
	}
	metrics.LookupFailures.WithLabelValues(scope.template.String(), string(lookupErr.Kind)).Inc()

	return nil, nil
}
