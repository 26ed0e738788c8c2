package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/logger"
	"github.com/feral-file/ff-position-api/internal/store/schema"
)

// ErrUnknownTemplate is returned when the token list has no usable entry for a token
var ErrUnknownTemplate = errors.New("unknown template")

// Resolution is the outcome of resolving one token address
type Resolution struct {
	Template domain.Template
	// Enabled reports whether the template is switched on for this service
	Enabled bool
	// Listed reports whether the token has a listing row
	Listed  bool
	Listing *schema.Listing
}

// ListingReader reads the listings table
type ListingReader interface {
	GetListing(ctx context.Context, tokenAddress string) (*schema.Listing, error)
}

// Resolver maps token addresses to their instrument template
//
//go:generate mockgen -source=resolver.go -destination=../mocks/registry.go -package=mocks -mock_names=Resolver=MockRegistryResolver,ListingReader=MockListingReader
type Resolver interface {
	// Resolve looks up the listing of a token and, when listed, its template on the token list.
	// A token that is not listed resolves with Listed=false and no error.
	Resolve(ctx context.Context, tokenAddress string) (Resolution, error)

	// Template reads the template of a token from the token list.
	// Failures and unregistered tokens are reported as ErrUnknownTemplate.
	Template(ctx context.Context, tokenAddress string) (domain.Template, error)

	// IsEnabled checks a template against the service configuration
	IsEnabled(template domain.Template) bool
}

// Config holds the resolver configuration
type Config struct {
	TokenListAddress string
	Enabled          []domain.Template
}

type resolver struct {
	listings ListingReader
	client   ledger.Client
	cache    Cache
	config   Config
	enabled  map[domain.Template]bool
}

// NewResolver creates a registry resolver. cache may be nil.
func NewResolver(listings ListingReader, client ledger.Client, cache Cache, config Config) Resolver {
	return &resolver{
		listings: listings,
		client:   client,
		cache:    cache,
		config:   config,
		enabled: lo.SliceToMap(config.Enabled, func(t domain.Template) (domain.Template, bool) {
			return t, true
		}),
	}
}

func (r *resolver) IsEnabled(template domain.Template) bool {
	return r.enabled[template]
}

func (r *resolver) Resolve(ctx context.Context, tokenAddress string) (Resolution, error) {
	listing, err := r.listings.GetListing(ctx, tokenAddress)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to get listing: %w", err)
	}
	if listing == nil {
		return Resolution{Listed: false}, nil
	}

	template, err := r.Template(ctx, tokenAddress)
	if err != nil {
		return Resolution{Listed: true, Listing: listing}, err
	}

	return Resolution{
		Template: template,
		Enabled:  r.IsEnabled(template),
		Listed:   true,
		Listing:  listing,
	}, nil
}

func (r *resolver) Template(ctx context.Context, tokenAddress string) (domain.Template, error) {
	tokenAddress = domain.NormalizeAddress(tokenAddress)

	if r.cache != nil {
		name, ok, err := r.cache.Get(ctx, tokenAddress)
		if err != nil {
			logger.WarnCtx(ctx, "registry cache read failed", zap.String("token_address", tokenAddress), zap.Error(err))
		} else if ok {
			if template, known := domain.TemplateFromContract(name); known {
				return template, nil
			}
		}
	}

	name, err := r.lookup(ctx, tokenAddress)
	if err != nil {
		return "", err
	}

	template, known := domain.TemplateFromContract(name)
	if !known {
		return "", fmt.Errorf("%w: token_address=%s template=%q", ErrUnknownTemplate, tokenAddress, name)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, tokenAddress, name); err != nil {
			logger.WarnCtx(ctx, "registry cache write failed", zap.String("token_address", tokenAddress), zap.Error(err))
		}
	}

	return template, nil
}

// lookup calls getTokenByAddress on the token list. The zero tuple means not registered.
func (r *resolver) lookup(ctx context.Context, tokenAddress string) (string, error) {
	if domain.IsZeroAddress(r.config.TokenListAddress) {
		return "", fmt.Errorf("%w: token list address is not configured", ErrUnknownTemplate)
	}

	contract, err := r.client.Contract(ledger.ContractTypeTokenList, r.config.TokenListAddress)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownTemplate, err)
	}

	def := []any{common.Address{}, "", common.Address{}}
	result, err := r.client.CallFunction(ctx, contract, "getTokenByAddress", def, common.HexToAddress(tokenAddress))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownTemplate, err)
	}

	values, ok := result.([]any)
	if !ok || len(values) != 3 {
		return "", fmt.Errorf("%w: %w", ErrUnknownTemplate, &ledger.CallError{
			Kind:     ledger.KindUnexpected,
			Contract: r.config.TokenListAddress,
			Function: "getTokenByAddress",
			Err:      fmt.Errorf("unexpected output %T", result),
		})
	}

	name, ok := values[1].(string)
	if !ok {
		return "", fmt.Errorf("%w: %w", ErrUnknownTemplate, &ledger.CallError{
			Kind:     ledger.KindUnexpected,
			Contract: r.config.TokenListAddress,
			Function: "getTokenByAddress",
			Err:      fmt.Errorf("unexpected template type %T", values[1]),
		})
	}
	registered, err := ledger.Address(values[2])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownTemplate, err)
	}

	if name == "" || domain.IsZeroAddress(registered) {
		return "", fmt.Errorf("%w: token_address=%s is not registered", ErrUnknownTemplate, tokenAddress)
	}

	return name, nil
}
