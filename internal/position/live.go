package position

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"github.com/samber/lo"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/registry"
	"github.com/feral-file/ff-position-api/internal/store"
	"github.com/feral-file/ff-position-api/internal/store/schema"
	"github.com/feral-file/ff-position-api/internal/token"
)

// liveSource recomputes positions from the ledger, taking only locked and used sums from the index
type liveSource struct {
	store      store.Store
	registry   registry.Resolver
	maxWorkers int
}

// lookupResult is the outcome of one listed token
type lookupResult struct {
	// matched is false when the token belongs to another template
	matched  bool
	included bool
	position Position
}

// outcome pairs a contained lookup with its abort error
type outcome struct {
	result *lookupResult
	err    error
}

func (s *liveSource) list(ctx context.Context, accountAddress string, variant token.Variant, opts ListOptions) (*Page, error) {
	listings, err := s.store.GetListings(ctx)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.store.GetAccountAdjustments(ctx, accountAddress, lo.Map(listings, func(l schema.Listing, _ int) string {
		return l.TokenAddress
	}))
	if err != nil {
		return nil, err
	}

	outcomes, err := s.lookupAll(ctx, accountAddress, variant, listings, adjustments)
	if err != nil {
		return nil, err
	}

	// counters run in listing order, the same as a sequential scan
	offset := lo.FromPtr(opts.Offset)
	var total, count uint64
	positions := []Position{}
	for _, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		if o.result == nil || !o.result.matched {
			continue
		}
		total++
		if !o.result.included {
			continue
		}
		count++

		index := int(count) - 1
		if index < offset {
			continue
		}
		if opts.Limit != nil && index-offset >= *opts.Limit {
			continue
		}
		positions = append(positions, o.result.position)
	}

	if opts.IncludeDetails {
		if err := attachDetails(ctx, variant, positions); err != nil {
			return nil, err
		}
	}

	return &Page{
		ResultSet: ResultSet{
			Count:  count,
			Offset: opts.Offset,
			Limit:  opts.Limit,
			Total:  total,
		},
		Positions: positions,
	}, nil
}

// lookupAll runs the per-token lookups on a bounded pool and returns them in listing order
func (s *liveSource) lookupAll(ctx context.Context, accountAddress string, variant token.Variant, listings []schema.Listing, adjustments map[string]store.AccountAdjustment) ([]outcome, error) {
	if len(listings) == 0 {
		return nil, nil
	}

	pool := pond.NewResultPool[outcome](s.maxWorkers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, listing := range listings {
		group.Submit(func() outcome {
			scope := lookupScope{
				template:       variant.Template(),
				accountAddress: accountAddress,
				tokenAddress:   listing.TokenAddress,
			}
			result, err := contain(ctx, scope, func(ctx context.Context) (lookupResult, error) {
				return s.lookup(ctx, accountAddress, variant, listing, adjustments[listing.TokenAddress])
			})
			return outcome{result: result, err: err}
		})
	}

	outcomes, err := group.Wait()
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

// lookup resolves the template of a listed token and reads its balances when it matches
func (s *liveSource) lookup(ctx context.Context, accountAddress string, variant token.Variant, listing schema.Listing, adjustment store.AccountAdjustment) (lookupResult, error) {
	template, err := s.registry.Template(ctx, listing.TokenAddress)
	if err != nil {
		return lookupResult{}, err
	}
	if template != variant.Template() {
		return lookupResult{matched: false}, nil
	}
	return s.read(ctx, accountAddress, variant, listing, adjustment)
}

// read merges the ledger balances of a token with its index adjustments
func (s *liveSource) read(ctx context.Context, accountAddress string, variant token.Variant, listing schema.Listing, adjustment store.AccountAdjustment) (lookupResult, error) {
	raw, err := variant.RemoteFields(ctx, listing.TokenAddress, accountAddress)
	if err != nil {
		return lookupResult{}, err
	}

	values := Aggregate(variant.Fields(), raw, adjustment.Locked, adjustment.Used)
	return lookupResult{
		matched:  true,
		included: included(variant, values, adjustment.HasTransfer),
		position: Position{
			ListingID:    listing.ID,
			TokenAddress: listing.TokenAddress,
			Template:     variant.Template(),
			Values:       values,
		},
	}, nil
}

func (s *liveSource) get(ctx context.Context, accountAddress, tokenAddress string, variant token.Variant, opts GetOptions) (*Position, error) {
	resolution, resolveErr := s.registry.Resolve(ctx, tokenAddress)
	if resolveErr != nil && !errors.Is(resolveErr, registry.ErrUnknownTemplate) {
		return nil, resolveErr
	}
	if !resolution.Listed {
		return nil, domain.NewDataNotExistsError(tokenAddress)
	}

	adjustments, err := s.store.GetAccountAdjustments(ctx, accountAddress, []string{tokenAddress})
	if err != nil {
		return nil, err
	}

	scope := lookupScope{
		template:       variant.Template(),
		accountAddress: accountAddress,
		tokenAddress:   tokenAddress,
	}
	result, err := contain(ctx, scope, func(ctx context.Context) (lookupResult, error) {
		if resolveErr != nil {
			return lookupResult{}, resolveErr
		}
		if resolution.Template != variant.Template() {
			return lookupResult{matched: false}, nil
		}
		return s.read(ctx, accountAddress, variant, *resolution.Listing, adjustments[tokenAddress])
	})
	if err != nil {
		return nil, err
	}
	if result == nil || !result.matched || !result.included {
		return nil, domain.NewDataNotExistsError(tokenAddress)
	}

	position := result.position
	if opts.IncludeDetails {
		if position.Details, err = variant.FetchMetadata(ctx, tokenAddress); err != nil {
			return nil, err
		}
	}

	return &position, nil
}
