package position

import (
	"context"

	"github.com/samber/lo"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/store"
	"github.com/feral-file/ff-position-api/internal/token"
)

// indexedSource answers from the relational index with one statement per query
type indexedSource struct {
	store store.Store
}

func (s *indexedSource) list(ctx context.Context, accountAddress string, variant token.Variant, opts ListOptions) (*Page, error) {
	page, err := s.store.GetPositions(ctx, variant.Template(), store.PositionQuery{
		AccountAddress: accountAddress,
		Offset:         opts.Offset,
		Limit:          opts.Limit,
	})
	if err != nil {
		return nil, err
	}

	positions := lo.Map(page.Rows, func(row store.PositionRow, _ int) Position {
		return positionFromRow(variant, row)
	})
	if opts.IncludeDetails {
		if err := attachDetails(ctx, variant, positions); err != nil {
			return nil, err
		}
	}

	return &Page{
		ResultSet: ResultSet{
			Count:  page.Count,
			Offset: opts.Offset,
			Limit:  opts.Limit,
			Total:  page.Total,
		},
		Positions: positions,
	}, nil
}

func (s *indexedSource) get(ctx context.Context, accountAddress, tokenAddress string, variant token.Variant, opts GetOptions) (*Position, error) {
	page, err := s.store.GetPositions(ctx, variant.Template(), store.PositionQuery{
		AccountAddress: accountAddress,
		TokenAddress:   tokenAddress,
	})
	if err != nil {
		return nil, err
	}
	if len(page.Rows) == 0 {
		return nil, domain.NewDataNotExistsError(tokenAddress)
	}

	positions := []Position{positionFromRow(variant, page.Rows[0])}
	if opts.IncludeDetails {
		if err := attachDetails(ctx, variant, positions); err != nil {
			return nil, err
		}
	}

	return &positions[0], nil
}

func positionFromRow(variant token.Variant, row store.PositionRow) Position {
	raw := token.RawBalances{
		Balance:            row.Balance,
		PendingTransfer:    row.PendingTransfer,
		ExchangeBalance:    row.ExchangeBalance,
		ExchangeCommitment: row.ExchangeCommitment,
	}
	return Position{
		ListingID:    row.ListingID,
		TokenAddress: row.TokenAddress,
		Template:     variant.Template(),
		Values:       Aggregate(variant.Fields(), raw, row.Locked, row.Used),
	}
}

// attachDetails loads the metadata of every position in place
func attachDetails(ctx context.Context, variant token.Variant, positions []Position) error {
	for i := range positions {
		details, err := variant.FetchMetadata(ctx, positions[i].TokenAddress)
		if err != nil {
			return err
		}
		positions[i].Details = details
	}
	return nil
}
