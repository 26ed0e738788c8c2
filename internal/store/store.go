package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/store/schema"
)

// CreateListingInput represents the input for registering a listing
type CreateListingInput struct {
	TokenAddress       string
	IsPublic           bool
	OwnerAddress       string
	MaxHoldingQuantity *int64
	MaxSellAmount      *int64
}

// PositionQuery parameterizes the per-template position statement
type PositionQuery struct {
	AccountAddress string
	// TokenAddress restricts the statement to one listing when set
	TokenAddress string
	// Offset and Limit are applied after filtering, nil means unbounded
	Offset *int
	Limit  *int
}

// PositionRow is one listed token joined with the account's indexed balances
type PositionRow struct {
	ListingID          int64
	TokenAddress       string
	Balance            decimal.Decimal
	PendingTransfer    decimal.Decimal
	ExchangeBalance    decimal.Decimal
	ExchangeCommitment decimal.Decimal
	Locked             decimal.Decimal
	Used               decimal.Decimal
	HasTransfer        bool
}

// PositionPage is the result of one per-template position statement
type PositionPage struct {
	// Total counts listed tokens of the template before the non-zero predicate
	Total uint64
	// Count counts rows passing the non-zero predicate, before offset and limit
	Count uint64
	Rows  []PositionRow
}

// AccountAdjustment holds the index-only signals of one (token, account) pair
type AccountAdjustment struct {
	Locked      decimal.Decimal
	Used        decimal.Decimal
	HasTransfer bool
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Listings
	// =============================================================================

	// CreateListing registers a token address, returns domain.ErrListingAlreadyExists on duplicates
	CreateListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error)
	// DeleteListing removes a listing, returns a domain.DataNotExistsError when absent
	DeleteListing(ctx context.Context, tokenAddress string) error
	// GetListing retrieves a listing by token address, nil when absent
	GetListing(ctx context.Context, tokenAddress string) (*schema.Listing, error)
	// GetListings retrieves every listing in insertion order
	GetListings(ctx context.Context) ([]schema.Listing, error)

	// =============================================================================
	// Positions
	// =============================================================================

	// GetPositions runs the precompiled position statement of a template
	GetPositions(ctx context.Context, template domain.Template, query PositionQuery) (*PositionPage, error)
	// GetAccountAdjustments returns locked and used sums plus transfer history for listed tokens
	GetAccountAdjustments(ctx context.Context, accountAddress string, tokenAddresses []string) (map[string]AccountAdjustment, error)

	// =============================================================================
	// Token metadata cache
	// =============================================================================

	GetBondToken(ctx context.Context, tokenAddress string) (*schema.BondToken, error)
	GetShareToken(ctx context.Context, tokenAddress string) (*schema.ShareToken, error)
	GetMembershipToken(ctx context.Context, tokenAddress string) (*schema.MembershipToken, error)
	GetCouponToken(ctx context.Context, tokenAddress string) (*schema.CouponToken, error)

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}
