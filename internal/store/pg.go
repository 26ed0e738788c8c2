package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// database/sql treats MaxOpenConns=0 as "unlimited" and MaxIdleConns=0 as "no idle connections".
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateListing registers a token address
func (s *pgStore) CreateListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error) {
	listing := schema.Listing{
		TokenAddress:       domain.NormalizeAddress(input.TokenAddress),
		IsPublic:           input.IsPublic,
		OwnerAddress:       domain.NormalizeAddress(input.OwnerAddress),
		MaxHoldingQuantity: input.MaxHoldingQuantity,
		MaxSellAmount:      input.MaxSellAmount,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_address"}},
			DoNothing: true,
		}).
		Create(&listing)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrListingAlreadyExists, listing.TokenAddress)
	}

	return &listing, nil
}

// DeleteListing removes a listing
func (s *pgStore) DeleteListing(ctx context.Context, tokenAddress string) error {
	tokenAddress = domain.NormalizeAddress(tokenAddress)

	result := s.db.WithContext(ctx).
		Where("token_address = ?", tokenAddress).
		Delete(&schema.Listing{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewDataNotExistsError(tokenAddress)
	}

	return nil
}

// GetListing retrieves a listing by token address
func (s *pgStore) GetListing(ctx context.Context, tokenAddress string) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).
		Where("token_address = ?", domain.NormalizeAddress(tokenAddress)).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &listing, nil
}

// GetListings retrieves every listing in insertion order
func (s *pgStore) GetListings(ctx context.Context) ([]schema.Listing, error) {
	var listings []schema.Listing
	err := s.db.WithContext(ctx).Order("id ASC").Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}

	return listings, nil
}

// GetPositions runs the precompiled position statement of a template
func (s *pgStore) GetPositions(ctx context.Context, template domain.Template, query PositionQuery) (*PositionPage, error) {
	statement, ok := positionQueries[template]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotSupported, template)
	}

	tokenAddress := ""
	if query.TokenAddress != "" {
		tokenAddress = domain.NormalizeAddress(query.TokenAddress)
	}

	var rows []positionPageRow
	err := s.db.WithContext(ctx).
		Raw(statement, map[string]any{
			"account": domain.NormalizeAddress(query.AccountAddress),
			"token":   tokenAddress,
			"offset":  query.Offset,
			"limit":   query.Limit,
		}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get %s positions: %w", template, err)
	}

	page := &PositionPage{Rows: []PositionRow{}}
	for _, row := range rows {
		page.Total = row.Total
		page.Count = row.Count
		if row.ListingID == nil || row.TokenAddress == nil {
			continue
		}
		page.Rows = append(page.Rows, PositionRow{
			ListingID:          *row.ListingID,
			TokenAddress:       *row.TokenAddress,
			Balance:            row.Balance.Decimal,
			PendingTransfer:    row.PendingTransfer.Decimal,
			ExchangeBalance:    row.ExchangeBalance.Decimal,
			ExchangeCommitment: row.ExchangeCommitment.Decimal,
			Locked:             row.Locked.Decimal,
			Used:               row.Used.Decimal,
			HasTransfer:        row.HasTransfer != nil && *row.HasTransfer,
		})
	}

	return page, nil
}

// GetAccountAdjustments returns locked and used sums plus transfer history for listed tokens
func (s *pgStore) GetAccountAdjustments(ctx context.Context, accountAddress string, tokenAddresses []string) (map[string]AccountAdjustment, error) {
	result := make(map[string]AccountAdjustment, len(tokenAddresses))
	if len(tokenAddresses) == 0 {
		return result, nil
	}

	var rows []struct {
		TokenAddress string
		Locked       decimal.NullDecimal
		Used         decimal.NullDecimal
		HasTransfer  bool
	}
	err := s.db.WithContext(ctx).
		Raw(accountAdjustmentsQuery, map[string]any{
			"account": domain.NormalizeAddress(accountAddress),
			"tokens":  domain.NormalizeAddresses(append([]string(nil), tokenAddresses...)),
		}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get account adjustments: %w", err)
	}

	for _, row := range rows {
		result[row.TokenAddress] = AccountAdjustment{
			Locked:      row.Locked.Decimal,
			Used:        row.Used.Decimal,
			HasTransfer: row.HasTransfer,
		}
	}

	return result, nil
}

// GetBondToken retrieves the bond metadata cache row, nil when absent
func (s *pgStore) GetBondToken(ctx context.Context, tokenAddress string) (*schema.BondToken, error) {
	return getByTokenAddress[schema.BondToken](ctx, s.db, tokenAddress)
}

// GetShareToken retrieves the share metadata cache row, nil when absent
func (s *pgStore) GetShareToken(ctx context.Context, tokenAddress string) (*schema.ShareToken, error) {
	return getByTokenAddress[schema.ShareToken](ctx, s.db, tokenAddress)
}

// GetMembershipToken retrieves the membership metadata cache row, nil when absent
func (s *pgStore) GetMembershipToken(ctx context.Context, tokenAddress string) (*schema.MembershipToken, error) {
	return getByTokenAddress[schema.MembershipToken](ctx, s.db, tokenAddress)
}

// GetCouponToken retrieves the coupon metadata cache row, nil when absent
func (s *pgStore) GetCouponToken(ctx context.Context, tokenAddress string) (*schema.CouponToken, error) {
	return getByTokenAddress[schema.CouponToken](ctx, s.db, tokenAddress)
}

func getByTokenAddress[T any](ctx context.Context, db *gorm.DB, tokenAddress string) (*T, error) {
	var row T
	err := db.WithContext(ctx).
		Where("token_address = ?", domain.NormalizeAddress(tokenAddress)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token metadata: %w", err)
	}

	return &row, nil
}

// Ping checks database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
