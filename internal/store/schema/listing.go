package schema

import (
	"time"
)

// Listing represents the listings table - token addresses registered as in scope for the service
type Listing struct {
	// ID is the insertion order, used as the stable sort key of every position listing
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the checksum address of the listed token
	TokenAddress string `gorm:"column:token_address;not null;type:text;uniqueIndex:idx_listings_token_address"`
	// IsPublic marks tokens visible to every account
	IsPublic bool `gorm:"column:is_public;not null"`
	// OwnerAddress is the issuer address that registered the token
	OwnerAddress string `gorm:"column:owner_address;not null;type:text"`
	// MaxHoldingQuantity is the per-account holding cap, if any
	MaxHoldingQuantity *int64 `gorm:"column:max_holding_quantity"`
	// MaxSellAmount is the per-order sell cap, if any
	MaxSellAmount *int64 `gorm:"column:max_sell_amount"`
	// CreatedAt is the timestamp when the listing was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
