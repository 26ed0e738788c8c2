package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumeCoupon represents the consume_coupons table - append-only coupon consumption events
type ConsumeCoupon struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionHash string          `gorm:"column:transaction_hash;not null;type:text"`
	TokenAddress    string          `gorm:"column:token_address;not null;type:text;index:idx_consume_coupons_token_account,priority:1"`
	AccountAddress  string          `gorm:"column:account_address;not null;type:text;index:idx_consume_coupons_token_account,priority:2"`
	Amount          decimal.Decimal `gorm:"column:amount;not null;type:numeric(78,0)"`
	BlockTimestamp  time.Time       `gorm:"column:block_timestamp;not null;type:timestamptz"`
}

// TableName specifies the table name for the ConsumeCoupon model
func (ConsumeCoupon) TableName() string {
	return "consume_coupons"
}

// Transfer represents the transfers table - token transfer history
type Transfer struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionHash string          `gorm:"column:transaction_hash;not null;type:text"`
	TokenAddress    string          `gorm:"column:token_address;not null;type:text;index:idx_transfers_token_to,priority:1"`
	FromAddress     string          `gorm:"column:from_address;not null;type:text"`
	ToAddress       string          `gorm:"column:to_address;not null;type:text;index:idx_transfers_token_to,priority:2"`
	Value           decimal.Decimal `gorm:"column:value;not null;type:numeric(78,0)"`
	BlockTimestamp  time.Time       `gorm:"column:block_timestamp;not null;type:timestamptz"`
}

// TableName specifies the table name for the Transfer model
func (Transfer) TableName() string {
	return "transfers"
}
