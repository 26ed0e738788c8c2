package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position represents the positions table - free, pending and exchange balances per (token, account)
type Position struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the checksum address of the token
	TokenAddress string `gorm:"column:token_address;not null;type:text;uniqueIndex:idx_positions_token_account,priority:1"`
	// AccountAddress is the checksum address of the holder
	AccountAddress string `gorm:"column:account_address;not null;type:text;uniqueIndex:idx_positions_token_account,priority:2"`
	// Balance is the freely transferable balance
	Balance decimal.Decimal `gorm:"column:balance;not null;default:0;type:numeric(78,0)"`
	// PendingTransfer is the amount waiting for transfer approval
	PendingTransfer decimal.Decimal `gorm:"column:pending_transfer;not null;default:0;type:numeric(78,0)"`
	// ExchangeBalance is the amount deposited to the tradable exchange
	ExchangeBalance decimal.Decimal `gorm:"column:exchange_balance;not null;default:0;type:numeric(78,0)"`
	// ExchangeCommitment is the amount committed to open orders on the exchange
	ExchangeCommitment decimal.Decimal `gorm:"column:exchange_commitment;not null;default:0;type:numeric(78,0)"`
	// Modified is the timestamp of the last indexed event that touched this row
	Modified time.Time `gorm:"column:modified;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Position model
func (Position) TableName() string {
	return "positions"
}

// LockedPosition represents the locked_positions table - value locked under a lock-holder per (token, account)
type LockedPosition struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TokenAddress   string          `gorm:"column:token_address;not null;type:text;uniqueIndex:idx_locked_positions_token_lock_account,priority:1"`
	LockAddress    string          `gorm:"column:lock_address;not null;type:text;uniqueIndex:idx_locked_positions_token_lock_account,priority:2"`
	AccountAddress string          `gorm:"column:account_address;not null;type:text;uniqueIndex:idx_locked_positions_token_lock_account,priority:3"`
	Value          decimal.Decimal `gorm:"column:value;not null;default:0;type:numeric(78,0)"`
	Modified       time.Time       `gorm:"column:modified;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LockedPosition model
func (LockedPosition) TableName() string {
	return "locked_positions"
}
