package position_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-position-api/internal/position"
	"github.com/feral-file/ff-position-api/internal/token"
)

func TestAggregate(t *testing.T) {
	raw := token.RawBalances{
		Balance:            decimal.NewFromInt(100),
		PendingTransfer:    decimal.NewFromInt(5),
		ExchangeBalance:    decimal.NewFromInt(20),
		ExchangeCommitment: decimal.NewFromInt(7),
	}

	t.Run("bond fields", func(t *testing.T) {
		fields := token.FieldSet{token.FieldBalance, token.FieldPendingTransfer, token.FieldExchangeBalance, token.FieldExchangeCommitment, token.FieldLocked}
		values := position.Aggregate(fields, raw, decimal.NewFromInt(3), decimal.NewFromInt(9))

		assertAmount(t, 100, values.Balance)
		assertAmount(t, 5, values.PendingTransfer)
		assertAmount(t, 20, values.ExchangeBalance)
		assertAmount(t, 7, values.ExchangeCommitment)
		assertAmount(t, 3, values.Locked)
		assert.Nil(t, values.Used)
	})

	t.Run("membership drops pending and locked", func(t *testing.T) {
		fields := token.FieldSet{token.FieldBalance, token.FieldExchangeBalance, token.FieldExchangeCommitment}
		values := position.Aggregate(fields, raw, decimal.NewFromInt(3), decimal.Zero)

		assertAmount(t, 100, values.Balance)
		assert.Nil(t, values.PendingTransfer)
		assert.Nil(t, values.Locked)
		assert.Nil(t, values.Used)
	})

	t.Run("ledger used wins over index sum", func(t *testing.T) {
		fields := token.FieldSet{token.FieldBalance, token.FieldUsed}
		used := decimal.NewFromInt(40)
		withUsed := raw
		withUsed.Used = &used

		values := position.Aggregate(fields, withUsed, decimal.Zero, decimal.NewFromInt(30))
		assertAmount(t, 40, values.Used)

		values = position.Aggregate(fields, raw, decimal.Zero, decimal.NewFromInt(30))
		assertAmount(t, 30, values.Used)
	})

	t.Run("missing components are zero", func(t *testing.T) {
		fields := token.FieldSet{token.FieldBalance, token.FieldLocked}
		values := position.Aggregate(fields, token.RawBalances{}, decimal.Zero, decimal.Zero)

		assertAmount(t, 0, values.Balance)
		assertAmount(t, 0, values.Locked)
	})
}
