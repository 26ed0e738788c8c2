package position

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-position-api/internal/token"
)

// Aggregate merges ledger reads with the index-only locked and used sums into one position record.
// Components outside fields stay nil. A used amount read from the ledger wins over the index sum.
func Aggregate(fields token.FieldSet, raw token.RawBalances, locked, used decimal.Decimal) token.Values {
	if raw.Used != nil {
		used = *raw.Used
	}

	return token.Values{
		Balance:            pick(fields, token.FieldBalance, raw.Balance),
		PendingTransfer:    pick(fields, token.FieldPendingTransfer, raw.PendingTransfer),
		ExchangeBalance:    pick(fields, token.FieldExchangeBalance, raw.ExchangeBalance),
		ExchangeCommitment: pick(fields, token.FieldExchangeCommitment, raw.ExchangeCommitment),
		Locked:             pick(fields, token.FieldLocked, locked),
		Used:               pick(fields, token.FieldUsed, used),
	}
}

func pick(fields token.FieldSet, field token.Field, value decimal.Decimal) *decimal.Decimal {
	if !fields.Has(field) {
		return nil
	}
	return &value
}

// included decides whether a position is part of a result
func included(variant token.Variant, values token.Values, hasTransfer bool) bool {
	if !variant.IsZero(values) {
		return true
	}
	return variant.KeepsTransferHistory() && hasTransfer
}
