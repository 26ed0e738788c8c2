package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
)

// ledgerReader wraps the call layer with the reads shared by the variants.
// Every call supplies a zero default so reverts read as zero.
type ledgerReader struct {
	client ledger.Client
}

func (r *ledgerReader) contract(contractType ledger.ContractType, address string) (ledger.Contract, error) {
	contract, err := r.client.Contract(contractType, address)
	if err != nil {
		return ledger.Contract{}, &ledger.CallError{Kind: ledger.KindUnexpected, Contract: address, Err: err}
	}
	return contract, nil
}

func (r *ledgerReader) amount(ctx context.Context, contract ledger.Contract, function string, args ...any) (decimal.Decimal, error) {
	result, err := r.client.CallFunction(ctx, contract, function, big.NewInt(0), args...)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.Amount(result)
}

// balanceOf reads the free balance of the account
func (r *ledgerReader) balanceOf(ctx context.Context, contract ledger.Contract, accountAddress string) (decimal.Decimal, error) {
	return r.amount(ctx, contract, "balanceOf", common.HexToAddress(accountAddress))
}

// exchangeBalances reads the custodied balance and commitment on the token's tradable exchange.
// A token without an exchange reports zeros.
func (r *ledgerReader) exchangeBalances(ctx context.Context, contract ledger.Contract, accountAddress string) (decimal.Decimal, decimal.Decimal, error) {
	result, err := r.client.CallFunction(ctx, contract, "tradableExchange", common.Address{})
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	exchangeAddress, err := ledger.Address(result)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if domain.IsZeroAddress(exchangeAddress) {
		return decimal.Zero, decimal.Zero, nil
	}

	exchange, err := r.contract(ledger.ContractTypeExchange, exchangeAddress)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	account := common.HexToAddress(accountAddress)
	balance, err := r.amount(ctx, exchange, "balanceOf", account, contract.Address)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	commitment, err := r.amount(ctx, exchange, "commitmentOf", account, contract.Address)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return balance, commitment, nil
}
