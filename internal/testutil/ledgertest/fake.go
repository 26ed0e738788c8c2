// Package ledgertest provides an in-memory ledger.Client holding canned view results.
package ledgertest

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
)

// Fake implements ledger.Client. Calls without a canned result return their default,
// the same way a reverting contract does.
type Fake struct {
	mu       sync.RWMutex
	results  map[string]any
	failures map[common.Address]error
	calls    map[string]int
}

// New creates an empty fake ledger
func New() *Fake {
	return &Fake{
		results:  make(map[string]any),
		failures: make(map[common.Address]error),
		calls:    make(map[string]int),
	}
}

func (f *Fake) Contract(contractType ledger.ContractType, address string) (ledger.Contract, error) {
	if !domain.ValidAddress(address) {
		return ledger.Contract{}, fmt.Errorf("invalid contract address: %s", address)
	}
	return ledger.Contract{Type: contractType, Address: common.HexToAddress(address)}, nil
}

func (f *Fake) CallFunction(_ context.Context, contract ledger.Contract, function string, def any, args ...any) (any, error) {
	key := callKey(contract.Address, function, args...)

	f.mu.Lock()
	f.calls[function]++
	f.mu.Unlock()

	f.mu.RLock()
	defer f.mu.RUnlock()

	if err, ok := f.failures[contract.Address]; ok {
		return nil, err
	}
	if result, ok := f.results[key]; ok {
		return result, nil
	}
	return def, nil
}

// Set stores the result of a view call
func (f *Fake) Set(contract string, function string, result any, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[callKey(common.HexToAddress(contract), function, args...)] = result
}

// Fail makes every call against a contract return err
func (f *Fake) Fail(contract string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[common.HexToAddress(contract)] = err
}

// Calls returns how many times a function was called on any contract
func (f *Fake) Calls(function string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls[function]
}

// SetBalance sets balanceOf(account) on a token
func (f *Fake) SetBalance(token, account string, amount int64) {
	f.Set(token, "balanceOf", big.NewInt(amount), common.HexToAddress(account))
}

// SetPendingTransfer sets pendingTransfer(account) on a token
func (f *Fake) SetPendingTransfer(token, account string, amount int64) {
	f.Set(token, "pendingTransfer", big.NewInt(amount), common.HexToAddress(account))
}

// SetUsed sets usedOf(account) on a coupon
func (f *Fake) SetUsed(token, account string, amount int64) {
	f.Set(token, "usedOf", big.NewInt(amount), common.HexToAddress(account))
}

// SetExchange sets tradableExchange() on a token
func (f *Fake) SetExchange(token, exchange string) {
	f.Set(token, "tradableExchange", common.HexToAddress(exchange))
}

// SetExchangeBalances sets balanceOf and commitmentOf(account, token) on an exchange
func (f *Fake) SetExchangeBalances(exchange, account, token string, balance, commitment int64) {
	f.Set(exchange, "balanceOf", big.NewInt(balance), common.HexToAddress(account), common.HexToAddress(token))
	f.Set(exchange, "commitmentOf", big.NewInt(commitment), common.HexToAddress(account), common.HexToAddress(token))
}

// Register records a token in the token list contract
func (f *Fake) Register(tokenList, token, template, owner string) {
	f.Set(tokenList, "getTokenByAddress",
		[]any{common.HexToAddress(owner), template, common.HexToAddress(token)},
		common.HexToAddress(token))
}

func callKey(contract common.Address, function string, args ...any) string {
	parts := []string{contract.Hex(), function}
	for _, arg := range args {
		switch v := arg.(type) {
		case common.Address:
			parts = append(parts, v.Hex())
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, "|")
}
