package ledger

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-position-api/internal/adapter"
	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/logger"
)

const retryInitialInterval = 100 * time.Millisecond

// Config holds ledger client configuration
type Config struct {
	// CallTimeout bounds a single eth_call attempt
	CallTimeout time.Duration
	// MaxRetryElapsed bounds the total time spent retrying transport failures, zero disables retries
	MaxRetryElapsed time.Duration
	// Limiter throttles every call attempt, nil means unlimited
	Limiter Limiter
}

// Limiter blocks until a call may be sent to the node
type Limiter interface {
	Wait(ctx context.Context) error
}

// Contract is a handle to a deployed contract bound to its ABI
type Contract struct {
	Type    ContractType
	Address common.Address
	abi     *abi.ABI
}

// Client defines the read-only contract call layer
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// Contract returns a handle for the contract of the given type deployed at address
	Contract(contractType ContractType, address string) (Contract, error)

	// CallFunction calls a view function and returns its decoded output.
	// A revert or an empty reply yields def. Functions with several outputs return []any.
	CallFunction(ctx context.Context, contract Contract, function string, def any, args ...any) (any, error)
}

type client struct {
	eth    adapter.EthClient
	config Config
}

// NewClient creates a new ledger client
func NewClient(eth adapter.EthClient, config Config) Client {
	return &client{eth: eth, config: config}
}

// Contract returns a handle for the contract of the given type deployed at address
func (c *client) Contract(contractType ContractType, address string) (Contract, error) {
	contractABI, ok := abis[contractType]
	if !ok {
		return Contract{}, fmt.Errorf("unknown contract type: %s", contractType)
	}
	if !domain.ValidAddress(address) {
		return Contract{}, fmt.Errorf("invalid contract address: %s", address)
	}
	return Contract{
		Type:    contractType,
		Address: common.HexToAddress(address),
		abi:     contractABI,
	}, nil
}

// CallFunction calls a view function and returns its decoded output
func (c *client) CallFunction(ctx context.Context, contract Contract, function string, def any, args ...any) (any, error) {
	if contract.abi == nil {
		return nil, c.unexpected(contract, function, fmt.Errorf("contract handle is not initialized"))
	}
	method, ok := contract.abi.Methods[function]
	if !ok {
		return nil, c.unexpected(contract, function, fmt.Errorf("function not found in %s ABI", contract.Type))
	}

	data, err := contract.abi.Pack(function, args...)
	if err != nil {
		return nil, c.unexpected(contract, function, fmt.Errorf("failed to pack data: %w", err))
	}

	var (
		result   []byte
		reverted bool
		attempt  int
	)
	operation := func() error {
		attempt++
		if c.config.Limiter != nil {
			if err := c.config.Limiter.Wait(ctx); err != nil {
				return backoff.Permanent(fmt.Errorf("rate limiter: %w", err))
			}
		}

		callCtx, cancel := c.callContext(ctx)
		defer cancel()

		res, err := c.eth.CallContract(callCtx, ethereum.CallMsg{
			To:   &contract.Address,
			Data: data,
		}, nil)
		if err != nil {
			if isRevertError(err) {
				reverted = true
				return nil
			}
			return err
		}
		result = res
		return nil
	}
	notify := func(err error, next time.Duration) {
		logger.DebugCtx(ctx, "Contract call failed, retrying",
			zap.String("contract", contract.Address.Hex()),
			zap.String("function", function),
			zap.Int("attempt", attempt),
			zap.Duration("next_retry_in", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, c.backoff(ctx), notify); err != nil {
		return nil, &CallError{
			Kind:     KindTransport,
			Contract: contract.Address.Hex(),
			Function: function,
			Err:      err,
		}
	}

	if reverted || len(result) == 0 {
		return def, nil
	}

	values, err := method.Outputs.Unpack(result)
	if err != nil {
		return nil, c.unexpected(contract, function, fmt.Errorf("failed to unpack result: %w", err))
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return values, nil
}

func (c *client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.config.CallTimeout)
}

func (c *client) backoff(ctx context.Context) backoff.BackOffContext {
	if c.config.MaxRetryElapsed <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.MaxInterval = c.config.MaxRetryElapsed
	b.MaxElapsedTime = c.config.MaxRetryElapsed
	return backoff.WithContext(b, ctx)
}

func (c *client) unexpected(contract Contract, function string, err error) error {
	return &CallError{
		Kind:     KindUnexpected,
		Contract: contract.Address.Hex(),
		Function: function,
		Err:      err,
	}
}

// isRevertError checks if the node rejected the call because the contract reverted
func isRevertError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "execution reverted") ||
		strings.Contains(errStr, "invalid opcode") ||
		strings.Contains(errStr, "out of gas")
}

// Amount converts a uint256 call result into a decimal
func Amount(v any) (decimal.Decimal, error) {
	switch value := v.(type) {
	case *big.Int:
		return domain.AmountFromBigInt(value), nil
	default:
		return decimal.Zero, &CallError{Kind: KindUnexpected, Err: fmt.Errorf("expected uint256, got %T", v)}
	}
}

// Address converts an address call result into its checksum form
func Address(v any) (string, error) {
	switch value := v.(type) {
	case common.Address:
		return value.Hex(), nil
	default:
		return "", &CallError{Kind: KindUnexpected, Err: fmt.Errorf("expected address, got %T", v)}
	}
}
