package ledger_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/logger"
	"github.com/feral-file/ff-position-api/internal/mocks"
)

const (
	tokenAddress   = "0x52908400098527886E0F7030069857D2E4169EE7"
	accountAddress = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func packUint(t *testing.T, v int64) []byte {
	t.Helper()
	uintType, err := abi.NewType("uint256", "", nil)
	require.NoError(t, err)
	out, err := abi.Arguments{{Type: uintType}}.Pack(big.NewInt(v))
	require.NoError(t, err)
	return out
}

func setupClient(t *testing.T, cfg ledger.Config) (*mocks.MockEthClient, ledger.Client) {
	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)
	return eth, ledger.NewClient(eth, cfg)
}

func TestClient_Contract(t *testing.T) {
	_, client := setupClient(t, ledger.Config{})

	contract, err := client.Contract(ledger.ContractTypeBond, tokenAddress)
	require.NoError(t, err)
	assert.Equal(t, ledger.ContractTypeBond, contract.Type)
	assert.Equal(t, common.HexToAddress(tokenAddress), contract.Address)

	_, err = client.Contract(ledger.ContractType("Unknown"), tokenAddress)
	assert.Error(t, err)

	_, err = client.Contract(ledger.ContractTypeBond, "0x1234")
	assert.Error(t, err)
}

func TestClient_CallFunction(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, eth *mocks.MockEthClient)
		function  string
		expected  any
		errorKind ledger.ErrorKind
	}{
		{
			name: "decodes uint256",
			setup: func(t *testing.T, eth *mocks.MockEthClient) {
				eth.EXPECT().
					CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
					DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
						assert.Equal(t, common.HexToAddress(tokenAddress), *msg.To)
						return packUint(t, 100), nil
					})
			},
			function: "balanceOf",
			expected: big.NewInt(100),
		},
		{
			name: "revert returns default",
			setup: func(t *testing.T, eth *mocks.MockEthClient) {
				eth.EXPECT().
					CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(nil, errors.New("execution reverted"))
			},
			function: "balanceOf",
			expected: big.NewInt(0),
		},
		{
			name: "empty reply returns default",
			setup: func(t *testing.T, eth *mocks.MockEthClient) {
				eth.EXPECT().
					CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return([]byte{}, nil)
			},
			function: "balanceOf",
			expected: big.NewInt(0),
		},
		{
			name: "transport failure without retries",
			setup: func(t *testing.T, eth *mocks.MockEthClient) {
				eth.EXPECT().
					CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(nil, errors.New("dial tcp: connection refused")).
					Times(1)
			},
			function:  "balanceOf",
			errorKind: ledger.KindTransport,
		},
		{
			name: "malformed reply",
			setup: func(t *testing.T, eth *mocks.MockEthClient) {
				eth.EXPECT().
					CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return([]byte{0x01, 0x02, 0x03}, nil)
			},
			function:  "balanceOf",
			errorKind: ledger.KindUnexpected,
		},
		{
			name:      "function missing from ABI",
			setup:     func(t *testing.T, eth *mocks.MockEthClient) {},
			function:  "usedOf",
			errorKind: ledger.KindUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eth, client := setupClient(t, ledger.Config{CallTimeout: time.Second})
			tt.setup(t, eth)

			contract, err := client.Contract(ledger.ContractTypeBond, tokenAddress)
			require.NoError(t, err)

			result, err := client.CallFunction(context.Background(), contract, tt.function, big.NewInt(0), common.HexToAddress(accountAddress))
			if tt.errorKind != "" {
				require.Error(t, err)
				var callErr *ledger.CallError
				require.True(t, errors.As(err, &callErr))
				assert.Equal(t, tt.errorKind, callErr.Kind)
				assert.Equal(t, tt.function, callErr.Function)
				assert.Equal(t, tt.errorKind == ledger.KindTransport, ledger.IsTransport(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 0, tt.expected.(*big.Int).Cmp(result.(*big.Int)))
		})
	}
}

func TestClient_CallFunction_RetriesTransportFailures(t *testing.T) {
	eth, client := setupClient(t, ledger.Config{CallTimeout: time.Second, MaxRetryElapsed: 5 * time.Second})

	gomock.InOrder(
		eth.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("i/o timeout")),
		eth.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(packUint(t, 7), nil),
	)

	contract, err := client.Contract(ledger.ContractTypeCoupon, tokenAddress)
	require.NoError(t, err)

	result, err := client.CallFunction(context.Background(), contract, "usedOf", big.NewInt(0), common.HexToAddress(accountAddress))
	require.NoError(t, err)

	amount, err := ledger.Amount(result)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(amount))
}

func TestClient_CallFunction_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockRateLimiter(ctrl)
	eth, client := setupClient(t, ledger.Config{MaxRetryElapsed: 5 * time.Second, Limiter: limiter})

	contract, err := client.Contract(ledger.ContractTypeBond, tokenAddress)
	require.NoError(t, err)

	// every attempt takes a token, retries included
	gomock.InOrder(
		limiter.EXPECT().Wait(gomock.Any()).Return(nil),
		eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, errors.New("connection reset")),
		limiter.EXPECT().Wait(gomock.Any()).Return(nil),
		eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(packUint(t, 3), nil),
	)
	_, err = client.CallFunction(context.Background(), contract, "balanceOf", big.NewInt(0), common.HexToAddress(accountAddress))
	require.NoError(t, err)

	// a limiter failure is not retried and counts as transport
	limiter.EXPECT().Wait(gomock.Any()).Return(context.DeadlineExceeded)
	_, err = client.CallFunction(context.Background(), contract, "balanceOf", big.NewInt(0), common.HexToAddress(accountAddress))
	require.Error(t, err)
	assert.True(t, ledger.IsTransport(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_CallFunction_MultipleOutputs(t *testing.T) {
	eth, client := setupClient(t, ledger.Config{})

	addressType, _ := abi.NewType("address", "", nil)
	stringType, _ := abi.NewType("string", "", nil)
	reply, err := abi.Arguments{{Type: addressType}, {Type: stringType}, {Type: addressType}}.
		Pack(common.HexToAddress(accountAddress), "IbetStraightBond", common.HexToAddress(tokenAddress))
	require.NoError(t, err)

	eth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(reply, nil)

	contract, err := client.Contract(ledger.ContractTypeTokenList, tokenAddress)
	require.NoError(t, err)

	result, err := client.CallFunction(context.Background(), contract, "getTokenByAddress", nil, common.HexToAddress(tokenAddress))
	require.NoError(t, err)

	values, ok := result.([]any)
	require.True(t, ok)
	require.Len(t, values, 3)
	owner, err := ledger.Address(values[0])
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(accountAddress).Hex(), owner)
	assert.Equal(t, "IbetStraightBond", values[1])
}

func TestAmount(t *testing.T) {
	amount, err := ledger.Amount(big.NewInt(42))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(42).Equal(amount))

	_, err = ledger.Amount("42")
	assert.Error(t, err)
	assert.False(t, ledger.IsTransport(err))
}
