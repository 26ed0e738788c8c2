package position

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/registry"
)

func TestNewLookupError(t *testing.T) {
	tokenAddress := "0x0000000000000000000000000000000000001001"

	tests := []struct {
		name     string
		err      error
		expected LookupKind
	}{
		{
			name:     "transport call error",
			err:      &ledger.CallError{Kind: ledger.KindTransport, Err: errors.New("connection refused")},
			expected: LookupTransport,
		},
		{
			name:     "unexpected call error",
			err:      fmt.Errorf("read failed: %w", &ledger.CallError{Kind: ledger.KindUnexpected, Err: errors.New("bad output")}),
			expected: LookupUnexpected,
		},
		{
			name:     "unregistered token",
			err:      fmt.Errorf("%w: not registered", registry.ErrUnknownTemplate),
			expected: LookupUnregistered,
		},
		{
			name:     "token list unreachable",
			err:      fmt.Errorf("%w: %w", registry.ErrUnknownTemplate, &ledger.CallError{Kind: ledger.KindTransport, Err: errors.New("timeout")}),
			expected: LookupTransport,
		},
		{
			name:     "untyped error",
			err:      errors.New("boom"),
			expected: LookupTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookupErr := newLookupError(tokenAddress, tt.err)
			assert.Equal(t, tt.expected, lookupErr.Kind)
			assert.Equal(t, tokenAddress, lookupErr.Token)
			assert.ErrorIs(t, lookupErr, tt.err)
		})
	}
}

func TestContain(t *testing.T) {
	scope := lookupScope{
		template:       domain.TemplateBond,
		accountAddress: "0x00000000000000000000000000000000000000aA",
		tokenAddress:   "0x0000000000000000000000000000000000001001",
	}

	t.Run("success", func(t *testing.T) {
		result, err := contain(context.Background(), scope, func(context.Context) (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 42, *result)
	})

	t.Run("failures are contained", func(t *testing.T) {
		for _, failure := range []error{
			&ledger.CallError{Kind: ledger.KindTransport, Err: errors.New("timeout")},
			&ledger.CallError{Kind: ledger.KindUnexpected, Err: errors.New("bad output")},
			registry.ErrUnknownTemplate,
		} {
			result, err := contain(context.Background(), scope, func(context.Context) (int, error) {
				return 0, failure
			})
			assert.NoError(t, err)
			assert.Nil(t, result)
		}
	})

	t.Run("canceled request aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := contain(ctx, scope, func(ctx context.Context) (int, error) {
			return 0, &ledger.CallError{Kind: ledger.KindTransport, Err: ctx.Err()}
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
	})
}
