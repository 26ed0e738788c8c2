package token_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/mocks"
	"github.com/feral-file/ff-position-api/internal/store/schema"
	"github.com/feral-file/ff-position-api/internal/testutil/ledgertest"
	"github.com/feral-file/ff-position-api/internal/token"
)

var (
	tokenAddress    = common.BigToAddress(big.NewInt(0x1001)).Hex()
	exchangeAddress = common.BigToAddress(big.NewInt(0x2002)).Hex()
	accountAddress  = common.BigToAddress(big.NewInt(0x3003)).Hex()
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func setupVariants(t *testing.T) (*mocks.MockMetadataReader, *ledgertest.Fake, token.Variants) {
	ctrl := gomock.NewController(t)
	metadata := mocks.NewMockMetadataReader(ctrl)
	fake := ledgertest.New()
	return metadata, fake, token.NewVariants(metadata, fake)
}

func TestVariants_For(t *testing.T) {
	_, _, variants := setupVariants(t)

	for _, template := range domain.Templates {
		variant, ok := variants.For(template)
		require.True(t, ok, template)
		assert.Equal(t, template, variant.Template())
	}

	_, ok := variants.For(domain.Template("warrant"))
	assert.False(t, ok)
}

func TestVariant_Fields(t *testing.T) {
	_, _, variants := setupVariants(t)

	tests := []struct {
		template domain.Template
		expected token.FieldSet
		history  bool
	}{
		{
			template: domain.TemplateBond,
			expected: token.FieldSet{token.FieldBalance, token.FieldPendingTransfer, token.FieldExchangeBalance, token.FieldExchangeCommitment, token.FieldLocked},
		},
		{
			template: domain.TemplateShare,
			expected: token.FieldSet{token.FieldBalance, token.FieldPendingTransfer, token.FieldExchangeBalance, token.FieldExchangeCommitment, token.FieldLocked},
		},
		{
			template: domain.TemplateMembership,
			expected: token.FieldSet{token.FieldBalance, token.FieldExchangeBalance, token.FieldExchangeCommitment},
		},
		{
			template: domain.TemplateCoupon,
			expected: token.FieldSet{token.FieldBalance, token.FieldExchangeBalance, token.FieldExchangeCommitment, token.FieldUsed},
			history:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.template.String(), func(t *testing.T) {
			variant, _ := variants.For(tt.template)
			assert.Equal(t, tt.expected, variant.Fields())
			assert.Equal(t, tt.history, variant.KeepsTransferHistory())
		})
	}
}

func TestVariant_IsZero(t *testing.T) {
	_, _, variants := setupVariants(t)

	tests := []struct {
		name     string
		template domain.Template
		values   token.Values
		expected bool
	}{
		{"bond empty", domain.TemplateBond, token.Values{}, true},
		{"bond all zero", domain.TemplateBond, token.Values{Balance: amount(0), PendingTransfer: amount(0), Locked: amount(0)}, true},
		{"bond balance", domain.TemplateBond, token.Values{Balance: amount(100)}, false},
		{"bond locked only", domain.TemplateBond, token.Values{Balance: amount(0), Locked: amount(50)}, false},
		{"share pending", domain.TemplateShare, token.Values{PendingTransfer: amount(1)}, false},
		{"membership ignores pending", domain.TemplateMembership, token.Values{PendingTransfer: amount(9)}, true},
		{"membership commitment", domain.TemplateMembership, token.Values{ExchangeCommitment: amount(3)}, false},
		{"coupon used", domain.TemplateCoupon, token.Values{Balance: amount(0), Used: amount(100)}, false},
		{"coupon ignores locked", domain.TemplateCoupon, token.Values{Locked: amount(5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant, _ := variants.For(tt.template)
			assert.Equal(t, tt.expected, variant.IsZero(tt.values))
		})
	}
}

func TestVariant_RemoteFields(t *testing.T) {
	ctx := context.Background()

	t.Run("bond reads pending transfer and exchange", func(t *testing.T) {
		_, fake, variants := setupVariants(t)
		fake.SetBalance(tokenAddress, accountAddress, 100)
		fake.SetPendingTransfer(tokenAddress, accountAddress, 10)
		fake.SetUsed(tokenAddress, accountAddress, 99)
		fake.SetExchange(tokenAddress, exchangeAddress)
		fake.SetExchangeBalances(exchangeAddress, accountAddress, tokenAddress, 20, 5)

		variant, _ := variants.For(domain.TemplateBond)
		raw, err := variant.RemoteFields(ctx, tokenAddress, accountAddress)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(100).Equal(raw.Balance))
		assert.True(t, decimal.NewFromInt(10).Equal(raw.PendingTransfer))
		assert.True(t, decimal.NewFromInt(20).Equal(raw.ExchangeBalance))
		assert.True(t, decimal.NewFromInt(5).Equal(raw.ExchangeCommitment))
		assert.Nil(t, raw.Used)
		assert.Equal(t, 0, fake.Calls("usedOf"))
	})

	t.Run("membership skips pending transfer", func(t *testing.T) {
		_, fake, variants := setupVariants(t)
		fake.SetBalance(tokenAddress, accountAddress, 7)

		variant, _ := variants.For(domain.TemplateMembership)
		raw, err := variant.RemoteFields(ctx, tokenAddress, accountAddress)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(7).Equal(raw.Balance))
		assert.True(t, raw.ExchangeBalance.IsZero())
		assert.Equal(t, 0, fake.Calls("pendingTransfer"))
		// no tradable exchange, so the exchange is never called
		assert.Equal(t, 0, fake.Calls("commitmentOf"))
	})

	t.Run("coupon reads used", func(t *testing.T) {
		_, fake, variants := setupVariants(t)
		fake.SetUsed(tokenAddress, accountAddress, 100)

		variant, _ := variants.For(domain.TemplateCoupon)
		raw, err := variant.RemoteFields(ctx, tokenAddress, accountAddress)
		require.NoError(t, err)

		assert.True(t, raw.Balance.IsZero())
		require.NotNil(t, raw.Used)
		assert.True(t, decimal.NewFromInt(100).Equal(*raw.Used))
		assert.Equal(t, 0, fake.Calls("pendingTransfer"))
	})

	t.Run("call failure is returned", func(t *testing.T) {
		_, fake, variants := setupVariants(t)
		fake.Fail(tokenAddress, &ledger.CallError{Kind: ledger.KindTransport, Err: errors.New("connection refused")})

		variant, _ := variants.For(domain.TemplateShare)
		_, err := variant.RemoteFields(ctx, tokenAddress, accountAddress)
		require.Error(t, err)
		assert.True(t, ledger.IsTransport(err))
	})

	t.Run("malformed exchange address is unexpected", func(t *testing.T) {
		_, fake, variants := setupVariants(t)
		fake.Set(tokenAddress, "tradableExchange", "not an address")

		variant, _ := variants.For(domain.TemplateBond)
		_, err := variant.RemoteFields(ctx, tokenAddress, accountAddress)
		require.Error(t, err)
		assert.Equal(t, ledger.KindUnexpected, ledger.KindOf(err))
	})
}

func TestVariant_FetchMetadata(t *testing.T) {
	ctx := context.Background()

	t.Run("bond details", func(t *testing.T) {
		metadata, _, variants := setupVariants(t)
		metadata.EXPECT().GetBondToken(gomock.Any(), tokenAddress).Return(&schema.BondToken{
			TokenBase: schema.TokenBase{
				TokenAddress:  tokenAddress,
				TokenTemplate: domain.CONTRACT_TEMPLATE_BOND,
				Name:          "Green Bond",
				Symbol:        "GB",
			},
			FaceValue:           decimal.NewFromInt(10000),
			InterestPaymentDate: datatypes.JSON(`{"interestPaymentDate1":"0331"}`),
		}, nil)

		variant, _ := variants.For(domain.TemplateBond)
		details, err := variant.FetchMetadata(ctx, tokenAddress)
		require.NoError(t, err)

		bond, ok := details.(token.BondDetails)
		require.True(t, ok)
		assert.Equal(t, tokenAddress, bond.Address())
		assert.Equal(t, "Green Bond", bond.Name)
		assert.True(t, decimal.NewFromInt(10000).Equal(bond.FaceValue))
	})

	t.Run("missing row falls back to address and template", func(t *testing.T) {
		metadata, _, variants := setupVariants(t)
		metadata.EXPECT().GetCouponToken(gomock.Any(), tokenAddress).Return(nil, nil)

		variant, _ := variants.For(domain.TemplateCoupon)
		details, err := variant.FetchMetadata(ctx, tokenAddress)
		require.NoError(t, err)

		coupon, ok := details.(token.CouponDetails)
		require.True(t, ok)
		assert.Equal(t, tokenAddress, coupon.TokenAddress)
		assert.Equal(t, domain.CONTRACT_TEMPLATE_COUPON, coupon.TokenTemplate)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		metadata, _, variants := setupVariants(t)
		storeErr := errors.New("connection reset")
		metadata.EXPECT().GetShareToken(gomock.Any(), tokenAddress).Return(nil, storeErr)

		variant, _ := variants.For(domain.TemplateShare)
		_, err := variant.FetchMetadata(ctx, tokenAddress)
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
	})
}
