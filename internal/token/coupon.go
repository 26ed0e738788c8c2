package token

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
)

var couponFields = FieldSet{
	FieldBalance,
	FieldExchangeBalance,
	FieldExchangeCommitment,
	FieldUsed,
}

// CouponDetails describes a coupon
type CouponDetails struct {
	BaseDetails
	Details        string         `json:"details"`
	ReturnDetails  string         `json:"return_details"`
	ExpirationDate string         `json:"expiration_date"`
	Memo           string         `json:"memo"`
	ImageURLs      datatypes.JSON `json:"image_urls,omitempty"`
}

type couponVariant struct {
	metadata MetadataReader
	ledger   *ledgerReader
}

func (v *couponVariant) Template() domain.Template {
	return domain.TemplateCoupon
}

func (v *couponVariant) Fields() FieldSet {
	return couponFields
}

func (v *couponVariant) IsZero(values Values) bool {
	return isZero(couponFields, values)
}

// KeepsTransferHistory keeps fully consumed coupons visible
func (v *couponVariant) KeepsTransferHistory() bool {
	return true
}

func (v *couponVariant) FetchMetadata(ctx context.Context, tokenAddress string) (Details, error) {
	row, err := v.metadata.GetCouponToken(ctx, tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupon metadata: %w", err)
	}
	if row == nil {
		return CouponDetails{BaseDetails: baseDetails(nil, tokenAddress, domain.TemplateCoupon)}, nil
	}
	return CouponDetails{
		BaseDetails:    baseDetails(&row.TokenBase, tokenAddress, domain.TemplateCoupon),
		Details:        row.Details,
		ReturnDetails:  row.ReturnDetails,
		ExpirationDate: row.ExpirationDate,
		Memo:           row.Memo,
		ImageURLs:      row.ImageURLs,
	}, nil
}

// RemoteFields reads balanceOf, usedOf and the exchange balances
func (v *couponVariant) RemoteFields(ctx context.Context, tokenAddress, accountAddress string) (RawBalances, error) {
	var raw RawBalances

	contract, err := v.ledger.contract(ledger.ContractTypeCoupon, tokenAddress)
	if err != nil {
		return raw, err
	}

	if raw.Balance, err = v.ledger.balanceOf(ctx, contract, accountAddress); err != nil {
		return raw, err
	}
	used, err := v.ledger.amount(ctx, contract, "usedOf", common.HexToAddress(accountAddress))
	if err != nil {
		return raw, err
	}
	raw.Used = &used
	if raw.ExchangeBalance, raw.ExchangeCommitment, err = v.ledger.exchangeBalances(ctx, contract, accountAddress); err != nil {
		return raw, err
	}

	return raw, nil
}
