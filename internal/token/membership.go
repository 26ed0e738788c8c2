package token

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
)

var membershipFields = FieldSet{
	FieldBalance,
	FieldExchangeBalance,
	FieldExchangeCommitment,
}

// MembershipDetails describes a membership
type MembershipDetails struct {
	BaseDetails
	Details        string         `json:"details"`
	ReturnDetails  string         `json:"return_details"`
	ExpirationDate string         `json:"expiration_date"`
	Memo           string         `json:"memo"`
	ImageURLs      datatypes.JSON `json:"image_urls,omitempty"`
}

type membershipVariant struct {
	metadata MetadataReader
	ledger   *ledgerReader
}

func (v *membershipVariant) Template() domain.Template {
	return domain.TemplateMembership
}

func (v *membershipVariant) Fields() FieldSet {
	return membershipFields
}

func (v *membershipVariant) IsZero(values Values) bool {
	return isZero(membershipFields, values)
}

func (v *membershipVariant) KeepsTransferHistory() bool {
	return false
}

func (v *membershipVariant) FetchMetadata(ctx context.Context, tokenAddress string) (Details, error) {
	row, err := v.metadata.GetMembershipToken(ctx, tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch membership metadata: %w", err)
	}
	if row == nil {
		return MembershipDetails{BaseDetails: baseDetails(nil, tokenAddress, domain.TemplateMembership)}, nil
	}
	return MembershipDetails{
		BaseDetails:    baseDetails(&row.TokenBase, tokenAddress, domain.TemplateMembership),
		Details:        row.Details,
		ReturnDetails:  row.ReturnDetails,
		ExpirationDate: row.ExpirationDate,
		Memo:           row.Memo,
		ImageURLs:      row.ImageURLs,
	}, nil
}

// RemoteFields reads balanceOf and the exchange balances
func (v *membershipVariant) RemoteFields(ctx context.Context, tokenAddress, accountAddress string) (RawBalances, error) {
	var raw RawBalances

	contract, err := v.ledger.contract(ledger.ContractTypeMembership, tokenAddress)
	if err != nil {
		return raw, err
	}

	if raw.Balance, err = v.ledger.balanceOf(ctx, contract, accountAddress); err != nil {
		return raw, err
	}
	if raw.ExchangeBalance, raw.ExchangeCommitment, err = v.ledger.exchangeBalances(ctx, contract, accountAddress); err != nil {
		return raw, err
	}

	return raw, nil
}
