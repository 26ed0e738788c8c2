package token

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
)

var shareFields = FieldSet{
	FieldBalance,
	FieldPendingTransfer,
	FieldExchangeBalance,
	FieldExchangeCommitment,
	FieldLocked,
}

// ShareDetails describes a share
type ShareDetails struct {
	BaseDetails
	IssuePrice          decimal.Decimal `json:"issue_price"`
	DividendInformation datatypes.JSON  `json:"dividend_information,omitempty"`
	CancellationDate    string          `json:"cancellation_date"`
	IsCanceled          bool            `json:"is_canceled"`
}

type shareVariant struct {
	metadata MetadataReader
	ledger   *ledgerReader
}

func (v *shareVariant) Template() domain.Template {
	return domain.TemplateShare
}

func (v *shareVariant) Fields() FieldSet {
	return shareFields
}

func (v *shareVariant) IsZero(values Values) bool {
	return isZero(shareFields, values)
}

func (v *shareVariant) KeepsTransferHistory() bool {
	return false
}

func (v *shareVariant) FetchMetadata(ctx context.Context, tokenAddress string) (Details, error) {
	row, err := v.metadata.GetShareToken(ctx, tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch share metadata: %w", err)
	}
	if row == nil {
		return ShareDetails{BaseDetails: baseDetails(nil, tokenAddress, domain.TemplateShare)}, nil
	}
	return ShareDetails{
		BaseDetails:         baseDetails(&row.TokenBase, tokenAddress, domain.TemplateShare),
		IssuePrice:          row.IssuePrice,
		DividendInformation: row.DividendInformation,
		CancellationDate:    row.CancellationDate,
		IsCanceled:          row.IsCanceled,
	}, nil
}

// RemoteFields reads balanceOf, pendingTransfer and the exchange balances
func (v *shareVariant) RemoteFields(ctx context.Context, tokenAddress, accountAddress string) (RawBalances, error) {
	return readTransferApprovalToken(ctx, v.ledger, ledger.ContractTypeShare, tokenAddress, accountAddress)
}
