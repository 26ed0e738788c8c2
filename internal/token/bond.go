package token

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
)

var bondFields = FieldSet{
	FieldBalance,
	FieldPendingTransfer,
	FieldExchangeBalance,
	FieldExchangeCommitment,
	FieldLocked,
}

// BondDetails describes a straight bond
type BondDetails struct {
	BaseDetails
	FaceValue           decimal.Decimal `json:"face_value"`
	InterestRate        decimal.Decimal `json:"interest_rate"`
	InterestPaymentDate datatypes.JSON  `json:"interest_payment_date,omitempty"`
	RedemptionDate      string          `json:"redemption_date"`
	RedemptionValue     decimal.Decimal `json:"redemption_value"`
	Purpose             string          `json:"purpose"`
	IsRedeemed          bool            `json:"is_redeemed"`
}

type bondVariant struct {
	metadata MetadataReader
	ledger   *ledgerReader
}

func (v *bondVariant) Template() domain.Template {
	return domain.TemplateBond
}

func (v *bondVariant) Fields() FieldSet {
	return bondFields
}

func (v *bondVariant) IsZero(values Values) bool {
	return isZero(bondFields, values)
}

func (v *bondVariant) KeepsTransferHistory() bool {
	return false
}

func (v *bondVariant) FetchMetadata(ctx context.Context, tokenAddress string) (Details, error) {
	row, err := v.metadata.GetBondToken(ctx, tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bond metadata: %w", err)
	}
	if row == nil {
		return BondDetails{BaseDetails: baseDetails(nil, tokenAddress, domain.TemplateBond)}, nil
	}
	return BondDetails{
		BaseDetails:         baseDetails(&row.TokenBase, tokenAddress, domain.TemplateBond),
		FaceValue:           row.FaceValue,
		InterestRate:        row.InterestRate,
		InterestPaymentDate: row.InterestPaymentDate,
		RedemptionDate:      row.RedemptionDate,
		RedemptionValue:     row.RedemptionValue,
		Purpose:             row.Purpose,
		IsRedeemed:          row.IsRedeemed,
	}, nil
}

// RemoteFields reads balanceOf, pendingTransfer and the exchange balances
func (v *bondVariant) RemoteFields(ctx context.Context, tokenAddress, accountAddress string) (RawBalances, error) {
	return readTransferApprovalToken(ctx, v.ledger, ledger.ContractTypeBond, tokenAddress, accountAddress)
}

// readTransferApprovalToken reads the fields of templates with a pending transfer flow
func readTransferApprovalToken(ctx context.Context, reader *ledgerReader, contractType ledger.ContractType, tokenAddress, accountAddress string) (RawBalances, error) {
	var raw RawBalances

	contract, err := reader.contract(contractType, tokenAddress)
	if err != nil {
		return raw, err
	}

	if raw.Balance, err = reader.balanceOf(ctx, contract, accountAddress); err != nil {
		return raw, err
	}
	if raw.PendingTransfer, err = reader.amount(ctx, contract, "pendingTransfer", common.HexToAddress(accountAddress)); err != nil {
		return raw, err
	}
	if raw.ExchangeBalance, raw.ExchangeCommitment, err = reader.exchangeBalances(ctx, contract, accountAddress); err != nil {
		return raw, err
	}

	return raw, nil
}
