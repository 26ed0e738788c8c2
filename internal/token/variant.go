package token

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/ledger"
	"github.com/feral-file/ff-position-api/internal/store/schema"
)

// Field names one reported balance component
type Field string

const (
	FieldBalance            Field = "balance"
	FieldPendingTransfer    Field = "pending_transfer"
	FieldExchangeBalance    Field = "exchange_balance"
	FieldExchangeCommitment Field = "exchange_commitment"
	FieldLocked             Field = "locked"
	FieldUsed               Field = "used"
)

// FieldSet is the ordered set of components a template reports
type FieldSet []Field

// Has checks if the set contains the field
func (s FieldSet) Has(field Field) bool {
	for _, f := range s {
		if f == field {
			return true
		}
	}
	return false
}

// Values is the canonical position record. Components outside the template's field set are nil.
type Values struct {
	Balance            *decimal.Decimal
	PendingTransfer    *decimal.Decimal
	ExchangeBalance    *decimal.Decimal
	ExchangeCommitment *decimal.Decimal
	Locked             *decimal.Decimal
	Used               *decimal.Decimal
}

// Get returns the value of a component, false when it is not reported
func (v Values) Get(field Field) (decimal.Decimal, bool) {
	var value *decimal.Decimal
	switch field {
	case FieldBalance:
		value = v.Balance
	case FieldPendingTransfer:
		value = v.PendingTransfer
	case FieldExchangeBalance:
		value = v.ExchangeBalance
	case FieldExchangeCommitment:
		value = v.ExchangeCommitment
	case FieldLocked:
		value = v.Locked
	case FieldUsed:
		value = v.Used
	}
	if value == nil {
		return decimal.Zero, false
	}
	return *value, true
}

// RawBalances holds the ledger reads of one (token, account) pair
type RawBalances struct {
	Balance            decimal.Decimal
	PendingTransfer    decimal.Decimal
	ExchangeBalance    decimal.Decimal
	ExchangeCommitment decimal.Decimal
	// Used is set when the template reads consumption from the ledger
	Used *decimal.Decimal
}

// Variant captures everything that differs between instrument templates.
// Callers pick a variant by template and never branch on the template otherwise.
//
//go:generate mockgen -source=variant.go -destination=../mocks/variant.go -package=mocks -mock_names=Variant=MockVariant,MetadataReader=MockMetadataReader
type Variant interface {
	// Template returns the instrument kind
	Template() domain.Template

	// Fields returns the reported components
	Fields() FieldSet

	// IsZero reports whether every reported component is zero
	IsZero(values Values) bool

	// KeepsTransferHistory reports whether a zero position stays visible once the account received the token
	KeepsTransferHistory() bool

	// FetchMetadata loads descriptive fields from the metadata cache
	FetchMetadata(ctx context.Context, tokenAddress string) (Details, error)

	// RemoteFields reads the template's balances from the ledger
	RemoteFields(ctx context.Context, tokenAddress, accountAddress string) (RawBalances, error)
}

// MetadataReader reads the token metadata cache tables
type MetadataReader interface {
	GetBondToken(ctx context.Context, tokenAddress string) (*schema.BondToken, error)
	GetShareToken(ctx context.Context, tokenAddress string) (*schema.ShareToken, error)
	GetMembershipToken(ctx context.Context, tokenAddress string) (*schema.MembershipToken, error)
	GetCouponToken(ctx context.Context, tokenAddress string) (*schema.CouponToken, error)
}

// Variants is the dispatch table from template to variant
type Variants map[domain.Template]Variant

// NewVariants builds the four template variants
func NewVariants(metadata MetadataReader, client ledger.Client) Variants {
	reader := &ledgerReader{client: client}
	return Variants{
		domain.TemplateBond:       &bondVariant{metadata: metadata, ledger: reader},
		domain.TemplateShare:      &shareVariant{metadata: metadata, ledger: reader},
		domain.TemplateMembership: &membershipVariant{metadata: metadata, ledger: reader},
		domain.TemplateCoupon:     &couponVariant{metadata: metadata, ledger: reader},
	}
}

// For returns the variant of a template
func (v Variants) For(template domain.Template) (Variant, bool) {
	variant, ok := v[template]
	return variant, ok
}

// isZero checks every field of the set, missing components count as zero
func isZero(fields FieldSet, values Values) bool {
	for _, field := range fields {
		if value, ok := values.Get(field); ok && !value.IsZero() {
			return false
		}
	}
	return true
}
