package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TokenBase holds the descriptive fields shared by every token metadata cache table
type TokenBase struct {
	// TokenAddress is the checksum address of the token (primary key)
	TokenAddress string `gorm:"column:token_address;primaryKey;type:text"`
	// TokenTemplate is the registry template name, e.g. IbetStraightBond
	TokenTemplate string `gorm:"column:token_template;not null;type:text"`
	// OwnerAddress is the issuer address
	OwnerAddress string `gorm:"column:owner_address;not null;type:text"`
	CompanyName  string `gorm:"column:company_name;not null;default:'';type:text"`
	Name         string `gorm:"column:name;not null;default:'';type:text"`
	Symbol       string `gorm:"column:symbol;not null;default:'';type:text"`
	// TotalSupply is the issued amount
	TotalSupply        decimal.Decimal `gorm:"column:total_supply;not null;default:0;type:numeric(78,0)"`
	TradableExchange   string          `gorm:"column:tradable_exchange;not null;default:'';type:text"`
	ContactInformation string          `gorm:"column:contact_information;not null;default:'';type:text"`
	PrivacyPolicy      string          `gorm:"column:privacy_policy;not null;default:'';type:text"`
	Status             bool            `gorm:"column:status;not null"`
	Transferable       bool            `gorm:"column:transferable;not null"`
	// CreatedAt is the timestamp when this cache row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this cache row was last refreshed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// BondToken represents the bond_tokens table
type BondToken struct {
	TokenBase
	FaceValue           decimal.Decimal `gorm:"column:face_value;not null;default:0;type:numeric"`
	InterestRate        decimal.Decimal `gorm:"column:interest_rate;not null;default:0;type:numeric"`
	InterestPaymentDate datatypes.JSON  `gorm:"column:interest_payment_date;type:jsonb"`
	RedemptionDate      string          `gorm:"column:redemption_date;not null;default:'';type:text"`
	RedemptionValue     decimal.Decimal `gorm:"column:redemption_value;not null;default:0;type:numeric"`
	Purpose             string          `gorm:"column:purpose;not null;default:'';type:text"`
	IsRedeemed          bool            `gorm:"column:is_redeemed;not null;default:false"`
}

// TableName specifies the table name for the BondToken model
func (BondToken) TableName() string {
	return "bond_tokens"
}

// ShareToken represents the share_tokens table
type ShareToken struct {
	TokenBase
	IssuePrice          decimal.Decimal `gorm:"column:issue_price;not null;default:0;type:numeric"`
	DividendInformation datatypes.JSON  `gorm:"column:dividend_information;type:jsonb"`
	CancellationDate    string          `gorm:"column:cancellation_date;not null;default:'';type:text"`
	IsCanceled          bool            `gorm:"column:is_canceled;not null;default:false"`
}

// TableName specifies the table name for the ShareToken model
func (ShareToken) TableName() string {
	return "share_tokens"
}

// MembershipToken represents the membership_tokens table
type MembershipToken struct {
	TokenBase
	Details        string         `gorm:"column:details;not null;default:'';type:text"`
	ReturnDetails  string         `gorm:"column:return_details;not null;default:'';type:text"`
	ExpirationDate string         `gorm:"column:expiration_date;not null;default:'';type:text"`
	Memo           string         `gorm:"column:memo;not null;default:'';type:text"`
	ImageURLs      datatypes.JSON `gorm:"column:image_urls;type:jsonb"`
}

// TableName specifies the table name for the MembershipToken model
func (MembershipToken) TableName() string {
	return "membership_tokens"
}

// CouponToken represents the coupon_tokens table
type CouponToken struct {
	TokenBase
	Details        string         `gorm:"column:details;not null;default:'';type:text"`
	ReturnDetails  string         `gorm:"column:return_details;not null;default:'';type:text"`
	ExpirationDate string         `gorm:"column:expiration_date;not null;default:'';type:text"`
	Memo           string         `gorm:"column:memo;not null;default:'';type:text"`
	ImageURLs      datatypes.JSON `gorm:"column:image_urls;type:jsonb"`
}

// TableName specifies the table name for the CouponToken model
func (CouponToken) TableName() string {
	return "coupon_tokens"
}
