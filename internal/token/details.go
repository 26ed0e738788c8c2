package token

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/store/schema"
)

// Details is the descriptive record attached to detail-expanded positions
type Details interface {
	Address() string
}

// BaseDetails holds the descriptive fields shared by every template
type BaseDetails struct {
	TokenAddress       string          `json:"token_address"`
	TokenTemplate      string          `json:"token_template"`
	OwnerAddress       string          `json:"owner_address"`
	CompanyName        string          `json:"company_name"`
	Name               string          `json:"name"`
	Symbol             string          `json:"symbol"`
	TotalSupply        decimal.Decimal `json:"total_supply"`
	TradableExchange   string          `json:"tradable_exchange"`
	ContactInformation string          `json:"contact_information"`
	PrivacyPolicy      string          `json:"privacy_policy"`
	Status             bool            `json:"status"`
	Transferable       bool            `json:"transferable"`
}

// Address returns the token address
func (d BaseDetails) Address() string {
	return d.TokenAddress
}

// baseDetails maps the shared cache columns, falling back to address and template when the row is missing
func baseDetails(row *schema.TokenBase, tokenAddress string, template domain.Template) BaseDetails {
	if row == nil {
		return BaseDetails{
			TokenAddress:  domain.NormalizeAddress(tokenAddress),
			TokenTemplate: template.ContractTemplate(),
		}
	}
	return BaseDetails{
		TokenAddress:       row.TokenAddress,
		TokenTemplate:      row.TokenTemplate,
		OwnerAddress:       row.OwnerAddress,
		CompanyName:        row.CompanyName,
		Name:               row.Name,
		Symbol:             row.Symbol,
		TotalSupply:        row.TotalSupply,
		TradableExchange:   row.TradableExchange,
		ContactInformation: row.ContactInformation,
		PrivacyPolicy:      row.PrivacyPolicy,
		Status:             row.Status,
		Transferable:       row.Transferable,
	}
}
