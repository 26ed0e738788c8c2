package domain

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Template represents the instrument kind of a listed token
type Template string

const (
	TemplateBond       Template = "bond"
	TemplateShare      Template = "share"
	TemplateMembership Template = "membership"
	TemplateCoupon     Template = "coupon"
)

// Templates lists every supported template in a stable order
var Templates = []Template{TemplateBond, TemplateShare, TemplateMembership, TemplateCoupon}

// Valid checks if a template is one of the supported instrument kinds
func (t Template) Valid() bool {
	return t == TemplateBond ||
		t == TemplateShare ||
		t == TemplateMembership ||
		t == TemplateCoupon
}

// String returns the string representation of the template
func (t Template) String() string {
	return string(t)
}

// ContractTemplate returns the template name the token list contract stores for this kind
func (t Template) ContractTemplate() string {
	switch t {
	case TemplateBond:
		return CONTRACT_TEMPLATE_BOND
	case TemplateShare:
		return CONTRACT_TEMPLATE_SHARE
	case TemplateMembership:
		return CONTRACT_TEMPLATE_MEMBERSHIP
	case TemplateCoupon:
		return CONTRACT_TEMPLATE_COUPON
	default:
		return ""
	}
}

// TemplateFromContract maps a token list template name back to a Template.
// The second return value is false for unknown or empty names.
func TemplateFromContract(name string) (Template, bool) {
	switch name {
	case CONTRACT_TEMPLATE_BOND:
		return TemplateBond, true
	case CONTRACT_TEMPLATE_SHARE:
		return TemplateShare, true
	case CONTRACT_TEMPLATE_MEMBERSHIP:
		return TemplateMembership, true
	case CONTRACT_TEMPLATE_COUPON:
		return TemplateCoupon, true
	default:
		return "", false
	}
}

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidAddress checks if the value is a 20-byte hex address with 0x prefix
func ValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// NormalizeAddress normalizes an address to its EIP-55 checksum form
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "0X") {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// NormalizeAddresses normalizes a list of addresses in place
func NormalizeAddresses(addresses []string) []string {
	for i, address := range addresses {
		addresses[i] = NormalizeAddress(address)
	}
	return addresses
}

// ParseAddress validates and normalizes an address.
// Returns an InvalidParameter error naming the field when the format is wrong.
func ParseAddress(field, address string) (string, error) {
	if !ValidAddress(address) {
		return "", NewInvalidParameterError(field, address)
	}
	return NormalizeAddress(address), nil
}

// IsZeroAddress checks if an address is empty or the zero address
func IsZeroAddress(address string) bool {
	return address == "" || common.HexToAddress(address) == (common.Address{})
}
