package ledger

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/feral-file/ff-position-api/internal/domain"
)

// ContractType identifies which ABI a contract handle is bound to
type ContractType string

const (
	ContractTypeBond       ContractType = domain.CONTRACT_TEMPLATE_BOND
	ContractTypeShare      ContractType = domain.CONTRACT_TEMPLATE_SHARE
	ContractTypeMembership ContractType = domain.CONTRACT_TEMPLATE_MEMBERSHIP
	ContractTypeCoupon     ContractType = domain.CONTRACT_TEMPLATE_COUPON
	ContractTypeExchange   ContractType = "IbetExchange"
	ContractTypeTokenList  ContractType = "TokenList"
)

// ContractTypeFor returns the contract type of a token template
func ContractTypeFor(template domain.Template) ContractType {
	return ContractType(template.ContractTemplate())
}

// View functions shared by every token template
const tokenABIJSON = `[
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"tradableExchange","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}`

// Transfer approval flow of Bond and Share
const pendingTransferABIJSON = `,
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"pendingTransfer","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}`

const couponABIJSON = `,
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"usedOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}`

const exchangeABIJSON = `[
	{"constant":true,"inputs":[{"name":"account","type":"address"},{"name":"token","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"account","type":"address"},{"name":"token","type":"address"}],"name":"commitmentOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const tokenListABIJSON = `[
	{"constant":true,"inputs":[{"name":"token_address","type":"address"}],"name":"getTokenByAddress","outputs":[{"name":"owner","type":"address"},{"name":"template","type":"string"},{"name":"token","type":"address"}],"stateMutability":"view","type":"function"}
]`

var abis = mustParseABIs(map[ContractType]string{
	ContractTypeBond:       tokenABIJSON + pendingTransferABIJSON + "]",
	ContractTypeShare:      tokenABIJSON + pendingTransferABIJSON + "]",
	ContractTypeMembership: tokenABIJSON + "]",
	ContractTypeCoupon:     tokenABIJSON + couponABIJSON + "]",
	ContractTypeExchange:   exchangeABIJSON,
	ContractTypeTokenList:  tokenListABIJSON,
})

func mustParseABIs(defs map[ContractType]string) map[ContractType]*abi.ABI {
	parsed := make(map[ContractType]*abi.ABI, len(defs))
	for contractType, def := range defs {
		a, err := abi.JSON(strings.NewReader(def))
		if err != nil {
			panic(fmt.Sprintf("failed to parse %s ABI: %v", contractType, err))
		}
		parsed[contractType] = &a
	}
	return parsed
}
