package dto

import (
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-position-api/internal/position"
	"github.com/feral-file/ff-position-api/internal/token"
)

// ResultSetResponse is the pagination metadata of a position list
type ResultSetResponse struct {
	Count  uint64 `json:"count"`
	Offset *int   `json:"offset"`
	Limit  *int   `json:"limit"`
	Total  uint64 `json:"total"`
}

// PositionResponse is one token position. Only the components of the token's template are set.
type PositionResponse struct {
	TokenAddress       string           `json:"token_address,omitempty"`
	Token              token.Details    `json:"token,omitempty"`
	Balance            *decimal.Decimal `json:"balance,omitempty"`
	PendingTransfer    *decimal.Decimal `json:"pending_transfer,omitempty"`
	ExchangeBalance    *decimal.Decimal `json:"exchange_balance,omitempty"`
	ExchangeCommitment *decimal.Decimal `json:"exchange_commitment,omitempty"`
	Locked             *decimal.Decimal `json:"locked,omitempty"`
	Used               *decimal.Decimal `json:"used,omitempty"`
}

// PositionListResponse is the response of a position list
type PositionListResponse struct {
	ResultSet ResultSetResponse  `json:"result_set"`
	Positions []PositionResponse `json:"positions"`
}

// MapPositionToDTO maps an engine position. The token object replaces the address when details are loaded.
func MapPositionToDTO(p position.Position) PositionResponse {
	response := PositionResponse{
		Balance:            p.Values.Balance,
		PendingTransfer:    p.Values.PendingTransfer,
		ExchangeBalance:    p.Values.ExchangeBalance,
		ExchangeCommitment: p.Values.ExchangeCommitment,
		Locked:             p.Values.Locked,
		Used:               p.Values.Used,
	}
	if p.Details != nil {
		response.Token = p.Details
	} else {
		response.TokenAddress = p.TokenAddress
	}
	return response
}

// MapPageToDTO maps an engine page
func MapPageToDTO(page *position.Page) *PositionListResponse {
	positions := make([]PositionResponse, 0, len(page.Positions))
	for _, p := range page.Positions {
		positions = append(positions, MapPositionToDTO(p))
	}
	return &PositionListResponse{
		ResultSet: ResultSetResponse{
			Count:  page.ResultSet.Count,
			Offset: page.ResultSet.Offset,
			Limit:  page.ResultSet.Limit,
			Total:  page.ResultSet.Total,
		},
		Positions: positions,
	}
}
