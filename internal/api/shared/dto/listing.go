package dto

import (
	"time"

	"github.com/feral-file/ff-position-api/internal/store/schema"
)

// CreateListingRequest is the body of a listing registration
type CreateListingRequest struct {
	TokenAddress       string `json:"token_address" binding:"required"`
	IsPublic           bool   `json:"is_public"`
	OwnerAddress       string `json:"owner_address" binding:"required"`
	MaxHoldingQuantity *int64 `json:"max_holding_quantity"`
	MaxSellAmount      *int64 `json:"max_sell_amount"`
}

// ListingResponse is a registered listing
type ListingResponse struct {
	ID                 int64     `json:"id"`
	TokenAddress       string    `json:"token_address"`
	IsPublic           bool      `json:"is_public"`
	OwnerAddress       string    `json:"owner_address"`
	MaxHoldingQuantity *int64    `json:"max_holding_quantity"`
	MaxSellAmount      *int64    `json:"max_sell_amount"`
	CreatedAt          time.Time `json:"created_at"`
}

// ListingListResponse is the response of the listing enumeration
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
}

// MapListingToDTO maps a listing row
func MapListingToDTO(listing schema.Listing) ListingResponse {
	return ListingResponse{
		ID:                 listing.ID,
		TokenAddress:       listing.TokenAddress,
		IsPublic:           listing.IsPublic,
		OwnerAddress:       listing.OwnerAddress,
		MaxHoldingQuantity: listing.MaxHoldingQuantity,
		MaxSellAmount:      listing.MaxSellAmount,
		CreatedAt:          listing.CreatedAt,
	}
}
