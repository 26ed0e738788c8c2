package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/feral-file/ff-position-api/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-position-api/internal/api/shared/errors"
	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/logger"
	"github.com/feral-file/ff-position-api/internal/position"
	"github.com/feral-file/ff-position-api/internal/store"
	"github.com/feral-file/ff-position-api/internal/store/schema"
)

// PositionEngine answers position queries
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor,PositionEngine=MockPositionEngine
type PositionEngine interface {
	GetList(ctx context.Context, accountAddress string, template domain.Template, opts position.ListOptions) (*position.Page, error)
	GetOne(ctx context.Context, accountAddress, tokenAddress string, template domain.Template, opts position.GetOptions) (*position.Position, error)
}

// Executor is the interface for the API executor
type Executor interface {
	// ListPositions retrieves the non-zero positions of an account for one template
	ListPositions(ctx context.Context, accountAddress string, template string, opts position.ListOptions) (*dto.PositionListResponse, error)

	// GetPosition retrieves the position of an account in a single token
	GetPosition(ctx context.Context, accountAddress string, template string, tokenAddress string, opts position.GetOptions) (*dto.PositionResponse, error)

	// CreateListing registers a token address as in scope
	CreateListing(ctx context.Context, req dto.CreateListingRequest) (*dto.ListingResponse, error)

	// DeleteListing removes a token address from scope
	DeleteListing(ctx context.Context, tokenAddress string) error

	// ListListings enumerates listed tokens in listing order
	ListListings(ctx context.Context) (*dto.ListingListResponse, error)

	// Health reports database reachability
	Health(ctx context.Context) *dto.HealthResponse
}

type executor struct {
	store  store.Store
	engine PositionEngine
}

func NewExecutor(store store.Store, engine PositionEngine) Executor {
	return &executor{store: store, engine: engine}
}

func (e *executor) ListPositions(ctx context.Context, accountAddress string, template string, opts position.ListOptions) (*dto.PositionListResponse, error) {
	page, err := e.engine.GetList(ctx, accountAddress, domain.Template(template), opts)
	if err != nil {
		return nil, e.convert(ctx, err)
	}

	return dto.MapPageToDTO(page), nil
}

func (e *executor) GetPosition(ctx context.Context, accountAddress string, template string, tokenAddress string, opts position.GetOptions) (*dto.PositionResponse, error) {
	p, err := e.engine.GetOne(ctx, accountAddress, tokenAddress, domain.Template(template), opts)
	if err != nil {
		return nil, e.convert(ctx, err)
	}

	response := dto.MapPositionToDTO(*p)
	return &response, nil
}

func (e *executor) CreateListing(ctx context.Context, req dto.CreateListingRequest) (*dto.ListingResponse, error) {
	tokenAddress, err := domain.ParseAddress("token_address", req.TokenAddress)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}
	ownerAddress, err := domain.ParseAddress("owner_address", req.OwnerAddress)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}
	if lo.FromPtr(req.MaxHoldingQuantity) < 0 || lo.FromPtr(req.MaxSellAmount) < 0 {
		return nil, apierrors.NewInvalidParameterError("limits must not be negative")
	}

	listing, err := e.store.CreateListing(ctx, store.CreateListingInput{
		TokenAddress:       tokenAddress,
		IsPublic:           req.IsPublic,
		OwnerAddress:       ownerAddress,
		MaxHoldingQuantity: req.MaxHoldingQuantity,
		MaxSellAmount:      req.MaxSellAmount,
	})
	if err != nil {
		return nil, e.convert(ctx, err)
	}

	logger.InfoCtx(ctx, "Listing created",
		zap.Int64("listing_id", listing.ID),
		zap.String("token_address", tokenAddress),
	)

	response := dto.MapListingToDTO(*listing)
	return &response, nil
}

func (e *executor) DeleteListing(ctx context.Context, tokenAddress string) error {
	tokenAddress, err := domain.ParseAddress("token_address", tokenAddress)
	if err != nil {
		return apierrors.FromDomain(err)
	}

	if err := e.store.DeleteListing(ctx, tokenAddress); err != nil {
		return e.convert(ctx, err)
	}

	logger.InfoCtx(ctx, "Listing deleted", zap.String("token_address", tokenAddress))

	return nil
}

func (e *executor) ListListings(ctx context.Context) (*dto.ListingListResponse, error) {
	listings, err := e.store.GetListings(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get listings: %v", err))
	}

	return &dto.ListingListResponse{
		Listings: lo.Map(listings, func(l schema.Listing, _ int) dto.ListingResponse {
			return dto.MapListingToDTO(l)
		}),
	}, nil
}

func (e *executor) Health(ctx context.Context) *dto.HealthResponse {
	if err := e.store.Ping(ctx); err != nil {
		logger.WarnCtx(ctx, "Database ping failed", zap.Error(err))
		return &dto.HealthResponse{Status: "degraded", Database: "unreachable"}
	}
	return &dto.HealthResponse{Status: "ok", Database: "ok"}
}

// convert maps domain errors to API errors and logs the ones that have no client meaning
func (e *executor) convert(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apierrors.NewTimeoutError("Request timed out")
	case errors.Is(err, context.Canceled):
		return err
	}

	apiErr := apierrors.FromDomain(err)
	if apiErr.Code == apierrors.ErrCodeInternalError {
		logger.ErrorCtx(ctx, err)
	}
	return apiErr
}
