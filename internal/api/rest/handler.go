package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-position-api/internal/adapter"
	"github.com/feral-file/ff-position-api/internal/api/shared/dto"
	"github.com/feral-file/ff-position-api/internal/api/shared/executor"
)

// Handler defines the REST API handlers
type Handler interface {
	// ListPositions retrieves the non-zero positions of an account for one template
	// GET /api/v1/positions/:account_address/:template?offset=<offset>&limit=<limit>&include_token_details=<bool>&enable_index=<bool>
	ListPositions(c *gin.Context)

	// GetPosition retrieves the position of an account in a single token
	// GET /api/v1/positions/:account_address/:template/:token_address?include_token_details=<bool>&enable_index=<bool>
	GetPosition(c *gin.Context)

	// CreateListing registers a token address (requires authentication)
	// POST /api/v1/admin/listings
	CreateListing(c *gin.Context)

	// DeleteListing removes a token address from the listings (requires authentication)
	// DELETE /api/v1/admin/listings/:token_address
	DeleteListing(c *gin.Context)

	// ListListings enumerates listed tokens (requires authentication)
	// GET /api/v1/admin/listings
	ListListings(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	jcs      adapter.JCS
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, jcs adapter.JCS) Handler {
	return &handler{
		executor: exec,
		jcs:      jcs,
	}
}

// ListPositions retrieves the positions of an account
func (h *handler) ListPositions(c *gin.Context) {
	queryParams, err := ParseListPositionsQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	response, err := h.executor.ListPositions(
		c.Request.Context(),
		c.Param("account_address"),
		c.Param("template"),
		queryParams.Options(),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondJSON(c, response)
}

// GetPosition retrieves a single position of an account
func (h *handler) GetPosition(c *gin.Context) {
	queryParams, err := ParseGetPositionQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	response, err := h.executor.GetPosition(
		c.Request.Context(),
		c.Param("account_address"),
		c.Param("template"),
		c.Param("token_address"),
		queryParams.Options(),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondJSON(c, response)
}

// CreateListing registers a token address
func (h *handler) CreateListing(c *gin.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	response, err := h.executor.CreateListing(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// DeleteListing removes a token address from the listings
func (h *handler) DeleteListing(c *gin.Context) {
	if err := h.executor.DeleteListing(c.Request.Context(), c.Param("token_address")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListListings enumerates listed tokens
func (h *handler) ListListings(c *gin.Context) {
	response, err := h.executor.ListListings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	response := h.executor.Health(c.Request.Context())
	if response.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
