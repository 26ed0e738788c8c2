package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-position-api/internal/position"
)

// ListPositionsQueryParams holds query parameters for GET /positions/:account_address/:template
type ListPositionsQueryParams struct {
	// Pagination, unbounded when omitted
	Offset *int `form:"offset"`
	Limit  *int `form:"limit"`

	IncludeTokenDetails bool `form:"include_token_details,default=false"`
	EnableIndex         bool `form:"enable_index,default=false"`
}

// GetPositionQueryParams holds query parameters for GET /positions/:account_address/:template/:token_address
type GetPositionQueryParams struct {
	IncludeTokenDetails bool `form:"include_token_details,default=false"`
	EnableIndex         bool `form:"enable_index,default=false"`
}

// ParseListPositionsQuery parses query parameters for a position list
func ParseListPositionsQuery(c *gin.Context) (*ListPositionsQueryParams, error) {
	var params ListPositionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	return &params, nil
}

// ParseGetPositionQuery parses query parameters for a single position
func ParseGetPositionQuery(c *gin.Context) (*GetPositionQueryParams, error) {
	var params GetPositionQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	return &params, nil
}

// Options converts the parameters to engine options. Range checks happen in the engine.
func (p *ListPositionsQueryParams) Options() position.ListOptions {
	return position.ListOptions{
		Offset:         p.Offset,
		Limit:          p.Limit,
		IncludeDetails: p.IncludeTokenDetails,
		EnableIndex:    p.EnableIndex,
	}
}

// Options converts the parameters to engine options
func (p *GetPositionQueryParams) Options() position.GetOptions {
	return position.GetOptions{
		IncludeDetails: p.IncludeTokenDetails,
		EnableIndex:    p.EnableIndex,
	}
}
