package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-position-api/internal/api/shared/errors"
)

// respondError responds with the API error carried by err
func respondError(c *gin.Context, err error) {
	apiErr := errors.FromDomain(err)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondError(c, errors.NewBadRequestError(message, details...))
}

// respondInvalidParameter responds with an invalid parameter error
func respondInvalidParameter(c *gin.Context, details ...string) {
	respondError(c, errors.NewInvalidParameterError(details...))
}
