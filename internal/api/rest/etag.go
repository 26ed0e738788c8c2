package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-position-api/internal/api/shared/constants"
	"github.com/feral-file/ff-position-api/internal/logger"
)

// respondJSON writes body with an ETag over its canonical JSON form.
// A matching If-None-Match yields 304 without a body.
func (h *handler) respondJSON(c *gin.Context, body any) {
	fingerprint, err := h.jcs.Fingerprint(body)
	if err != nil {
		// the body is still served, only the validator is missing
		logger.WarnCtx(c.Request.Context(), "Failed to compute ETag", zap.Error(err))
		c.JSON(http.StatusOK, body)
		return
	}

	etag := `"` + fingerprint + `"`
	c.Header(constants.HEADER_ETAG, etag)
	if matchesETag(c.GetHeader(constants.HEADER_IF_NONE_MATCH), etag) {
		c.Status(http.StatusNotModified)
		return
	}

	c.JSON(http.StatusOK, body)
}

// matchesETag reports whether an If-None-Match header matches etag, weak validators included
func matchesETag(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
