package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-position-api/internal/api/middleware"
	"github.com/feral-file/ff-position-api/internal/metrics"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, admin *middleware.AdminAuth) {
	// Health check and metrics endpoints (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Position endpoints (public read access)
		v1.GET("/positions/:account_address/:template", handler.ListPositions)
		v1.GET("/positions/:account_address/:template/:token_address", handler.GetPosition)

		// Listing administration (requires authentication)
		listings := v1.Group("/admin", admin.Middleware())
		listings.GET("/listings", handler.ListListings)
		listings.POST("/listings", handler.CreateListing)
		listings.DELETE("/listings/:token_address", handler.DeleteListing)
	}
}
