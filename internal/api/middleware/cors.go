package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-position-api/internal/api/shared/constants"
)

// SetupCORS configures CORS middleware. Position reads are public; admin routes rely on Auth.
func SetupCORS() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", constants.HEADER_IF_NONE_MATCH, constants.HEADER_REQUEST_ID},
		ExposeHeaders:    []string{"Content-Length", constants.HEADER_ETAG, constants.HEADER_REQUEST_ID},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}
	return cors.New(config)
}
