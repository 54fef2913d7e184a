package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"schoolportal/internal/config"
)

// CORS allows the configured frontend origin for the methods this API
// serves.
func CORS(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{cfg.CORS.AllowedOrigin},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	})
}
