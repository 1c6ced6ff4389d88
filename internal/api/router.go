package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apollo1008/donnie-marketplace/internal/api/handlers"
	"github.com/apollo1008/donnie-marketplace/internal/api/middleware"
	"github.com/apollo1008/donnie-marketplace/internal/config"
	"github.com/apollo1008/donnie-marketplace/internal/store"
)

// SetupRouter configures and returns the dev server's Gin engine.
func SetupRouter(cfg *config.Config, st store.IStore) *gin.Engine {
	r := gin.Default()

	// Apply global middleware first (order matters)
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(cfg, st)
	listingHandler := handlers.NewListingHandler(st)
	messageHandler := handlers.NewMessageHandler(st)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/upload", uploadHandler.Upload)
		apiGroup.POST("/listings", listingHandler.CreateListing)
		apiGroup.GET("/listings", listingHandler.GetListings)
		apiGroup.POST("/messages", messageHandler.CreateMessage)
	}

	r.GET("/uploads/:key", uploadHandler.ServeImage)

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return r
}
