package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/demoproject/demo-app/docs"
	"github.com/demoproject/demo-app/internal/config"
	"github.com/demoproject/demo-app/internal/handlers"
	"github.com/demoproject/demo-app/internal/middleware"
	"github.com/demoproject/demo-app/internal/services"
)

// NewRouter builds the gin engine with all routes registered
func NewRouter(cfg *config.Config, demoService *services.DemoService) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	// Equivalent of gin.Default() plus request IDs
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	demoHandler := handlers.NewDemoHandler(demoService)
	router.GET("/", demoHandler.GetDemo)

	// Register health check endpoint
	router.GET("/ping", handlers.PingHandler)

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.Host = "localhost:" + cfg.Port
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(handlers.NotFoundHandler)

	return router
}
