package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ai-marketing/cmd/api/handlers"
	"ai-marketing/cmd/api/middleware"
	_ "ai-marketing/docs"
	"ai-marketing/generator"
)

func New(gen *generator.Generator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	r.GET("/health", handlers.HealthHandler(gen))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/provider", handlers.ProviderHandler(gen))

		api.POST("/products/analyze", handlers.AnalyzeProductHandler(gen))
		api.POST("/copies/generate", handlers.GenerateCopiesHandler(gen))
		api.POST("/audiences/analyze", handlers.AnalyzeAudienceHandler(gen))
		api.POST("/ads/generate", handlers.GenerateAdsHandler(gen))
		api.POST("/scripts/generate", handlers.GenerateScriptHandler(gen))
		api.POST("/platforms/:platform/convert", handlers.ConvertPlatformHandler())
	}

	return r
}
