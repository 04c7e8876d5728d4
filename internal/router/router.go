package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipegen/internal/config"
	"github.com/windoze95/recipegen/internal/handlers"
	"github.com/windoze95/recipegen/internal/logger"
	"github.com/windoze95/recipegen/internal/service"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config, recipeService *service.RecipeService) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	r.Use(cors.New(corsConfig(cfg.EnvVars.CORSOrigins)))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	recipeHandler := handlers.NewRecipeHandler(recipeService)

	api := r.Group("/v1")
	{
		// Generate a recipe from a dish name, serving count and main ingredients
		api.POST("/recipes/generate", recipeHandler.GenerateRecipe)
		// Look up images for a dish name
		api.GET("/recipes/images", recipeHandler.FetchImages)
	}

	return r
}

// corsConfig allows every origin unless CORS_ORIGINS narrows it.
func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AddExposeHeaders("X-Request-ID")
	c.AddAllowHeaders("X-Request-ID")
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowCredentials = true
	c.AllowOrigins = origins
	return c
}
