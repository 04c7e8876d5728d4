package main

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipegen/internal/ai"
	"github.com/windoze95/recipegen/internal/config"
	"github.com/windoze95/recipegen/internal/logger"
	"github.com/windoze95/recipegen/internal/router"
	"github.com/windoze95/recipegen/internal/service"
	"go.uber.org/zap"
)

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	// Load prompts, overlaying PROMPTS_PATH on the embedded defaults
	var prompts *config.Prompts
	var err error
	if path := cfg.EnvVars.PromptsPath; path != "" {
		prompts, err = config.LoadPrompts(path)
	} else {
		prompts, err = config.DefaultPrompts()
	}
	if err != nil {
		logger.Get().Fatal("failed to load prompts", zap.Error(err))
	}
	cfg.Prompts = prompts

	promptBuilder, err := service.NewPromptBuilder(cfg.Prompts)
	if err != nil {
		logger.Get().Fatal("invalid recipe prompt", zap.Error(err))
	}

	// AI provider setup
	textProvider, err := ai.NewTextProvider(context.Background(), cfg)
	if err != nil {
		logger.Get().Fatal("failed to create model provider", zap.Error(err))
	}
	if closer, ok := textProvider.(io.Closer); ok {
		defer closer.Close()
	}
	imageSearcher := ai.NewImageSearcher(cfg)

	recipeService := service.NewRecipeService(promptBuilder, textProvider, imageSearcher)

	// Create a new gin router
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(cfg, recipeService)

	// Run the server
	logger.Get().Info("starting server",
		zap.String("port", cfg.EnvVars.Port),
		zap.String("provider", cfg.EnvVars.ModelProvider),
		zap.String("model", cfg.EnvVars.Model),
	)
	if err := r.Run(":" + cfg.EnvVars.Port); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
