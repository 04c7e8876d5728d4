package service

import (
	"context"
	"time"

	"github.com/windoze95/recipegen/internal/ai"
	"github.com/windoze95/recipegen/internal/logger"
	"github.com/windoze95/recipegen/internal/models"
	"go.uber.org/zap"
)

// RecipeService is the business logic layer for recipe generation and image
// lookup. The two entry points share nothing but the injected collaborators.
type RecipeService struct {
	Prompts       *PromptBuilder
	TextProvider  ai.TextProvider
	ImageSearcher ai.ImageSearcher
}

// NewRecipeService is the constructor function for initializing a new RecipeService.
func NewRecipeService(prompts *PromptBuilder, textProvider ai.TextProvider, imageSearcher ai.ImageSearcher) *RecipeService {
	return &RecipeService{
		Prompts:       prompts,
		TextProvider:  textProvider,
		ImageSearcher: imageSearcher,
	}
}

// GenerateRecipe renders the prompt, calls the model and parses the reply.
// Model and parse failures come back as an error result, never as a Go error.
func (s *RecipeService) GenerateRecipe(ctx context.Context, req models.RecipeRequest) models.RecipeResult {
	log := logger.With(zap.String("dish", req.Name), zap.Int("servings", req.Servings))
	start := time.Now()

	prompt := s.Prompts.Build(req.Name, req.Servings, req.Ingredients)

	raw, err := s.TextProvider.Complete(ctx, prompt)
	if err != nil {
		log.Error("model completion failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return models.RecipeFailed(err.Error())
	}

	result := ParseRecipe(raw)
	if !result.OK() {
		log.Warn("model completion could not be parsed",
			zap.String("reason", result.Error.Message),
			zap.Int("response_bytes", len(raw)),
		)
		return result
	}

	log.Info("recipe generated",
		zap.String("title", result.Recipe.Title),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result
}

// FetchImages returns up to ai.MaxImages image URLs for the dish name. The
// result is empty, not nil, when nothing was found.
func (s *RecipeService) FetchImages(ctx context.Context, name string) []string {
	urls := s.ImageSearcher.Search(ctx, name)
	if urls == nil {
		return []string{}
	}
	return urls
}
