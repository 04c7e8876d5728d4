package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipegen/internal/logger"
	"github.com/windoze95/recipegen/internal/models"
	"github.com/windoze95/recipegen/internal/service"
	"go.uber.org/zap"
)

const noImagesNotice = "No images found for this recipe."

// RecipeHandler is the handler for recipe-related requests.
type RecipeHandler struct {
	Service *service.RecipeService
}

// NewRecipeHandler is the constructor function for initializing a new RecipeHandler.
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{Service: recipeService}
}

// generateRecipeRequest is the body of POST /v1/recipes/generate.
type generateRecipeRequest struct {
	Name        string `json:"name"`
	Servings    *int   `json:"servings"`
	Ingredients string `json:"ingredients"`
}

// GenerateRecipe handles POST /v1/recipes/generate.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var body generateRecipeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req := models.RecipeRequest{
		Name:        strings.TrimSpace(body.Name),
		Servings:    models.DefaultServings,
		Ingredients: strings.TrimSpace(body.Ingredients),
	}
	if body.Servings != nil {
		req.Servings = *body.Servings
	}

	if err := validateRecipeRequest(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.Service.GenerateRecipe(c.Request.Context(), req)
	if !result.OK() {
		logger.FromGin(c).Error("failed to generate recipe", zap.String("dish", req.Name), zap.String("reason", result.Error.Message))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recipe. " + result.Error.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":           result.Recipe,
		"servings":         req.Servings,
		"main_ingredients": displayIngredients(req.Ingredients),
	})
}

// FetchImages handles GET /v1/recipes/images?name=<dish>. Lookup failures
// are not errors; the response just carries an empty list and a notice.
func (h *RecipeHandler) FetchImages(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if err := validateDishName(name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	urls := h.Service.FetchImages(c.Request.Context(), name)
	if len(urls) == 0 {
		c.JSON(http.StatusOK, gin.H{"images": []string{}, "notice": noImagesNotice})
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": urls})
}
