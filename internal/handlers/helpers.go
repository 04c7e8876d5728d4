package handlers

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/windoze95/recipegen/internal/models"
)

const (
	maxNameLength        = 200
	maxIngredientsLength = 1000
	notSpecified         = "Not specified"
)

// ValidationError is a user-facing input problem. Requests that fail
// validation never reach the recipe service.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// validateDishName checks the dish name shared by both recipe endpoints.
func validateDishName(name string) error {
	if govalidator.IsNull(strings.TrimSpace(name)) {
		return ValidationError{Message: "Please provide a dish name."}
	}
	if !govalidator.StringLength(name, "1", fmt.Sprint(maxNameLength)) {
		return ValidationError{Message: fmt.Sprintf("Dish name must be at most %d characters.", maxNameLength)}
	}
	return nil
}

// validateRecipeRequest checks a generation request before it is handed to
// the service.
func validateRecipeRequest(req models.RecipeRequest) error {
	if err := validateDishName(req.Name); err != nil {
		return err
	}
	if !govalidator.InRangeInt(req.Servings, models.MinServings, models.MaxServings) {
		return ValidationError{Message: fmt.Sprintf("Number of servings must be between %d and %d.", models.MinServings, models.MaxServings)}
	}
	if !govalidator.StringLength(req.Ingredients, "0", fmt.Sprint(maxIngredientsLength)) {
		return ValidationError{Message: fmt.Sprintf("Main ingredients must be at most %d characters.", maxIngredientsLength)}
	}
	return nil
}

// displayIngredients substitutes a placeholder for empty main ingredients.
func displayIngredients(ingredients string) string {
	if strings.TrimSpace(ingredients) == "" {
		return notSpecified
	}
	return ingredients
}
