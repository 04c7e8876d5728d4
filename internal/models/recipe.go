package models

// Serving bounds accepted by the generator.
const (
	MinServings     = 1
	MaxServings     = 10
	DefaultServings = 4
)

// RecipeRequest holds the inputs for a single recipe generation.
type RecipeRequest struct {
	Name        string
	Servings    int
	Ingredients string
}

// Recipe is a recipe decoded from a model completion.
type Recipe struct {
	Title                string   `json:"title"`
	Ingredients          []string `json:"ingredients"`
	Instructions         []string `json:"instructions"`
	EstimatedTimeMinutes int      `json:"estimated_time"`
}

// ResultError describes why a recipe could not be produced.
type ResultError struct {
	Message string `json:"error"`
}

// RecipeResult holds exactly one of Recipe or Error.
type RecipeResult struct {
	Recipe *Recipe
	Error  *ResultError
}

// RecipeOK wraps a decoded recipe.
func RecipeOK(r *Recipe) RecipeResult {
	return RecipeResult{Recipe: r}
}

// RecipeFailed wraps a failure message.
func RecipeFailed(message string) RecipeResult {
	return RecipeResult{Error: &ResultError{Message: message}}
}

// OK reports whether the result carries a recipe.
func (r RecipeResult) OK() bool {
	return r.Recipe != nil && r.Error == nil
}
