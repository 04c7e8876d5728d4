package testutil

import (
	"github.com/windoze95/recipegen/internal/config"
	"github.com/windoze95/recipegen/internal/models"
)

// TestRecipeJSON is a well-formed completion carrying every required key.
const TestRecipeJSON = `{
  "title": "Tuver Totha",
  "ingredients": ["2 cups fresh tuver beans", "2 onions, chopped", "3 tomatoes, pureed"],
  "instructions": ["Heat oil in a pan.", "Saute the onions.", "Add tomatoes and beans and simmer."],
  "estimated_time": 40
}`

// TestFencedCompletion wraps TestRecipeJSON the way chat models often do.
const TestFencedCompletion = "Sure! Here is your recipe:\n```json\n" + TestRecipeJSON + "\n```\nEnjoy!"

// TestRecipe is the Recipe that TestRecipeJSON decodes to.
func TestRecipe() *models.Recipe {
	return &models.Recipe{
		Title:                "Tuver Totha",
		Ingredients:          []string{"2 cups fresh tuver beans", "2 onions, chopped", "3 tomatoes, pureed"},
		Instructions:         []string{"Heat oil in a pan.", "Saute the onions.", "Add tomatoes and beans and simmer."},
		EstimatedTimeMinutes: 40,
	}
}

// TestPrompts returns the compiled-in prompt set, panicking on error.
func TestPrompts() *config.Prompts {
	prompts, err := config.DefaultPrompts()
	if err != nil {
		panic(err)
	}
	return prompts
}
