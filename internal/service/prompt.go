package service

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/windoze95/recipegen/internal/config"
	"github.com/windoze95/recipegen/internal/logger"
	"go.uber.org/zap"
)

// RecipeJSONKeys are the keys the prompt asks for and ParseRecipe requires.
var RecipeJSONKeys = []string{"title", "ingredients", "instructions", "estimated_time"}

// defaultRecipeTemplate backs Build when a custom template fails to render.
var defaultRecipeTemplate = mustDefaultRecipeTemplate()

// PromptBuilder renders the recipe generation prompt.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the recipe prompt template and checks that it
// renders and names every key in RecipeJSONKeys.
func NewPromptBuilder(prompts *config.Prompts) (*PromptBuilder, error) {
	if prompts == nil {
		return nil, fmt.Errorf("prompts are nil")
	}
	tmpl, err := config.ParsePrompt(prompts.Recipe.Generate.User)
	if err != nil {
		return nil, err
	}

	sample, err := render(tmpl, "Sample Dish", 1, "")
	if err != nil {
		return nil, err
	}
	for _, key := range RecipeJSONKeys {
		if !strings.Contains(sample, key) {
			return nil, fmt.Errorf("recipe prompt template does not mention JSON key %q", key)
		}
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build interpolates the dish name, serving count and main ingredients into
// the template. Empty ingredients are rendered as-is.
func (b *PromptBuilder) Build(name string, servings int, ingredients string) string {
	prompt, err := render(b.tmpl, name, servings, ingredients)
	if err == nil {
		return prompt
	}

	logger.Get().Error("recipe prompt render failed, using default template", zap.Error(err))
	prompt, _ = render(defaultRecipeTemplate, name, servings, ingredients)
	return prompt
}

func render(tmpl *template.Template, name string, servings int, ingredients string) (string, error) {
	return config.ExecutePrompt(tmpl, map[string]interface{}{
		"RecipeName":      name,
		"NumServings":     servings,
		"MainIngredients": ingredients,
	})
}

func mustDefaultRecipeTemplate() *template.Template {
	prompts, err := config.DefaultPrompts()
	if err != nil {
		panic(err)
	}
	return template.Must(config.ParsePrompt(prompts.Recipe.Generate.User))
}
