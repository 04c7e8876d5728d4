package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/windoze95/recipegen/internal/models"
	"github.com/windoze95/recipegen/internal/util"
)

// maxCompletionSize bounds the text ParseRecipe will scan.
const maxCompletionSize = 1 << 20

// ParseRecipe extracts the first-'{'-to-last-'}' span from a completion and
// decodes it into a Recipe. Every failure is reported as an error result.
func ParseRecipe(raw string) models.RecipeResult {
	recipe, err := decodeRecipe(raw)
	if err != nil {
		return models.RecipeFailed(fmt.Sprintf("Error decoding JSON: %v", err))
	}
	return models.RecipeOK(recipe)
}

func decodeRecipe(raw string) (*models.Recipe, error) {
	if len(raw) > maxCompletionSize {
		return nil, fmt.Errorf("response is %d bytes, limit is %d", len(raw), maxCompletionSize)
	}

	span, ok := util.ExtractJSONObject(raw)
	if !ok {
		return nil, errors.New("no JSON object found in response")
	}
	if !utf8.ValidString(span) {
		return nil, errors.New("response is not valid UTF-8")
	}

	// Keys are matched exactly; encoding/json struct decoding would fold case.
	var fields map[string]json.RawMessage
	if err := util.DeserializeFromJSONString(span, &fields); err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := decodeField(fields, "title", &recipe.Title); err != nil {
		return nil, err
	}
	if err := decodeField(fields, "ingredients", &recipe.Ingredients); err != nil {
		return nil, err
	}
	if err := decodeField(fields, "instructions", &recipe.Instructions); err != nil {
		return nil, err
	}
	if err := decodeField(fields, "estimated_time", &recipe.EstimatedTimeMinutes); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// decodeField decodes fields[key] into v. A missing or null value is an error.
func decodeField(fields map[string]json.RawMessage, key string, v interface{}) error {
	value, ok := fields[key]
	if !ok || strings.TrimSpace(string(value)) == "null" {
		return missingKey(key)
	}
	if err := json.Unmarshal(value, v); err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	return nil
}

func missingKey(key string) error {
	return fmt.Errorf("missing required key %q", key)
}
