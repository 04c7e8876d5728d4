package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPromptsYAML []byte

// PromptPair holds a system and user prompt template.
type PromptPair struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// RecipePrompts holds all recipe-related prompt templates.
type RecipePrompts struct {
	Generate PromptPair `yaml:"generate"`
}

// Prompts is the top-level prompt configuration loaded from YAML.
type Prompts struct {
	Recipe RecipePrompts `yaml:"recipe"`
}

// DefaultPrompts returns the prompt set compiled into the binary.
func DefaultPrompts() (*Prompts, error) {
	return parsePrompts(defaultPromptsYAML)
}

// LoadPrompts reads and parses a YAML prompt configuration file. Templates
// missing from the file fall back to the compiled-in defaults.
func LoadPrompts(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	prompts, err := DefaultPrompts()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompts YAML: %w", err)
	}

	return prompts, nil
}

func parsePrompts(data []byte) (*Prompts, error) {
	var prompts Prompts
	if err := yaml.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompts YAML: %w", err)
	}
	return &prompts, nil
}

// ParsePrompt parses a prompt template once so it can be executed many
// times. Placeholders like {{.RecipeName}} must be present in the data map
// passed to ExecutePrompt.
func ParsePrompt(tmpl string) (*template.Template, error) {
	t, err := template.New("prompt").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	return t, nil
}

// ExecutePrompt renders a parsed prompt template.
func ExecutePrompt(t *template.Template, data map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
