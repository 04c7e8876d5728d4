package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported values for MODEL_PROVIDER.
const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars  `json:"env"`
	Prompts *Prompts `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port                 string        `env:"PORT" envDefault:"8080"`
	ModelProvider        string        `env:"MODEL_PROVIDER" envDefault:"groq"`
	ModelAPIKey          string        `env:"MODEL_API_KEY"`
	Model                string        `env:"MODEL"`
	ModelBaseURL         string        `env:"MODEL_BASE_URL" optional:"true"`
	ModelTimeout         time.Duration `env:"MODEL_TIMEOUT" envDefault:"60s"`
	ModelMaxRetries      int           `env:"MODEL_MAX_RETRIES" envDefault:"2" optional:"true"`
	ImageSearchURL       string        `env:"IMAGE_SEARCH_URL" envDefault:"https://www.google.com/search"`
	ImageSearchUserAgent string        `env:"IMAGE_SEARCH_USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	ImageSearchTimeout   time.Duration `env:"IMAGE_SEARCH_TIMEOUT" envDefault:"10s"`
	PromptsPath          string        `env:"PROMPTS_PATH" optional:"true"`
	CORSOrigins          []string      `env:"CORS_ORIGINS" envSeparator:"," optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	config.EnvVars.ModelProvider = strings.ToLower(strings.TrimSpace(config.EnvVars.ModelProvider))
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set
// and that the model provider is one we know how to build.
func (c *Config) CheckConfigEnvFields() error {
	if err := checkFieldsRecursive(reflect.ValueOf(c.EnvVars)); err != nil {
		return err
	}
	switch c.EnvVars.ModelProvider {
	case ProviderGroq, ProviderOpenAI, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("$MODEL_PROVIDER %q is not supported", c.EnvVars.ModelProvider)
	}
	if c.EnvVars.ModelMaxRetries < 0 {
		return fmt.Errorf("$MODEL_MAX_RETRIES must not be negative")
	}
	return nil
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if field.IsZero() {
			return fmt.Errorf("$%s must be set", fieldType.Tag.Get("env"))
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}
