package api

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/saqibullah/facelex-backend/provider"
)

const defaultMaxBodyBytes = 10 << 20

type Config struct {
	AppEnv            string // local | dev | prod
	Port              string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAITemperature float64
	ProviderTimeout   time.Duration
	MaxBodyBytes      int64
}

func LoadConfig() (*Config, error) {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = "local"
	}

	// .env files are optional. Load never overrides a set var, so the order
	// is real env, then .env.<env>, then .env.
	_ = godotenv.Load(".env." + env)
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppEnv:        env,
		Port:          fallback(os.Getenv("PORT"), "8080"),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: fallback(os.Getenv("OPENAI_BASE_URL"), provider.DefaultBaseURL),
		OpenAIModel:   fallback(os.Getenv("OPENAI_MODEL"), provider.DefaultModel),
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("config: OPENAI_API_KEY is required")
	}

	var err error
	if cfg.OpenAITemperature, err = parseFloat("OPENAI_TEMPERATURE", provider.DefaultTemperature); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeout, err = parseDuration("PROVIDER_TIMEOUT", provider.DefaultTimeout); err != nil {
		return nil, err
	}
	if cfg.MaxBodyBytes, err = parseInt("MAX_BODY_BYTES", defaultMaxBodyBytes); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func (c *Config) ProviderOptions() provider.Options {
	return provider.Options{
		APIKey:      c.OpenAIAPIKey,
		BaseURL:     c.OpenAIBaseURL,
		Model:       c.OpenAIModel,
		Temperature: c.OpenAITemperature,
		Timeout:     c.ProviderTimeout,
	}
}

func parseFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive", key)
	}
	return d, nil
}

func parseInt(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: %s must be positive", key)
	}
	return n, nil
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
