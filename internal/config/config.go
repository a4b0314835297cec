package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Remote vector database. Absence is valid: the assistant falls back
	// to an in-process index.
	VectorDatabaseURL string `envconfig:"VECTOR_DATABASE_URL"`
	VectorCollection  string `envconfig:"VECTOR_COLLECTION" default:"assistant_passages"`

	// Qwen generation provider (DashScope-compatible endpoint).
	QwenAPIKey      string  `envconfig:"QWEN_API_KEY"`
	QwenAPIBase     string  `envconfig:"QWEN_API_BASE" default:"https://dashscope.aliyuncs.com/compatible-mode/v1"`
	QwenModel       string  `envconfig:"QWEN_MODEL" default:"qwen3-coder-32b-instruct"`
	QwenTemperature float32 `envconfig:"QWEN_TEMPERATURE" default:"0.6"`

	// OpenAI, usable both as a generation provider and as the embedder.
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel  string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	// Provider selects the generation client: "qwen", "openai", or empty
	// for automatic (first configured key wins, Qwen preferred).
	Provider string `envconfig:"ASSISTANT_PROVIDER"`
	// Embedder selects "placeholder" or "openai".
	Embedder string `envconfig:"ASSISTANT_EMBEDDER" default:"placeholder"`

	SentryDSN string `envconfig:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasVectorDatabase() bool {
	return c.VectorDatabaseURL != ""
}

func (c *Config) HasQwen() bool {
	return c.QwenAPIKey != ""
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}
