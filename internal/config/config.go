package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Config holds all configuration from environment variables.
type Config struct {
	// Telegram bot token, required.
	Token string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`

	// Gemini API key, required.
	APIKey string `envconfig:"GEMINI_API_KEY" required:"true"`

	// Gemini model identifier.
	Model string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`

	// Port for the liveness HTTP server.
	Port int `envconfig:"PORT" default:"10000"`
}

// Load loads the configuration from environment variables.
func (c Config) Load() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// NewConfig builds the configuration. A .env file in the working directory
// is loaded first if present; real environment variables win. A missing
// required secret is a constructor error, which aborts startup before any
// network activity.
func NewConfig() (*Config, error) {
	// best-effort, absence is fine
	_ = godotenv.Load()

	var cfg Config
	loaded, err := cfg.Load()
	if err != nil {
		return nil, err
	}

	// envconfig's required tag only catches unset variables; a secret
	// exported as the empty string must fail startup the same way.
	if loaded.Token == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN not found in environment variables")
	}
	if loaded.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not found in environment variables")
	}

	return &loaded, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
