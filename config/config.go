package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	Local = "local"
	Prod  = "prod"
)

type App struct {
	Env                string `validate:"oneof=local prod"`
	Port               string `validate:"required"`
	MetricsPort        string `validate:"required"`
	BaseURL            string `validate:"required,url"`
	RefreshCode        string `validate:"required"`
	RevalidationSecret string `validate:"required"`
}

type Sheets struct {
	SpreadsheetID string `validate:"required"`
	Credentials   string `validate:"required,json"`
}

type Slack struct {
	NewsBotToken    string
	AlertsChannelID string
}

type Config struct {
	App    App
	Sheets Sheets
	Slack  Slack
}

// New loads configuration from the environment. A .env file in the working
// directory is read first if present, matching local development setups.
// Missing spreadsheet credentials fail here rather than on the first request.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: App{
			Env:                envOr("APP_ENV", Local),
			Port:               envOr("APP_PORT", "8080"),
			MetricsPort:        envOr("APP_METRICS_PORT", "9090"),
			BaseURL:            envOr("SITE_URL", "https://degennews.com"),
			RefreshCode:        os.Getenv("REFRESH_CODE"),
			RevalidationSecret: os.Getenv("REVALIDATION_SECRET"),
		},
		Sheets: Sheets{
			SpreadsheetID: os.Getenv("SHEET_ID"),
			Credentials:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
		Slack: Slack{
			NewsBotToken:    os.Getenv("SLACK_NEWS_BOT_TOKEN"),
			AlertsChannelID: os.Getenv("SLACK_ALERTS_CHANNEL_ID"),
		},
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
