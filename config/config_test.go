package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("APP_METRICS_PORT", "9091")
	t.Setenv("SITE_URL", "https://news.example.com")
	t.Setenv("REFRESH_CODE", "refresh-code")
	t.Setenv("REVALIDATION_SECRET", "revalidation-secret")
	t.Setenv("SHEET_ID", "sheet-id")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", `{"type":"service_account","client_email":"bot@example.iam.gserviceaccount.com"}`)
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, Prod, cfg.App.Env)
	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "https://news.example.com", cfg.App.BaseURL)
	assert.Equal(t, "sheet-id", cfg.Sheets.SpreadsheetID)
}

func TestNewMissingSheetID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SHEET_ID", "")

	_, err := New()
	assert.Error(t, err)
}

func TestNewRejectsNonJSONCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/path/to/creds.json")

	_, err := New()
	assert.Error(t, err)
}

func TestNewRejectsUnknownEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "staging")

	_, err := New()
	assert.Error(t, err)
}
