package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

func TestApplyFrom_OverridesOnlySetVariables(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.SMTP.Host = "from-file.example.com"

	err := ApplyFrom(&settings, map[string]string{
		"PSYCHMATCH_MATCHING_REQUIREMENT": "2.5",
		"PSYCHMATCH_MATCHING_ASPECTS":     "test_property,shared_hobbies",
		"PSYCHMATCH_SMTP_PORT":            "2525",
		"UNRELATED":                       "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, 2.5, settings.Matching.Requirement)
	assert.Equal(t, []string{"test_property", "shared_hobbies"}, settings.Matching.Aspects)
	assert.Equal(t, 2525, settings.SMTP.Port)
	assert.Equal(t, "from-file.example.com", settings.SMTP.Host)
	assert.Equal(t, domain.DefaultServerAddr, settings.Server.Addr)
	assert.Equal(t, domain.DefaultBaseURL, settings.App.BaseURL)
}

func TestApplyFrom_Strings(t *testing.T) {
	settings := domain.DefaultSettings()

	err := ApplyFrom(&settings, map[string]string{
		"PSYCHMATCH_SERVER_ADDR":   ":9999",
		"PSYCHMATCH_SMTP_HOST":     "smtp.example.com",
		"PSYCHMATCH_SMTP_USERNAME": "bot",
		"PSYCHMATCH_SMTP_PASSWORD": "secret",
		"PSYCHMATCH_SMTP_FROM":     "bot@example.com",
		"PSYCHMATCH_APP_BASE_URL":  "https://match.example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9999", settings.Server.Addr)
	assert.Equal(t, domain.SMTPSettings{
		Host:     "smtp.example.com",
		Port:     domain.DefaultSMTPPort,
		Username: "bot",
		Password: "secret",
		From:     "bot@example.com",
	}, settings.SMTP)
	assert.Equal(t, "https://match.example.com", settings.App.BaseURL)
}

func TestApplyFrom_InvalidValue(t *testing.T) {
	settings := domain.DefaultSettings()

	err := ApplyFrom(&settings, map[string]string{"PSYCHMATCH_SMTP_PORT": "not-a-port"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.DefaultSMTPPort, settings.SMTP.Port)
}

func TestApplyFrom_NilSettings(t *testing.T) {
	assert.ErrorIs(t, ApplyFrom(nil, nil), domain.ErrInvalidInput)
}

func TestApply_ProcessEnvironment(t *testing.T) {
	t.Setenv("PSYCHMATCH_SERVER_ADDR", ":7000")
	settings := domain.DefaultSettings()

	require.NoError(t, Apply(&settings))

	assert.Equal(t, ":7000", settings.Server.Addr)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PSYCHMATCH_APP_BASE_URL=https://dotenv.example.com\n"), 0600))
	t.Setenv("PSYCHMATCH_APP_BASE_URL", "")
	require.NoError(t, os.Unsetenv("PSYCHMATCH_APP_BASE_URL"))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "https://dotenv.example.com", os.Getenv("PSYCHMATCH_APP_BASE_URL"))
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PSYCHMATCH_SERVER_ADDR=:1\n"), 0600))
	t.Setenv("PSYCHMATCH_SERVER_ADDR", ":2")

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, ":2", os.Getenv("PSYCHMATCH_SERVER_ADDR"))
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
