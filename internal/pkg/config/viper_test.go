package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  server:
    cors: "https://a.example.com, https://b.example.com,"
    http:
      port: 3000
mail:
  driver: smtp
  smtp:
    connection_timeout_seconds: 30
  verify_on_startup: true
instrument:
  log_mask_fields:
    - password
    - api_key
  trace_sample_ratio: 0.5
`

func TestNewViperFromBytes(t *testing.T) {
	t.Parallel()

	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML), WithDefaults(map[string]any{
		"mail.subject_prefix": "Portfolio Contact: ",
		"mail.driver":         "resend",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cfg.Close()) })

	assert.Equal(t, "smtp", cfg.GetString("mail.driver"))
	assert.Equal(t, "Portfolio Contact: ", cfg.GetString("mail.subject_prefix"))
	assert.Equal(t, 3000, cfg.GetInt("app.server.http.port"))
	assert.Equal(t, int64(3000), cfg.GetInt64("app.server.http.port"))
	assert.Equal(t, 30*time.Second, cfg.GetSecond("mail.smtp.connection_timeout_seconds"))
	assert.True(t, cfg.GetBool("mail.verify_on_startup"))
	assert.InDelta(t, 0.5, cfg.GetFloat64("instrument.trace_sample_ratio"), 0.0001)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.GetArray("app.server.cors"))
	assert.Equal(t, []string{"password", "api_key"}, cfg.GetArray("instrument.log_mask_fields"))
	assert.Empty(t, cfg.GetArray("missing.key"))
}

func TestNewViperFromBytes_EmptyType(t *testing.T) {
	t.Parallel()

	_, err := NewViperFromBytes(" ", []byte(sampleYAML))
	require.Error(t, err)
}

func TestNewViper_EnvOverrides(t *testing.T) {
	t.Setenv("MAIL_SMTP_HOST", "smtp.example.com")
	t.Setenv("EMAIL_USER", "portfolio@example.com")

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sampleYAML), 0o600))

	cfg, err := NewViper(file, WithEnvAliases(map[string][]string{
		"mail.smtp.username": {"EMAIL_USER"},
	}))
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", cfg.GetString("mail.smtp.host"))
	assert.Equal(t, "portfolio@example.com", cfg.GetString("mail.smtp.username"))
	assert.Equal(t, "smtp", cfg.GetString("mail.driver"))
}

func TestNewViper_MissingFile(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test")

	cfg, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"),
		WithDefaults(map[string]any{"mail.driver": "resend"}),
		WithEnvAliases(map[string][]string{"mail.resend.api_key": {"RESEND_API_KEY"}}),
	)
	require.NoError(t, err)

	assert.Equal(t, "resend", cfg.GetString("mail.driver"))
	assert.Equal(t, "re_test", cfg.GetString("mail.resend.api_key"))
}
