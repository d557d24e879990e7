package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"APP_ENV", "LOG_LEVEL", "PORT", "STATIC_DIR", "FRONTEND_ORIGINS",
	"BREVO_API_KEY", "BREVO_SENDER_EMAIL", "BREVO_SENDER_NAME", "BREVO_REPLY_TO",
	"BREVO_SANDBOX", "BREVO_ENDPOINT",
	"RATE_LIMIT_BOOKINGS", "RATE_LIMIT_WINDOW_SEC", "REDIS_URL", "TRUST_PROXY_HEADERS",
}

// clearEnv unsets every config variable for the test and restores them after.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "web", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.FrontendOrigins)
	assert.False(t, cfg.BrevoConfigured())
	assert.Equal(t, "noreply@stuhlstefan.de", cfg.Brevo.SenderEmail)
	assert.Equal(t, "kontakt@stuhlstefan.de", cfg.Brevo.ReplyTo)
	assert.Equal(t, "https://api.brevo.com/v3/smtp/email", cfg.Brevo.Endpoint)
	assert.Equal(t, 20, cfg.RateLimitBookings)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("BREVO_API_KEY", " xkeysib-123 ")
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("FRONTEND_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.True(t, cfg.BrevoConfigured())
	assert.Equal(t, "xkeysib-123", cfg.Brevo.APIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.FrontendOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.True(t, cfg.TrustProxyHeaders)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=5000\nBREVO_API_KEY=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("BREVO_API_KEY") })

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "from-file", cfg.Brevo.APIKey)
}

func TestLoadRejectsBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	_, err := LoadFrom("")
	assert.Error(t, err)
}

func TestSlogLevelOverride(t *testing.T) {
	cfg := &Config{Env: EnvProduction, LogLevel: "WARN"}
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}
