package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	Port     int    `env:"PORT" env-default:"3000"`

	StaticDir       string   `env:"STATIC_DIR" env-default:"web"`
	FrontendOrigins []string `env:"FRONTEND_ORIGINS" env-default:"*" env-separator:","`

	Brevo Brevo

	RateLimitBookings  int    `env:"RATE_LIMIT_BOOKINGS" env-default:"20"`
	RateLimitWindowSec int    `env:"RATE_LIMIT_WINDOW_SEC" env-default:"60"`
	RedisURL           string `env:"REDIS_URL"`

	// TrustProxyHeaders enables X-Forwarded-For / X-Real-IP. Only set it
	// behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" env-default:"false"`
}

type Brevo struct {
	APIKey      string `env:"BREVO_API_KEY"`
	SenderEmail string `env:"BREVO_SENDER_EMAIL" env-default:"noreply@stuhlstefan.de"`
	SenderName  string `env:"BREVO_SENDER_NAME" env-default:"Stuhl Stefan"`
	ReplyTo     string `env:"BREVO_REPLY_TO" env-default:"kontakt@stuhlstefan.de"`
	Sandbox     bool   `env:"BREVO_SANDBOX" env-default:"false"`
	Endpoint    string `env:"BREVO_ENDPOINT" env-default:"https://api.brevo.com/v3/smtp/email"`
}

// Load reads an optional .env file, then the process environment. Values
// already present in the environment win over the file.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.Brevo.APIKey = strings.TrimSpace(cfg.Brevo.APIKey)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.RateLimitWindowSec <= 0 {
		cfg.RateLimitWindowSec = 60
	}
	for i, o := range cfg.FrontendOrigins {
		cfg.FrontendOrigins[i] = strings.TrimSpace(o)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) BrevoConfigured() bool {
	return c.Brevo.APIKey != ""
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

// SlogLevel picks LOG_LEVEL when set, otherwise info in production and
// debug elsewhere.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if c.Env == EnvProduction {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
