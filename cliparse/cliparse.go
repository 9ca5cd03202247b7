// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/your-pick/auth"
)

const (
	DefaultPort        = 3318
	DefaultAPIBaseURL  = "http://localhost:8000"
	DefaultAPITimeout  = 10 * time.Second
	DefaultDatabaseURL = "file:yourpick.db?_pragma=busy_timeout(5000)"
)

type Config struct {
	Port         int
	APIBaseURL   string
	APITimeout   time.Duration
	DatabaseURL  string
	DatabaseType string
	CSRFKey      []byte
	// CSRFKeyGenerated is set when no key was configured and a random one is used
	CSRFKeyGenerated bool
	SecureCookies    bool
	LogLevel         slog.Level
}

// LoadEnvFile loads KEY=value pairs from path into the environment.
// Variables already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads flags, falls back to env variables, then applies defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeout, csrfKey, logLevel string
	var secure bool

	fs := flag.NewFlagSet("your-pick", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.APIBaseURL, "api", "", "Voting API base URL")
	fs.StringVar(&timeout, "timeout", "", "Voting API request timeout (e.g. 10s)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Session database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&csrfKey, "csrf-key", "", "32-byte CSRF key as hex or base64 (prefer env)")
	fs.BoolVar(&secure, "secure", false, "Mark cookies Secure (serve behind HTTPS)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = envOr("API_BASE_URL", DefaultAPIBaseURL)
	}
	if u, err := url.Parse(cfg.APIBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Config{}, fmt.Errorf("invalid API base URL %q (want http:// or https://)", cfg.APIBaseURL)
	}

	if timeout == "" {
		timeout = os.Getenv("API_TIMEOUT")
	}
	cfg.APITimeout = DefaultAPITimeout
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid API timeout %q", timeout)
		}
		cfg.APITimeout = d
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = envOr("DATABASE_URL", DefaultDatabaseURL)
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", "sqlite")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("database type must be sqlite or postgres, got %q", cfg.DatabaseType)
	}

	if csrfKey == "" {
		csrfKey = os.Getenv("CSRF_KEY")
	}
	if csrfKey != "" {
		key, err := auth.ParseKey(csrfKey)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CSRF key: %w", err)
		}
		cfg.CSRFKey = key
	} else {
		key, err := auth.GenerateKey(auth.KeyLen)
		if err != nil {
			return Config{}, err
		}
		cfg.CSRFKey = key
		cfg.CSRFKeyGenerated = true
	}

	cfg.SecureCookies = secure
	if !set["secure"] {
		if v := os.Getenv("SECURE_COOKIES"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid SECURE_COOKIES env variable")
			}
			cfg.SecureCookies = b
		}
	}

	if logLevel == "" {
		logLevel = envOr("LOG_LEVEL", "info")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
