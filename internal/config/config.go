package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileEnv names the environment variable holding an optional YAML
// config file. Environment variables override values from the file.
const ConfigFileEnv = "CONSOLE_CONFIG"

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	HTTPPort string `koanf:"http_port"`
	LogLevel string `koanf:"log_level"`

	UpstreamBaseURL string        `koanf:"upstream_base_url"`
	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`

	ConsoleTimezone       string `koanf:"console_timezone"`
	ConsoleLocale         string `koanf:"console_locale"`
	OperatorWorkers       int    `koanf:"operator_workers"`
	TransactionFetchLimit int    `koanf:"transaction_fetch_limit"`
	MigrationsPath        string `koanf:"migrations_path"`
}

// In all cases the default behavior should be for the docker compose setup
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"postgres_address":        "localhost",
		"postgres_port":           "5433",
		"postgres_db":             "postgres",
		"postgres_username":       "postgres",
		"postgres_password":       "testpassword",
		"http_port":               "9446",
		"log_level":               "info",
		"upstream_base_url":       "http://localhost:8000/",
		"upstream_timeout":        "30s",
		"console_timezone":        "America/Port-au-Prince",
		"console_locale":          "fr",
		"operator_workers":        4,
		"transaction_fetch_limit": 1000,
		"migrations_path":         "file://migrations",
	}
}

func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.OperatorWorkers < 1 {
		return errors.New("operator_workers must be at least 1")
	}
	if c.TransactionFetchLimit < 1 {
		return errors.New("transaction_fetch_limit must be at least 1")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("upstream_timeout must be positive")
	}
	if _, err := url.Parse(c.UpstreamBaseURL); err != nil || c.UpstreamBaseURL == "" {
		return fmt.Errorf("upstream_base_url %q is not a valid URL", c.UpstreamBaseURL)
	}
	if _, err := time.LoadLocation(c.ConsoleTimezone); err != nil {
		return fmt.Errorf("console_timezone: %w", err)
	}
	return nil
}

// Location is the zone date filters are evaluated in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ConsoleTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
