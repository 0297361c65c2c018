package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables read into the configuration.
// A double underscore separates nesting levels: LEDGER_DATABASE__PATH.
const EnvPrefix = "LEDGER_"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Operator OperatorConfig `koanf:"operator"`
	Cache    CacheConfig    `koanf:"cache"`
	AMQP     AMQPConfig     `koanf:"amqp"`
	Log      LogConfig      `koanf:"log"`
	Settings Settings       `koanf:"settings"`
}

type ServerConfig struct {
	Address         string        `koanf:"address"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Path        string        `koanf:"path"`
	BusyTimeout time.Duration `koanf:"busy_timeout"`
}

type OperatorConfig struct {
	Workers       int           `koanf:"workers"`
	QueueSize     int           `koanf:"queue_size"`
	ActionTimeout time.Duration `koanf:"action_timeout"`
}

type CacheConfig struct {
	RecentTransactions int `koanf:"recent_transactions"`
}

// AMQPConfig enables change notifications when URL is set.
type AMQPConfig struct {
	URL      string `koanf:"url"`
	Exchange string `koanf:"exchange"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Settings are the read-only app preferences exposed to clients.
type Settings struct {
	Currency         string `koanf:"currency" json:"currency"`
	Theme            string `koanf:"theme" json:"theme"`
	PinEnabled       bool   `koanf:"pin_enabled" json:"pinEnabled"`
	BiometricEnabled bool   `koanf:"biometric_enabled" json:"biometricEnabled"`
}

func defaults() map[string]any {
	return map[string]any{
		"server.address":             ":8080",
		"server.read_timeout":        "10s",
		"server.write_timeout":       "30s",
		"server.shutdown_timeout":    "15s",
		"database.path":              "./data/ledger.db",
		"database.busy_timeout":      "5s",
		"operator.workers":           1,
		"operator.queue_size":        1000,
		"operator.action_timeout":    "10s",
		"cache.recent_transactions":  50,
		"amqp.url":                   "",
		"amqp.exchange":              "ledger",
		"log.level":                  "info",
		"log.format":                 "json",
		"settings.currency":          "INR",
		"settings.theme":             "system",
		"settings.pin_enabled":       false,
		"settings.biometric_enabled": false,
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then the environment. A .env file in the working directory is loaded
// into the environment first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Address == "" {
		problems = append(problems, "server address cannot be empty")
	}
	if c.Database.Path == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if c.Database.BusyTimeout < 0 {
		problems = append(problems, "database busy timeout cannot be negative")
	}
	if c.Operator.Workers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.Operator.Workers))
	}
	if c.Operator.QueueSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator queue size %d: must be at least 1", c.Operator.QueueSize))
	}
	if c.Operator.ActionTimeout <= 0 {
		problems = append(problems, "operator action timeout must be positive")
	}
	if c.Cache.RecentTransactions < 0 {
		problems = append(problems, "cache recent transactions cannot be negative")
	}

	if c.AMQP.URL != "" {
		if parsedURL, err := url.Parse(c.AMQP.URL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQP.URL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQP.Exchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'json' or 'text'", c.Log.Format))
	}

	if money.GetCurrency(c.Settings.Currency) == nil {
		problems = append(problems, fmt.Sprintf("unknown settings currency '%s'", c.Settings.Currency))
	}
	switch c.Settings.Theme {
	case "system", "light", "dark":
	default:
		problems = append(problems, fmt.Sprintf("invalid theme '%s': must be one of system, light, dark", c.Settings.Theme))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
