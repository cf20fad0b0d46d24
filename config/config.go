package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTriviaURL    = "https://opentdb.com/api.php?amount=1&category=14&difficulty=medium"
	defaultDatabasePath = "./data/drills.db"
	defaultHTTPTimeout  = 30 * time.Second
	defaultPlayer       = "local"

	// DisabledDatabase as DB_PATH turns persistence off.
	DisabledDatabase = "none"
)

// Config holds all the configuration for the application
type Config struct {
	TriviaURL    string        `yaml:"trivia_url"`
	DatabasePath string        `yaml:"database_path"`
	BotToken     string        `yaml:"bot_token"`
	Player       string        `yaml:"player"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	Debug        bool          `yaml:"debug"`
}

// Load reads the optional YAML file at path, then applies environment
// overrides and defaults. An empty path or a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if cfg, err = Parse(data); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Parse parses raw YAML bytes into a Config without defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DRILLS_TRIVIA_URL"); v != "" {
		cfg.TriviaURL = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.BotToken = v
	}
	if v := os.Getenv("DRILLS_PLAYER"); v != "" {
		cfg.Player = v
	}
	if v := os.Getenv("DRILLS_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DRILLS_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DEBUG: %w", err)
		}
		cfg.Debug = debug
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.TriviaURL == "" {
		cfg.TriviaURL = defaultTriviaURL
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaultDatabasePath
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.Player == "" {
		cfg.Player = defaultPlayer
		if user := os.Getenv("USER"); user != "" {
			cfg.Player = user
		}
	}
}

// Validate checks a Config for logical errors.
func Validate(cfg *Config) error {
	if !strings.HasPrefix(cfg.TriviaURL, "http://") && !strings.HasPrefix(cfg.TriviaURL, "https://") {
		return fmt.Errorf("trivia_url must be an http(s) URL, got %q", cfg.TriviaURL)
	}
	if cfg.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %v", cfg.HTTPTimeout)
	}
	return nil
}

// PersistenceEnabled reports whether attempts should be stored.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabasePath != DisabledDatabase
}

// RequireBotToken returns an error when no Telegram token is configured.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN environment variable is required")
	}
	return nil
}
