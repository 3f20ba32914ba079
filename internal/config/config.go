package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL      = "http://localhost:8000/api/v1"
	DefaultSessionTTL  = 12 * time.Hour
	DefaultHTTPTimeout = 15 * time.Second
	DefaultRateLimit   = 5.0
	DefaultLogLevel    = "warn"

	envPrefix = "CAREERPATH_"
)

// Config holds the settings shared by every binary
type Config struct {
	APIURL      string        `yaml:"api_url"`
	APIToken    string        `yaml:"api_token"`
	DataDir     string        `yaml:"data_dir"`
	RedisURL    string        `yaml:"redis_url"`
	SessionTTL  time.Duration `yaml:"session_ttl"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	RateLimit   float64       `yaml:"rate_limit"`
	LogLevel    string        `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		APIURL:      DefaultAPIURL,
		SessionTTL:  DefaultSessionTTL,
		HTTPTimeout: DefaultHTTPTimeout,
		RateLimit:   DefaultRateLimit,
		LogLevel:    DefaultLogLevel,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/careerpath/config.yaml
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "careerpath", "config.yaml")
}

// Load builds the configuration from defaults, the YAML file at path
// (skipped when absent), a .env file in the working directory and
// CAREERPATH_* environment variables, later sources winning.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Load .env file if it exists; real environment variables win
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	c.APIURL = getEnv("API_URL", c.APIURL)
	c.APIToken = getEnv("API_TOKEN", c.APIToken)
	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	c.RedisURL = getEnv("REDIS_URL", c.RedisURL)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	var err error
	if c.SessionTTL, err = getEnvAsDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if c.HTTPTimeout, err = getEnvAsDuration("HTTP_TIMEOUT", c.HTTPTimeout); err != nil {
		return err
	}
	if c.RateLimit, err = getEnvAsFloat("RATE_LIMIT", c.RateLimit); err != nil {
		return err
	}
	return nil
}

// Validate checks the configuration for values no component can use
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must not be negative")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	return nil
}

// DatabasePath returns the SQLite file location, empty for the store default
func (c *Config) DatabasePath() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, "careerpath.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return d, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return f, nil
}
