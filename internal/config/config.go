// Package config manages the PCB Lab application configuration.
// It handles loading, validating, and providing access to configuration settings
// from YAML files. It includes defaults for all settings and implements thread-safe
// access to configuration values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port            int      `yaml:"port"`
		Host            string   `yaml:"host"`
		AllowedOrigins  []string `yaml:"allowedOrigins"`
		ReadTimeout     int      `yaml:"readTimeout"`
		WriteTimeout    int      `yaml:"writeTimeout"`
		ShutdownTimeout int      `yaml:"shutdownTimeout"`
		// RateLimit is the sustained request rate per second, 0 disables limiting
		RateLimit float64 `yaml:"rateLimit"`
		RateBurst int     `yaml:"rateBurst"`
	} `yaml:"server"`

	// Simulator holds the artificial delays of the scan and form simulators
	Simulator struct {
		CaptureDelay      string `yaml:"captureDelay"`
		UploadDelay       string `yaml:"uploadDelay"`
		LoginDelay        string `yaml:"loginDelay"`
		RegisterDelay     string `yaml:"registerDelay"`
		QuoteDelay        string `yaml:"quoteDelay"`
		SubscriptionDelay string `yaml:"subscriptionDelay"`
	} `yaml:"simulator"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // console or json
	} `yaml:"logging"`

	Advanced struct {
		MetricsEnabled  bool   `yaml:"metricsEnabled"`
		MetricsEndpoint string `yaml:"metricsEndpoint"`
	} `yaml:"advanced"`

	path string
	mu   sync.RWMutex
}

var (
	instance *Config
	once     sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New returns a standalone configuration populated with defaults
func New() *Config {
	c := &Config{}
	setDefaults(c)
	return c
}

// LoadConfig loads configuration from a YAML file
func (c *Config) LoadConfig(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Save path for potential reloading
	c.path = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("configuration file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse configuration file: %w", err)
	}

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info().Str("path", path).Msg("Configuration loaded successfully")
	return nil
}

// Reload reloads the configuration from the file
func (c *Config) Reload() error {
	c.mu.RLock()
	path := c.path
	c.mu.RUnlock()

	if path == "" {
		return errors.New("configuration was not loaded from a file")
	}
	return c.LoadConfig(path)
}

// SaveConfig saves the current configuration to a file
func (c *Config) SaveConfig(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.validate()
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("invalid rate limit: %v", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return fmt.Errorf("invalid rate burst: %d", c.Server.RateBurst)
	}

	delays := map[string]string{
		"captureDelay":      c.Simulator.CaptureDelay,
		"uploadDelay":       c.Simulator.UploadDelay,
		"loginDelay":        c.Simulator.LoginDelay,
		"registerDelay":     c.Simulator.RegisterDelay,
		"quoteDelay":        c.Simulator.QuoteDelay,
		"subscriptionDelay": c.Simulator.SubscriptionDelay,
	}
	for name, value := range delays {
		if _, err := parseDelay(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("invalid log level: %s", c.Logging.Level)
		}
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Advanced.MetricsEnabled && !strings.HasPrefix(c.Advanced.MetricsEndpoint, "/") {
		return fmt.Errorf("invalid metrics endpoint: %q", c.Advanced.MetricsEndpoint)
	}

	return nil
}

// Delays is the parsed form of the simulator section
type Delays struct {
	Capture      time.Duration
	Upload       time.Duration
	Login        time.Duration
	Register     time.Duration
	Quote        time.Duration
	Subscription time.Duration
}

// GetDelays returns the simulator delays as parsed durations
func (c *Config) GetDelays() (Delays, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var d Delays
	var err error
	targets := []struct {
		value string
		dst   *time.Duration
	}{
		{c.Simulator.CaptureDelay, &d.Capture},
		{c.Simulator.UploadDelay, &d.Upload},
		{c.Simulator.LoginDelay, &d.Login},
		{c.Simulator.RegisterDelay, &d.Register},
		{c.Simulator.QuoteDelay, &d.Quote},
		{c.Simulator.SubscriptionDelay, &d.Subscription},
	}
	for _, t := range targets {
		if *t.dst, err = parseDelay(t.value); err != nil {
			return Delays{}, err
		}
	}
	return d, nil
}

// parseDelay treats an empty string as no delay
func parseDelay(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative delay %s", value)
	}
	return d, nil
}

// setDefaults initializes the configuration with default values
func setDefaults(c *Config) {
	// Server defaults
	c.Server.Port = 8080
	c.Server.Host = "127.0.0.1"
	c.Server.AllowedOrigins = []string{"*"}
	c.Server.ReadTimeout = 30
	c.Server.WriteTimeout = 30
	c.Server.ShutdownTimeout = 10
	c.Server.RateLimit = 0
	c.Server.RateBurst = 20

	// Simulator defaults mirror the demo timings of the mobile app
	c.Simulator.CaptureDelay = "3s"
	c.Simulator.UploadDelay = "0s"
	c.Simulator.LoginDelay = "1500ms"
	c.Simulator.RegisterDelay = "1500ms"
	c.Simulator.QuoteDelay = "1500ms"
	c.Simulator.SubscriptionDelay = "2s"

	// Logging defaults
	c.Logging.Level = "info"
	c.Logging.Format = "console"

	// Advanced defaults
	c.Advanced.MetricsEnabled = false
	c.Advanced.MetricsEndpoint = "/metrics"
}
