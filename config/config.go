package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ledgerpay/ledgerpay-go/logger"
	"github.com/ledgerpay/ledgerpay-go/transport"
)

const envPrefix = "LEDGERPAY"

// Config is the resolved client configuration.
type Config struct {
	Endpoint  string        `mapstructure:"endpoint"`
	Token     string        `mapstructure:"token"`
	Timeout   time.Duration `mapstructure:"timeout"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
}

// Option adjusts how configuration is loaded.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile    string
	configFile string
}

// WithEnvFile loads environment variables from the given .env file
// instead of the default ./.env lookup.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithConfigFile reads the given YAML config file before applying
// environment overrides.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) { o.configFile = path }
}

// Load resolves configuration from file and environment sources.
func Load(opts ...Option) (*Config, error) {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}

	// .env is optional; a missing file is not an error.
	if lo.envFile != "" {
		if err := godotenv.Load(lo.envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", lo.envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("timeout", "30s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	if lo.configFile != "" {
		v.SetConfigFile(lo.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	cfg := &Config{
		Endpoint:  v.GetString("endpoint"),
		Token:     v.GetString("token"),
		Timeout:   v.GetDuration("timeout"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}
	return cfg, nil
}

// Transport converts the loaded configuration into a transport config,
// including a logger when a log level above silent was requested.
func (c *Config) Transport() transport.Config {
	return transport.Config{
		Endpoint:  c.Endpoint,
		AuthToken: c.Token,
		Timeout:   c.Timeout,
		Logger:    logger.New(logger.Config{Level: c.LogLevel, Format: c.LogFormat}),
	}
}
