package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Account       AccountConfig       `mapstructure:"account"`
	Clearing      ClearingConfig      `mapstructure:"clearing"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORS            CORSConfig    `mapstructure:"cors"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// AccountConfig seeds the single demo account the ledger is created with.
type AccountConfig struct {
	ID              string `mapstructure:"id"`
	Name            string `mapstructure:"name"`
	Number          string `mapstructure:"number"`
	Balance         string `mapstructure:"balance"`
	ProfileImageURL string `mapstructure:"profile_image_url"`
}

// ClearingConfig holds the simulated clearing backend configuration.
type ClearingConfig struct {
	Latency          time.Duration `mapstructure:"latency"`
	FailureRate      float64       `mapstructure:"failure_rate"`
	BreakerThreshold int           `mapstructure:"breaker_threshold"`
	BreakerTimeout   time.Duration `mapstructure:"breaker_timeout"`
}

// ObservabilityConfig holds logging and metrics configuration
type ObservabilityConfig struct {
	LogLevel      string `mapstructure:"log_level"`
	EnableMetrics bool   `mapstructure:"enable_metrics"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("TRANSFERS")
	v.AutomaticEnv()

	// Read from config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/transfers")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields have valid values.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.read_timeout must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.write_timeout must be positive"))
	}
	if c.Account.ID == "" {
		errs = append(errs, fmt.Errorf("account.id is required"))
	}
	if c.Account.Number == "" {
		errs = append(errs, fmt.Errorf("account.number is required"))
	}
	if _, err := c.SeedBalance(); err != nil {
		errs = append(errs, fmt.Errorf("account.balance must be a non-negative decimal, got %q", c.Account.Balance))
	}
	if c.Clearing.Latency < 0 {
		errs = append(errs, fmt.Errorf("clearing.latency must not be negative"))
	}
	if c.Clearing.FailureRate < 0 || c.Clearing.FailureRate > 1 {
		errs = append(errs, fmt.Errorf("clearing.failure_rate must be between 0 and 1, got %f", c.Clearing.FailureRate))
	}

	return errors.Join(errs...)
}

// SeedBalance parses the configured opening balance.
func (c *Config) SeedBalance() (decimal.Decimal, error) {
	b, err := decimal.NewFromString(c.Account.Balance)
	if err != nil {
		return decimal.Zero, err
	}
	if b.IsNegative() {
		return decimal.Zero, fmt.Errorf("balance is negative")
	}
	return b, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("server.cors.allow_credentials", false)

	// Account defaults mirror the demo seed account
	v.SetDefault("account.id", "USER_001")
	v.SetDefault("account.name", "John Maxwell")
	v.SetDefault("account.number", "1234567890")
	v.SetDefault("account.balance", "5000.00")
	v.SetDefault("account.profile_image_url", "")

	// Clearing defaults
	v.SetDefault("clearing.latency", "1s")
	v.SetDefault("clearing.failure_rate", 0.0)
	v.SetDefault("clearing.breaker_threshold", 10)
	v.SetDefault("clearing.breaker_timeout", "30s")

	// Observability defaults
	v.SetDefault("observability.log_level", "info")
	v.SetDefault("observability.enable_metrics", true)
}
