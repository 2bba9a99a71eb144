package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Account: AccountConfig{
			ID:      "USER_001",
			Name:    "John Maxwell",
			Number:  "1234567890",
			Balance: "5000.00",
		},
		Clearing: ClearingConfig{
			Latency:          time.Second,
			FailureRate:      0,
			BreakerThreshold: 10,
			BreakerTimeout:   30 * time.Second,
		},
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestConfig_Validate_InvalidServerPort(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{"port too low", 0},
		{"port negative", -1},
		{"port too high", 99999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Port = tt.port

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "server.port")
		})
	}
}

func TestConfig_Validate_InvalidTimeouts(t *testing.T) {
	cfg := validConfig()
	cfg.Server.ReadTimeout = 0
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read_timeout")

	cfg = validConfig()
	cfg.Server.WriteTimeout = 0
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "write_timeout")
}

func TestConfig_Validate_MissingAccountFields(t *testing.T) {
	cfg := validConfig()
	cfg.Account.ID = ""
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account.id")

	cfg = validConfig()
	cfg.Account.Number = ""
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account.number")
}

func TestConfig_Validate_BadBalance(t *testing.T) {
	for _, balance := range []string{"", "abc", "-5.00"} {
		cfg := validConfig()
		cfg.Account.Balance = balance
		err := cfg.Validate()
		assert.Error(t, err, "balance %q", balance)
		assert.Contains(t, err.Error(), "account.balance")
	}
}

func TestConfig_Validate_BadFailureRate(t *testing.T) {
	for _, rate := range []float64{-0.1, 1.1} {
		cfg := validConfig()
		cfg.Clearing.FailureRate = rate
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "clearing.failure_rate")
	}
}

func TestConfig_Validate_NegativeLatency(t *testing.T) {
	cfg := validConfig()
	cfg.Clearing.Latency = -time.Second
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "clearing.latency")
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Account.ID = ""
	cfg.Account.Balance = "nope"

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "server.port")
	assert.Contains(t, errStr, "account.id")
	assert.Contains(t, errStr, "account.balance")
}

func TestConfig_SeedBalance(t *testing.T) {
	cfg := validConfig()
	b, err := cfg.SeedBalance()
	require.NoError(t, err)
	assert.Equal(t, "5000.00", b.StringFixed(2))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "USER_001", cfg.Account.ID)
	assert.Equal(t, "John Maxwell", cfg.Account.Name)
	assert.Equal(t, "1234567890", cfg.Account.Number)
	assert.Equal(t, "5000.00", cfg.Account.Balance)
	assert.Equal(t, time.Second, cfg.Clearing.Latency)
	assert.Equal(t, 0.0, cfg.Clearing.FailureRate)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.True(t, cfg.Observability.EnableMetrics)
}
