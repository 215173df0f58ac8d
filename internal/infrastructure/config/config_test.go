package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sharedConfig "presence/internal/shared/config"
)

func validConfig() *Config {
	return &Config{
		Server: sharedConfig.ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Mode: "debug",
		},
		Database: sharedConfig.DatabaseConfig{
			Host:            "localhost",
			Port:            3306,
			Username:        "root",
			Password:        "password",
			Database:        "presence_test",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: 60,
		},
		Logger: sharedConfig.LoggerConfig{
			Level:  "info",
			Format: "console",
		},
		Crypto: sharedConfig.CryptoConfig{
			Key: "0123456789abcdef",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero server port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "server port too large",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "invalid database port",
			mutate:  func(c *Config) { c.Database.Port = -1 },
			wantErr: "invalid database port",
		},
		{
			name:    "empty database name",
			mutate:  func(c *Config) { c.Database.Database = "" },
			wantErr: "database name is required",
		},
		{
			name:    "non-positive idle conns",
			mutate:  func(c *Config) { c.Database.MaxIdleConns = 0 },
			wantErr: "max_idle_conns must be positive",
		},
		{
			name:    "non-positive open conns",
			mutate:  func(c *Config) { c.Database.MaxOpenConns = 0 },
			wantErr: "max_open_conns must be positive",
		},
		{
			name:    "missing crypto key",
			mutate:  func(c *Config) { c.Crypto.Key = "" },
			wantErr: "crypto key is required",
		},
		{
			name:    "wrong crypto key length",
			mutate:  func(c *Config) { c.Crypto.Key = "short" },
			wantErr: "crypto key must be 16, 24 or 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateAcceptsAllAESKeySizes(t *testing.T) {
	for _, key := range []string{
		"0123456789abcdef",
		"0123456789abcdef01234567",
		"0123456789abcdef0123456789abcdef",
	} {
		cfg := validConfig()
		cfg.Crypto.Key = key
		assert.NoError(t, cfg.Validate())
	}
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := validConfig()
	dsn := cfg.Database.GetDSN()
	assert.Equal(t, "root:password@tcp(localhost:3306)/presence_test?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}
