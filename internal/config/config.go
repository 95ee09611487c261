package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings for the gateway.
// Every value can be overridden through the environment; token and
// rate-limit knobs carry the documented defaults.
type Config struct {
	// App config
	ProjectName string `envconfig:"PROJECT_NAME" default:"gateway-api"`
	Env         string `envconfig:"ENV" default:"dev"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`

	// JWT auth config
	Algorithm                 string `envconfig:"ALGORITHM" default:"RS256"`
	AccessTokenExpireMinutes  int    `envconfig:"ACCESS_TOKEN_EXPIRE_MINUTES" default:"3600"`
	RefreshTokenExpireMinutes int    `envconfig:"REFRESH_TOKEN_EXPIRE_MINUTES" default:"10080"`

	// Database config
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Vault config
	SystemCode        string `envconfig:"SYSTEM_CODE"`
	VaultSecretKey    string `envconfig:"VAULT_SECRET_KEY"`
	GRPCServerAddress string `envconfig:"GRPC_SERVER_ADDRESS"`

	// Rate limit config
	RequestsPerSecond int `envconfig:"REQUESTS_PER_SECOND" default:"15"`
	RequestInterval   int `envconfig:"REQUEST_INTERVAL" default:"1"`
	BlockDuration     int `envconfig:"BLOCK_DURATION" default:"60"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	required := map[string]string{
		"DATABASE_URL":        c.DatabaseURL,
		"SYSTEM_CODE":         c.SystemCode,
		"VAULT_SECRET_KEY":    c.VaultSecretKey,
		"GRPC_SERVER_ADDRESS": c.GRPCServerAddress,
	}
	for name, v := range required {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	if c.RequestsPerSecond < 1 {
		return fmt.Errorf("REQUESTS_PER_SECOND must be >= 1")
	}
	return nil
}

// AccessTokenTTL returns the access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpireMinutes) * time.Minute
}

// RateLimitInterval returns the sliding window length.
func (c *Config) RateLimitInterval() time.Duration {
	return time.Duration(c.RequestInterval) * time.Second
}

// RateLimitBlock returns the block-out penalty applied once the window
// capacity is exceeded.
func (c *Config) RateLimitBlock() time.Duration {
	return time.Duration(c.BlockDuration) * time.Second
}
