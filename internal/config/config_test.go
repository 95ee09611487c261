package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gateway")
	t.Setenv("SYSTEM_CODE", "GTW")
	t.Setenv("VAULT_SECRET_KEY", "c3VwZXItc2VjcmV0LWZlcm5ldC1rZXktMzItYnl0ZXM=")
	t.Setenv("GRPC_SERVER_ADDRESS", "localhost:50051")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Algorithm != "RS256" {
		t.Errorf("Algorithm = %q, want RS256", cfg.Algorithm)
	}
	if cfg.RequestsPerSecond != 15 {
		t.Errorf("RequestsPerSecond = %d, want 15", cfg.RequestsPerSecond)
	}
	if got := cfg.AccessTokenTTL(); got != 3600*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want %v", got, 3600*time.Minute)
	}
	if got := cfg.RefreshTokenTTL(); got != 10080*time.Minute {
		t.Errorf("RefreshTokenTTL = %v, want %v", got, 10080*time.Minute)
	}
	if got := cfg.RateLimitInterval(); got != time.Second {
		t.Errorf("RateLimitInterval = %v, want 1s", got)
	}
	if got := cfg.RateLimitBlock(); got != 60*time.Second {
		t.Errorf("RateLimitBlock = %v, want 60s", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with empty DATABASE_URL should fail")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("REQUESTS_PER_SECOND", "3")
	t.Setenv("BLOCK_DURATION", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.RequestsPerSecond != 3 {
		t.Errorf("RequestsPerSecond = %d, want 3", cfg.RequestsPerSecond)
	}
	if got := cfg.RateLimitBlock(); got != 5*time.Second {
		t.Errorf("RateLimitBlock = %v, want 5s", got)
	}
}
