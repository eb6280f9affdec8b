package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_TYPE", "GENERATION_TIMEOUT", "GENERATE_RATE_LIMIT", "AI_GATEWAY_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.GenerationTimeout != 60*time.Second {
		t.Errorf("GenerationTimeout = %v, want 60s", cfg.GenerationTimeout)
	}
	if cfg.GenerateRateLimit != 10 {
		t.Errorf("GenerateRateLimit = %d, want 10", cfg.GenerateRateLimit)
	}
	if cfg.GatewayModel == "" {
		t.Error("GatewayModel should have a default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("AI_GATEWAY_URL", "http://gateway.local/")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
	}
	if cfg.GatewayURL != "http://gateway.local" {
		t.Errorf("GatewayURL = %q, want trailing slash trimmed", cfg.GatewayURL)
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "empty uses default", value: "", want: time.Minute},
		{name: "duration string", value: "90s", want: 90 * time.Second},
		{name: "whole seconds", value: "15", want: 15 * time.Second},
		{name: "garbage uses default", value: "soon", want: time.Minute},
		{name: "negative uses default", value: "-5s", want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := getDuration("TEST_DURATION", time.Minute); got != tt.want {
				t.Errorf("getDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	if got := getInt("TEST_INT", 3); got != 3 {
		t.Errorf("getInt() = %d, want default 3", got)
	}
	t.Setenv("TEST_INT", "7")
	if got := getInt("TEST_INT", 3); got != 7 {
		t.Errorf("getInt() = %d, want 7", got)
	}
}
