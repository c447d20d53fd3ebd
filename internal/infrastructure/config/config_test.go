package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "supersecretkey")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("unexpected default token TTL: %s", cfg.TokenTTL)
	}
	if cfg.BasicRealm != "Restricted" {
		t.Fatalf("unexpected default realm: %s", cfg.BasicRealm)
	}
	if !strings.Contains(cfg.SeedUsers, "admin1") {
		t.Fatalf("default seed users missing admin account: %s", cfg.SeedUsers)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis must be unwired by default, got %s", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "supersecretkey")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("PORT", "9090")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m TTL, got %s", cfg.TokenTTL)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
}
