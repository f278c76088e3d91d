package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TickInterval != time.Second/30 || cfg.Blocking || cfg.LogFile != "" {
		t.Fatalf("unexpected default %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default should be valid: %v", err)
	}
	if loop := cfg.Loop(); !loop.Polling() || loop.TickInterval != time.Second/30 {
		t.Errorf("unexpected loop config %+v", loop)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvTick, "250ms")
	t.Setenv(EnvBlocking, "")
	t.Setenv(EnvLog, " /tmp/jinx.log ")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("unexpected tick %v", cfg.TickInterval)
	}
	if cfg.LogFile != "/tmp/jinx.log" {
		t.Errorf("unexpected log file %q", cfg.LogFile)
	}
}

func TestFromEnvBlocking(t *testing.T) {
	t.Setenv(EnvTick, "")
	t.Setenv(EnvBlocking, "true")
	t.Setenv(EnvLog, "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if loop := cfg.Loop(); loop.Polling() {
		t.Errorf("expected blocking loop, got %+v", loop)
	}
}

func TestFromEnvErrors(t *testing.T) {
	t.Setenv(EnvTick, "fast")
	if _, err := FromEnv(); err == nil {
		t.Error("expected error for invalid tick")
	}
	t.Setenv(EnvTick, "")
	t.Setenv(EnvBlocking, "sometimes")
	if _, err := FromEnv(); err == nil {
		t.Error("expected error for invalid blocking flag")
	}
}

func TestValidate(t *testing.T) {
	err := Config{TickInterval: 0}.Validate()
	if !errors.Is(err, ErrTickInterval) {
		t.Errorf("expected ErrTickInterval, got %v", err)
	}
	if err := (Config{TickInterval: -time.Second}).Validate(); !errors.Is(err, ErrTickInterval) {
		t.Errorf("expected ErrTickInterval, got %v", err)
	}
	if err := (Config{Blocking: true}).Validate(); err != nil {
		t.Errorf("blocking mode needs no tick: %v", err)
	}
}
