package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"jinx/app"
)

const (
	EnvTick     = "JINX_TICK"
	EnvBlocking = "JINX_BLOCKING"
	EnvLog      = "JINX_LOG"
)

const DefaultTickInterval = time.Second / 30

type Config struct {
	TickInterval time.Duration
	Blocking     bool
	LogFile      string
}

func Default() Config {
	return Config{TickInterval: DefaultTickInterval}
}

// FromEnv overlays the JINX_* environment variables on Default.
func FromEnv() (Config, error) {
	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvTick)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTick, err)
		}
		cfg.TickInterval = d
	}
	if v := strings.TrimSpace(os.Getenv(EnvBlocking)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvBlocking, err)
		}
		cfg.Blocking = b
	}
	cfg.LogFile = strings.TrimSpace(os.Getenv(EnvLog))
	return cfg, nil
}

var ErrTickInterval = errors.New("tick interval must be positive in polling mode")

func (c Config) Validate() error {
	if !c.Blocking && c.TickInterval <= 0 {
		return fmt.Errorf("%w: %v", ErrTickInterval, c.TickInterval)
	}
	return nil
}

// Loop returns the loop configuration. Blocking mode drops the tick interval.
func (c Config) Loop() app.Config {
	if c.Blocking {
		return app.Config{}
	}
	return app.Config{TickInterval: c.TickInterval}
}
