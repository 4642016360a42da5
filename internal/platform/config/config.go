package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	LogLevel    string

	// DefaultRoomTTL applies when a create-room request carries no TTL.
	// Zero means rooms never expire unless the caller asks for it.
	DefaultRoomTTL time.Duration

	// SweepInterval is how often the host runs the expiry sweep.
	SweepInterval time.Duration
}

func Load() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "votebar"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	defaultTTL, err := envSeconds("ROOM_TTL_SECONDS", 0)
	if err != nil {
		return Config{}, err
	}
	sweepInterval, err := envSeconds("SWEEP_INTERVAL_SECONDS", 120)
	if err != nil {
		return Config{}, err
	}
	if sweepInterval <= 0 {
		sweepInterval = 120 * time.Second
	}

	return Config{
		ServiceName:    service,
		HTTPPort:       port,
		LogLevel:       strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))),
		DefaultRoomTTL: defaultTTL,
		SweepInterval:  sweepInterval,
	}, nil
}

func envSeconds(name string, fallback int64) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return time.Duration(fallback) * time.Second, nil
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, raw, err)
	}
	return time.Duration(seconds) * time.Second, nil
}
