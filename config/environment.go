package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

type Environment struct {
	Host            string
	Port            string
	IsDevelopment   bool
	AllowedOrigins  []string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// Addr is the listen address built from Host and Port.
func (e Environment) Addr() string {
	return net.JoinHostPort(e.Host, e.Port)
}

// Load reads the server configuration from the process environment.
func Load() (Environment, error) {
	env := Environment{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "8080"),
		IsDevelopment:  getEnvBool("DEBUG", false),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	if _, err := strconv.ParseUint(env.Port, 10, 16); err != nil {
		return Environment{}, fmt.Errorf("invalid PORT %q: %w", env.Port, err)
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "10485760"), 10, 64)
	if err != nil {
		return Environment{}, fmt.Errorf("invalid MAX_BODY_BYTES: %w", err)
	}
	if maxBody <= 0 {
		return Environment{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", maxBody)
	}
	env.MaxBodyBytes = maxBody

	shutdown, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return Environment{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	env.ShutdownTimeout = shutdown

	return env, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true") || strings.EqualFold(value, "yes")
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
