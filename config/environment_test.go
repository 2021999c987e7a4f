package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "DEBUG", "ALLOWED_ORIGINS", "MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	env, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", env.Addr())
	assert.False(t, env.IsDevelopment)
	assert.Equal(t, []string{"http://localhost:3000"}, env.AllowedOrigins)
	assert.Equal(t, int64(10<<20), env.MaxBodyBytes)
	assert.Equal(t, 30*time.Second, env.ShutdownTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "5000")
	t.Setenv("DEBUG", "True")
	t.Setenv("ALLOWED_ORIGINS", "https://edusense.app, ,http://localhost:5173")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	env, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", env.Addr())
	assert.True(t, env.IsDevelopment)
	assert.Equal(t, []string{"https://edusense.app", "http://localhost:5173"}, env.AllowedOrigins)
	assert.Equal(t, int64(2048), env.MaxBodyBytes)
	assert.Equal(t, 5*time.Second, env.ShutdownTimeout)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"port not numeric":  {"PORT", "http"},
		"port out of range": {"PORT", "70000"},
		"body cap zero":     {"MAX_BODY_BYTES", "0"},
		"body cap garbage":  {"MAX_BODY_BYTES", "ten"},
		"bad duration":      {"SHUTDOWN_TIMEOUT", "soon"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	dev, err := NewLogger(Environment{IsDevelopment: true})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel), "debug level enabled in development")

	prod, err := NewLogger(Environment{})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel), "debug level disabled in production")
}
