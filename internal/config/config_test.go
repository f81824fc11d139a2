package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "JWT_SECRET", "GIN_MODE", "CLIENT_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "4000", cfg.Port)
	require.Equal(t, "mysql", cfg.DBDriver)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, "http://localhost:3000", cfg.ClientOrigin)
	require.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CLIENT_ORIGIN", "https://tasks.example.com")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, "db.internal", cfg.DBHost)
	require.Equal(t, "from-env", cfg.JWTSecret)
	require.Equal(t, "https://tasks.example.com", cfg.ClientOrigin)
}
