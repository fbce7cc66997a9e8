package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"HOST", "PORT", "STORE_DRIVER", "DATABASE_URL", "MONGODB_URI", "MONGODB_DATABASE",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "JWT_SECRET", "ADMIN_SIGNUP_CODE",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "STATIC_DIR", "MEDICINE_CACHE_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	orig := dotenvLoad
	dotenvLoad = func() error { return errors.New("no .env") }
	t.Cleanup(func() { dotenvLoad = orig })
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/clinic")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, []int{3000, 3001, 3002}, cfg.Ports())
	require.Equal(t, DriverPostgres, cfg.StoreDriver)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "healthcare", cfg.MongoDatabase)
	require.Equal(t, "dev_secret_change_me", cfg.JWTSecret)
	require.Equal(t, ".", cfg.StaticDir)
	require.Equal(t, 5*time.Minute, cfg.MedicineCacheTTL)
	require.Empty(t, cfg.RedisAddr)
	require.Empty(t, cfg.AdminSignupCode)
	require.Zero(t, cfg.RedisDB)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGODB_DATABASE", "clinic")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_SIGNUP_CODE", "code")
	t.Setenv("MEDICINE_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []int{4000, 4001, 4002}, cfg.Ports())
	require.Equal(t, DriverMongo, cfg.StoreDriver)
	require.Equal(t, "clinic", cfg.MongoDatabase)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, "code", cfg.AdminSignupCode)
	require.Equal(t, 30*time.Second, cfg.MedicineCacheTTL)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing DATABASE_URL": {},
		"bad driver":           {"STORE_DRIVER": "sqlite"},
		"bad port":             {"DATABASE_URL": "x", "PORT": "abc"},
		"port out of range":    {"DATABASE_URL": "x", "PORT": "65535"},
		"bad redis db":         {"DATABASE_URL": "x", "REDIS_DB": "one"},
		"bad ttl":              {"DATABASE_URL": "x", "MEDICINE_CACHE_TTL": "soon"},
		"negative ttl":         {"DATABASE_URL": "x", "MEDICINE_CACHE_TTL": "-1m"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
