package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "5005", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "typing")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1/32")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.Origins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1/32"}, cfg.TrustedProxies)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Contains(t, cfg.Database.DSN(), "dbname=typing")
}

func TestNewConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")

	_, err := NewConfig()
	assert.Error(t, err)

	t.Setenv("SESSION_SECRET", "a-real-secret")
	_, err = NewConfig()
	assert.NoError(t, err)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bcrypt cost too low", "BCRYPT_COST", "2"},
		{"max age shorter than ttl", "SESSION_MAX_AGE", "10m"},
		{"not a duration", "SESSION_TTL", "soon"},
		{"trusted proxy is not a cidr", "TRUSTED_PROXIES", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TYPINGSITE_DOTENV_VALUE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TYPINGSITE_DOTENV_VALUE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("TYPINGSITE_DOTENV_VALUE"))

	assert.Error(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
