package config

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "STORAGE_BACKEND", "JWT_SECRET", "PAYMENT_SUCCESS_RATE",
		"FORM_RECIPIENT", "CONTACT_EMAIL", "ALLOWED_ORIGINS", "SESSION_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 0.9, cfg.PaymentSuccessRate)
	assert.Equal(t, "ngondimarklewis@gmail.com", cfg.FormRecipient)
	assert.True(t, cfg.Features.ChatWidget)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAYMENT_DELAY", "250ms")
	t.Setenv("PAYMENT_SUCCESS_RATE", "1.5")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "https://farmfresh.co.ke, https://www.farmfresh.co.ke,")
	t.Setenv("FORM_RECIPIENT", "orders@example.com")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 250*time.Millisecond, cfg.PaymentDelay)
	assert.Equal(t, 0.9, cfg.PaymentSuccessRate, "out of range falls back")
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, []string{"https://farmfresh.co.ke", "https://www.farmfresh.co.ke"}, cfg.AllowedOrigins)
	assert.Equal(t, "orders@example.com", cfg.FormRecipient)
}

func TestSite(t *testing.T) {
	cfg := Config{ContactEmail: "info@example.com", ContactPhone: "+254700000000"}
	site := cfg.Site()

	assert.Equal(t, "KSh", site.Currency)
	assert.Equal(t, 1.0, site.MobileMoney.MinAmount)
	assert.Equal(t, 300000.0, site.MobileMoney.MaxAmount)
	assert.Equal(t, []string{"10:00", "14:00"}, site.TourTimes)
	assert.Equal(t, 10, site.MaxTourGroupSize)
	assert.Equal(t, "info@example.com", site.Contact.Email)
}

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	core, logs := observer.New(zap.InfoLevel)

	client, err := ConnectRedis(context.Background(), "redis://"+mr.Addr(), zap.New(core))
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, 1, logs.FilterMessage("✅ Connected to Redis").Len())

	_, err = ConnectRedis(context.Background(), "::not a url", zap.NewNop())
	assert.Error(t, err)
}

func TestConnectRedisWarnsOnDefaultURL(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	client, err := ConnectRedis(ctx, "", zap.New(core))
	if err == nil {
		_ = client.Close()
	}

	entries := logs.FilterMessage("⚠️  REDIS_URL not set, using local Redis").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "redis://localhost:6379", entries[0].ContextMap()["url"])
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		logger, err := NewLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
