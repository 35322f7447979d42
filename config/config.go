package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/checkout"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/validation"
)

const devJWTSecret = "dev-secret-key-change-in-production"

// Config is everything the server reads from the environment.
type Config struct {
	Port   string
	AppEnv string

	StorageBackend string
	DataDir        string
	RedisURL       string
	DatabaseURL    string
	SessionTTL     time.Duration
	JWTSecret      string

	ContactEmail  string
	ContactPhone  string
	FormRelayURL  string
	FormRecipient string

	Features models.FeatureFlags

	SimulateDelays     bool
	LoginDelay         time.Duration
	PaymentDelay       time.Duration
	PaymentSuccessRate float64

	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration

	AllowedOrigins []string

	TracingEnabled bool
}

// Load reads the environment. Unset or unparsable values fall back to the
// defaults, with a warning where the fallback matters in production.
func Load() Config {
	cfg := Config{
		Port:   getEnv("PORT", "8081"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SessionTTL:     getDuration("SESSION_TTL", 720*time.Hour),
		JWTSecret:      os.Getenv("JWT_SECRET"),

		ContactEmail: getEnv("CONTACT_EMAIL", "ngondimarklewis@gmail.com"),
		ContactPhone: getEnv("CONTACT_PHONE", "+254700000000"),
		FormRelayURL: getEnv("FORM_RELAY_URL", "https://formsubmit.co"),

		Features: models.FeatureFlags{
			ChatWidget:     getBool("ENABLE_CHAT_WIDGET", true),
			Analytics:      getBool("ENABLE_ANALYTICS", false),
			ErrorReporting: getBool("ENABLE_ERROR_REPORTING", false),
		},

		SimulateDelays:     getBool("SIMULATE_DELAYS", true),
		LoginDelay:         getDuration("LOGIN_DELAY", time.Second),
		PaymentDelay:       getDuration("PAYMENT_DELAY", 3*time.Second),
		PaymentSuccessRate: getFloat("PAYMENT_SUCCESS_RATE", 0.9),

		RateLimitEnabled: getBool("RATE_LIMIT_ENABLED", false),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 20),
		RateLimitWindow:  getDuration("RATE_LIMIT_WINDOW", time.Minute),

		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		TracingEnabled: getBool("TRACING_ENABLED", false),
	}
	cfg.FormRecipient = getEnv("FORM_RECIPIENT", cfg.ContactEmail)

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
		log.Println("⚠️  JWT_SECRET not set, using development secret")
	}
	if cfg.PaymentSuccessRate < 0 || cfg.PaymentSuccessRate > 1 {
		log.Printf("⚠️  PAYMENT_SUCCESS_RATE %v out of range, using 0.9", cfg.PaymentSuccessRate)
		cfg.PaymentSuccessRate = 0.9
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Site is the public configuration served at GET /site.
func (c Config) Site() models.SiteConfig {
	return models.SiteConfig{
		Name:     "FarmFresh Poultry",
		Contact:  models.ContactInfo{Email: c.ContactEmail, Phone: c.ContactPhone},
		Features: c.Features,
		Currency: "KSh",
		MobileMoney: models.MobileMoneyLimits{
			MinAmount: checkout.MinMobileMoneyAmount.InexactFloat64(),
			MaxAmount: checkout.MaxMobileMoneyAmount.InexactFloat64(),
		},
		TourTimes:        append([]string(nil), validation.TourTimes...),
		MaxTourGroupSize: validation.MaxTourGroupSize,
		MaxMessageLength: validation.MaxMessageLength,
	}
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a boolean, using %v", key, value, defaultValue)
		return defaultValue
	}
	return b
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not an integer, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a number, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a duration, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
