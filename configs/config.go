package configs

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// DefaultMaxBodyBytes caps JSON request bodies, base64 uploads included.
const DefaultMaxBodyBytes = 10 << 20

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	DBDriver string
	DBSource string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	StripeSecretKey string
	ImgBBAPIKey     string
	ImgBBUploadURL  string
	UpstreamTimeout time.Duration

	CORSOrigins  []string
	MaxBodyBytes int64

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("PORT", "5000"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBSource: getEnv("DB_SOURCE", "luxe_store.db"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTL:     getEnvDuration("JWT_TTL", 7*24*time.Hour),
		BcryptCost: clampCost(getEnvInt("BCRYPT_COST", 12)),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		ImgBBAPIKey:     os.Getenv("IMGBB_API_KEY"),
		ImgBBUploadURL:  getEnv("IMGBB_UPLOAD_URL", "https://api.imgbb.com/1/upload"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),

		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDev() {
			return nil, errors.New("JWT_SECRET must be set outside dev")
		}
		cfg.JWTSecret = "changeme"
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func clampCost(cost int) int {
	if cost < bcrypt.MinCost {
		return bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
