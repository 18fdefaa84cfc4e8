package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// AccessTokenCookieName is the cookie the access token is mirrored into on login.
	AccessTokenCookieName string

	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenKeyPrefix      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// IdentityEncryptionSecret seeds the key that encrypts member identity numbers.
	IdentityEncryptionSecret string

	LoginRateLimit     string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "pos-backend")
	viper.SetDefault("ACCESS_TOKEN_COOKIE_NAME", "accessToken")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_KEY_PREFIX", "RT:")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("IDENTITY_ENCRYPTION_SECRET", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDurationOrDefault("JWT_EXPIRY_DURATION", time.Hour)
	cfg.RefreshTokenExpiryDuration = parseDurationOrDefault("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "pos-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AccessTokenCookieName = viper.GetString("ACCESS_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenKeyPrefix = viper.GetString("REFRESH_TOKEN_KEY_PREFIX")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.IdentityEncryptionSecret = viper.GetString("IDENTITY_ENCRYPTION_SECRET")
	if cfg.IdentityEncryptionSecret == "" {
		// Falls back to the JWT secret so development setups work out of the box.
		log.Println("Warning: IDENTITY_ENCRYPTION_SECRET is not set, deriving identity key from JWT_SECRET. THIS IS NOT FOR PRODUCTION.")
		cfg.IdentityEncryptionSecret = cfg.JWTSecret
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func parseDurationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
