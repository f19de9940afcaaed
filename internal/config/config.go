package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	LogLevel string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// DSN vacío => repos in-memory (modo dev, igual que sin DB_DSN en env).
	DSN string
}

type RedisConfig struct {
	// URL vacía => sin rate limit de login (el kv degrada a no-op).
	URL string
}

type SessionConfig struct {
	// Secreto HMAC para el cookie JWT. En dev aplicamos un default explícito.
	JWTSecret string
	TokenTTL  time.Duration
}

// Load lee .env (si existe) y luego variables de entorno.
// Ninguna variable es obligatoria: todos los defaults dejan el server
// levantado en modo dev (in-memory, sin redis).
func Load() (*Config, error) {
	// .env es opcional; en contenedores la config llega por env directo.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.AppEnv = strings.TrimSpace(viper.GetString("APP_ENV"))
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	cfg.Server.Port = viper.GetString("PORT")
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = "8080"
	}
	cfg.Server.ReadTimeout = viper.GetDuration("SERVER_READ_TIMEOUT")
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 5 * time.Second
	}
	cfg.Server.WriteTimeout = viper.GetDuration("SERVER_WRITE_TIMEOUT")
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}

	cfg.Database.DSN = strings.TrimSpace(viper.GetString("DB_DSN"))
	cfg.Redis.URL = strings.TrimSpace(viper.GetString("REDIS_URL"))

	cfg.Session.JWTSecret = viper.GetString("JWT_SECRET")
	if strings.TrimSpace(cfg.Session.JWTSecret) == "" {
		cfg.Session.JWTSecret = "dev-secret-change-me"
	}
	cfg.Session.TokenTTL = viper.GetDuration("SESSION_TTL")
	if cfg.Session.TokenTTL <= 0 {
		cfg.Session.TokenTTL = time.Hour
	}

	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return cfg, nil
}
