package global

import (
	"os"
	"strconv"

	"github.com/go-redis/redis_rate/v10"
)

// Conf global config
var Conf Config

// Global rate limiter (nil when Redis is not configured)
var RateLimiter *redis_rate.Limiter

type Config struct {
	Host       string
	Port       int
	Mode       string // gin mode: debug or release
	Version    string
	Admin      AdminConfig
	CouchDB    CouchDBConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
	Prometheus PrometheusConfig
}

type AdminConfig struct {
	Username string
	Password string
}

type CouchDBConfig struct {
	Scheme   string
	Host     string
	Port     int
	Username string
	Password string
}

// Redis is optional. Without it the rate limiter and the profile cache
// degrade to no-ops.
type RedisConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type CloudinaryConfig struct {
	CloudName string
	ApiKey    string
	ApiSecret string
}

type PrometheusConfig struct {
	Enabled  bool
	Username string
	Password string
}

// LoadFromEnv populates Conf from environment variables. A local .env file
// is honored when present (loaded in main via godotenv).
func LoadFromEnv() Config {
	conf := Config{
		Host:    envOr("SERVER_HOST", "0.0.0.0"),
		Port:    envIntOr("SERVER_PORT", 8080),
		Mode:    envOr("SERVER_MODE", "debug"),
		Version: envOr("SERVER_VERSION", "1.0.0"),
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		CouchDB: CouchDBConfig{
			Scheme:   envOr("COUCHDB_SCHEME", "http"),
			Host:     envOr("COUCHDB_HOST", "localhost"),
			Port:     envIntOr("COUCHDB_PORT", 5984),
			Username: os.Getenv("COUCHDB_USERNAME"),
			Password: os.Getenv("COUCHDB_PASSWORD"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     envIntOr("REDIS_PORT", 6379),
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			ApiKey:    os.Getenv("CLOUDINARY_API_KEY"),
			ApiSecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Prometheus: PrometheusConfig{
			Enabled:  envOr("PROMETHEUS_ENABLED", "false") == "true",
			Username: os.Getenv("PROMETHEUS_USERNAME"),
			Password: os.Getenv("PROMETHEUS_PASSWORD"),
		},
	}
	Conf = conf
	return conf
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
