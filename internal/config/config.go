package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass), d.Host, d.Port, d.Name)
}

// Kafka stores courier event feed settings. Empty brokers disable the worker.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Auth stores token settings for login and admin routes.
type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Routing stores distance gateway settings. Empty BaseURL disables estimates.
type Routing struct {
	BaseURL     string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores write-endpoint throttle settings.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

// Config stores service settings.
type Config struct {
	Port      int
	PprofPort int
	DB        DB
	Kafka     Kafka
	Auth      Auth
	Routing   Routing
	RateLimit RateLimit
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		PprofPort: DefaultPprofPort(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Auth:      DefaultAuth(),
		Routing:   DefaultRouting(),
		RateLimit: DefaultRateLimit(),
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.PprofPort = envInt("PPROF_PORT", cfg.PprofPort)

	cfg.DB.Host = envStr("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envStr("POSTGRES_DB", cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.Topic = envStr("KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.Auth.JWTSecret = envStr("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTL = envDuration("JWT_TTL", cfg.Auth.TokenTTL)

	cfg.Routing.BaseURL = envStr("ROUTING_URL", cfg.Routing.BaseURL)

	cfg.RateLimit.Limit = envInt("RATE_LIMIT", cfg.RateLimit.Limit)
	cfg.RateLimit.Window = envDuration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)

	fs := pflag.NewFlagSet("shipping-service", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Printf("warning: flag parse: %v", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
