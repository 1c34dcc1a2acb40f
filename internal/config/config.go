package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Provider names for the event notifier
const (
	ProviderConsole = "console"
	ProviderBroker  = "broker"
)

// Config carries every process setting. It is built once in main and passed
// down explicitly; nothing reads the environment after Load returns.
type Config struct {
	Database DatabaseConfig
	Events   EventsConfig
	Port     string
}

// DatabaseConfig holds the Postgres connection parameters
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// URL renders the lib/pq connection string
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// EventsConfig selects and parameterizes the event notifier
type EventsConfig struct {
	Provider string   // console or broker
	Brokers  []string // broker mode only
	Topic    string   // broker mode only
}

var loadDotEnvOnce sync.Once

// loadDotEnv reads .env once if it exists; real environment wins over file values
func loadDotEnv() {
	loadDotEnvOnce.Do(func() {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		if err := godotenv.Load(); err != nil {
			log.Printf("dotenv: failed to load .env: %v", err)
		}
	})
}

// Load builds the Config from the environment. Every option has a default
// so the service runs with zero configuration against a local Postgres.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "posts"),
		},
		Events: EventsConfig{
			Provider: getEnv("EVENTS_PROVIDER", ProviderConsole),
			Brokers:  splitHosts(getEnv("KAFKA_BROKER", "kafka:9092")),
			Topic:    getEnv("KAFKA_TOPIC", "posts_events"),
		},
		Port: getEnv("PORT", "8080"),
	}

	if cfg.Events.Provider != ProviderConsole && cfg.Events.Provider != ProviderBroker {
		return nil, fmt.Errorf("unknown EVENTS_PROVIDER %q (expected %q or %q)",
			cfg.Events.Provider, ProviderConsole, ProviderBroker)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitHosts parses a comma-separated broker list
func splitHosts(s string) []string {
	parts := strings.Split(s, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
