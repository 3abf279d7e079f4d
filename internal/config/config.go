// Package config loads application configuration from environment
// variables with sensible defaults, following the teacher pack's
// getEnv-helper convention.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// RabbitConfig holds broker connection settings.
type RabbitConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

// DSN returns the amqp:// URL for this broker config.
func (r RabbitConfig) DSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.User, r.Password, r.Host, r.Port)
}

// AuthConfig holds identity-provider settings: RS256 verification key
// material plus client-credentials for management API calls.
type AuthConfig struct {
	ClientID     string
	ClientSecret string
	Audience     string
	Issuer       string
	TokenURL     string

	ManagementBaseURL  string
	ManagementAudience string

	ServerN string
	ServerE string
}

// DBConfig holds relational store settings.
type DBConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// Config holds all fabric configuration.
type Config struct {
	ServerAddress string // server: bind address; client: address to dial
	MetricsAddr   string

	DB     DBConfig
	Rabbit RabbitConfig
	Auth   AuthConfig
}

// Load reads Config from the environment. Required variables with no
// sensible default (DATABASE_URL, AUTH0_*) are returned as empty strings
// here and checked where they are consumed, not in Load: cmd/migrate and
// sqlstore.Open reject an empty DATABASE_URL, idp.NewVerifier rejects an
// empty AUTH0_SERVER_N/AUTH0_SERVER_E. The other AUTH0_* values are not
// checked for emptiness.
func Load() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", "[::1]:50051"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":9090"),
		DB: DBConfig{
			URL:          getEnv("DATABASE_URL", ""),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 32),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 16),
		},
		Rabbit: RabbitConfig{
			Host:     getEnv("RABBIT_HOST", "localhost"),
			Port:     getEnv("RABBIT_PORT", "5672"),
			User:     getEnv("RABBIT_USER", "guest"),
			Password: getEnv("RABBIT_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			ClientID:           getEnv("AUTH0_CLIENT_ID", ""),
			ClientSecret:       getEnv("AUTH0_CLIENT_SECRET", ""),
			Audience:           getEnv("AUTH0_AUDIENCE", ""),
			Issuer:             getEnv("AUTH0_ISSUER", ""),
			TokenURL:           getEnv("AUTH0_TOKEN_URL", ""),
			ManagementBaseURL:  getEnv("AUTH0_MANAGEMENT_BASE_URL", ""),
			ManagementAudience: getEnv("AUTH0_MANAGEMENT_AUDIENCE", ""),
			ServerN:            getEnv("AUTH0_SERVER_N", ""),
			ServerE:            getEnv("AUTH0_SERVER_E", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
