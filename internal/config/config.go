// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Provider is the read-only view of configuration the rest of the
// application depends on. Handlers and middleware take this interface so
// tests can substitute fixed values.
type Provider interface {
	GetListenAddr() string
	GetAppBaseURL() string
	GetAPIBaseURL() string
	GetSessionSecret() string
	GetAdminPassword() string
	GetRequestTimeout() time.Duration
	GetMediaCacheDir() string
}

// Config holds all configuration for the application.
type Config struct {
	ListenAddr     string
	AppBaseURL     string
	APIBaseURL     string
	SessionSecret  string
	AdminPassword  string
	RequestTimeout time.Duration
	MediaCacheDir  string
}

// New loads configuration from environment variables, reading a .env file
// first if one exists. Missing required variables are fatal: a frontend
// without a backend URL or a session secret cannot run.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		ListenAddr:     getEnv("SLVNK_ADDR", ":8080"),
		AppBaseURL:     getEnv("SLVNK_BASE_URL", "http://localhost:8080"),
		APIBaseURL:     os.Getenv("SLVNK_API_URL"),
		SessionSecret:  os.Getenv("SLVNK_SESSION_SECRET"),
		AdminPassword:  os.Getenv("SLVNK_ADMIN_PASSWORD"),
		RequestTimeout: getDuration("SLVNK_REQUEST_TIMEOUT", 10*time.Second),
		MediaCacheDir:  getEnv("SLVNK_MEDIA_CACHE_DIR", "media-cache"),
	}

	if cfg.APIBaseURL == "" || cfg.SessionSecret == "" {
		log.Fatal("Required environment variables SLVNK_API_URL or SLVNK_SESSION_SECRET are not set.")
	}

	return cfg
}

func (c *Config) GetListenAddr() string            { return c.ListenAddr }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetAPIBaseURL() string            { return c.APIBaseURL }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetAdminPassword() string         { return c.AdminPassword }
func (c *Config) GetRequestTimeout() time.Duration { return c.RequestTimeout }
func (c *Config) GetMediaCacheDir() string         { return c.MediaCacheDir }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Ignoring invalid %s value %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
