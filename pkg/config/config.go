package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Caption listing backends
const (
	CaptionsSourceWatchPage = "watchpage"
	CaptionsSourceDataAPI   = "dataapi"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	YouTube YouTubeConfig
	Stripe  StripeConfig
	Session SessionConfig
	Redis   RedisConfig
	Storage StorageConfig
	Export  ExportConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:4200"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// YouTubeConfig holds caption source configuration
type YouTubeConfig struct {
	CaptionsSource string        `envconfig:"CAPTIONS_SOURCE" default:"watchpage"`
	APIKey         string        `envconfig:"YOUTUBE_API_KEY"`
	ClientID       string        `envconfig:"GOOGLE_CLIENT_ID"`
	ClientSecret   string        `envconfig:"GOOGLE_CLIENT_SECRET"`
	RefreshToken   string        `envconfig:"GOOGLE_REFRESH_TOKEN"`
	RedirectURL    string        `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8085/callback"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	WatchURL       string        `envconfig:"YOUTUBE_WATCH_URL" default:"https://www.youtube.com/watch"`
	TimedTextURL   string        `envconfig:"YOUTUBE_TIMEDTEXT_URL" default:"https://www.youtube.com/api/timedtext"`
	DataAPIURL     string        `envconfig:"YOUTUBE_DATA_API_URL" default:"https://www.googleapis.com/youtube/v3"`
}

// StripeConfig holds payment configuration
type StripeConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	Currency  string `envconfig:"STRIPE_CURRENCY" default:"aud"`
}

// SessionConfig holds transcript session configuration
type SessionConfig struct {
	Store string        `envconfig:"SESSION_STORE" default:"memory"`
	TTL   time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Enabled         bool          `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"transcrypt-exports"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string        `envconfig:"STORAGE_PUBLIC_URL"`
	URLExpiry       time.Duration `envconfig:"STORAGE_URL_EXPIRY" default:"15m"`
}

// ExportConfig holds the attribution written into every export
type ExportConfig struct {
	SiteName string `envconfig:"EXPORT_SITE_NAME" default:"Transcrypt"`
	SiteURL  string `envconfig:"EXPORT_SITE_URL" default:"https://transcrypt.web.app"`
}

// Load loads configuration from the environment, reading .env first when present
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	config.YouTube.CaptionsSource = strings.ToLower(config.YouTube.CaptionsSource)
	config.Session.Store = strings.ToLower(config.Session.Store)

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.YouTube.CaptionsSource {
	case CaptionsSourceWatchPage:
	case CaptionsSourceDataAPI:
		if c.YouTube.APIKey == "" && !c.HasGoogleOAuth() {
			return fmt.Errorf("CAPTIONS_SOURCE=dataapi requires YOUTUBE_API_KEY or GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REFRESH_TOKEN")
		}
	default:
		return fmt.Errorf("CAPTIONS_SOURCE must be %q or %q, got %q", CaptionsSourceWatchPage, CaptionsSourceDataAPI, c.YouTube.CaptionsSource)
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.Storage.Enabled {
		if c.Storage.AccessKeyID == "" || c.Storage.SecretAccessKey == "" {
			return fmt.Errorf("STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required when STORAGE_ENABLED=true")
		}
		if c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_ENABLED=true")
		}
	}
	return nil
}

// HasGoogleOAuth reports whether a refresh token based client can be built
func (c *Config) HasGoogleOAuth() bool {
	y := c.YouTube
	return y.ClientID != "" && y.ClientSecret != "" && y.RefreshToken != ""
}

// PaymentsEnabled reports whether a Stripe key is configured
func (c *Config) PaymentsEnabled() bool {
	return c.Stripe.SecretKey != ""
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
