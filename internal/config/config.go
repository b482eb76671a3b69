// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Ebay     EbayConfig     `yaml:"ebay"`
	Storage  StorageConfig  `yaml:"storage"`
	Schedule ScheduleConfig `yaml:"schedule"`

	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines the marketplace OAuth and Sell API settings. Credentials
// are expected through ${ENV} references, never inline.
type EbayConfig struct {
	ClientID        string   `yaml:"client_id"`
	ClientSecret    string   `yaml:"client_secret"`
	RedirectURI     string   `yaml:"redirect_uri"` // eBay RuName
	TokenURL        string   `yaml:"token_url"`
	AuthURL         string   `yaml:"auth_url"`
	SellURL         string   `yaml:"sell_url"`
	Marketplace     string   `yaml:"marketplace"`
	ContentLanguage string   `yaml:"content_language"`
	Scopes          []string `yaml:"scopes"`

	// ConditionTable picks the condition mapping: listing or resolver.
	ConditionTable string `yaml:"condition_table"`

	Listing   ListingConfig   `yaml:"listing"`
	Timeout   time.Duration   `yaml:"timeout"`
	Retry     RetryConfig     `yaml:"retry"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Breaker   BreakerConfig   `yaml:"breaker"`

	// RefreshSkew treats tokens expiring within this window as expired.
	RefreshSkew time.Duration `yaml:"refresh_skew"`
	// OperationTimeout bounds one list or unlist operation end to end.
	OperationTimeout time.Duration `yaml:"operation_timeout"`
}

// Configured reports whether client credentials are present.
func (e *EbayConfig) Configured() bool {
	return e.ClientID != "" && e.ClientSecret != ""
}

// ListingConfig holds the seller-level offer fields.
type ListingConfig struct {
	CategoryID          string `yaml:"category_id"`
	MerchantLocationKey string `yaml:"merchant_location_key"`
	FulfillmentPolicyID string `yaml:"fulfillment_policy_id"`
	PaymentPolicyID     string `yaml:"payment_policy_id"`
	ReturnPolicyID      string `yaml:"return_policy_id"`
	Currency            string `yaml:"currency"`
}

// RetryConfig bounds retries of idempotent calls.
type RetryConfig struct {
	MaxRetries uint64        `yaml:"max_retries"`
	Interval   time.Duration `yaml:"interval"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// BreakerConfig defines the Sell API circuit breaker.
type BreakerConfig struct {
	Threshold int           `yaml:"threshold"`
	Cooldown  time.Duration `yaml:"cooldown"`
}

// StorageConfig points at the public object storage bucket item images are
// served from.
type StorageConfig struct {
	PublicBaseURL string `yaml:"public_base_url"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	// TokenRefreshInterval runs the token keep-alive; 0 disables it.
	TokenRefreshInterval time.Duration `yaml:"token_refresh_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TracingConfig defines the OTLP trace exporter.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"` // host:port, OTLP over gRPC
	Insecure    bool    `yaml:"insecure"`
	CAFile      string  `yaml:"ca_file"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse expands environment variables in data, decodes it, applies defaults
// and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 90 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.AuthURL == "" {
		e.AuthURL = "https://auth.ebay.com/oauth2/authorize"
	}
	if e.SellURL == "" {
		e.SellURL = "https://api.ebay.com/sell/inventory/v1"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.ContentLanguage == "" {
		e.ContentLanguage = "en-US"
	}
	if len(e.Scopes) == 0 {
		e.Scopes = []string{"https://api.ebay.com/oauth/api_scope/sell.inventory"}
	}
	if e.ConditionTable == "" {
		e.ConditionTable = "listing"
	}
	if e.Listing.Currency == "" {
		e.Listing.Currency = "USD"
	}
	if e.Timeout == 0 {
		e.Timeout = 10 * time.Second
	}
	if e.OperationTimeout == 0 {
		e.OperationTimeout = 60 * time.Second
	}
	if e.Retry.MaxRetries == 0 {
		e.Retry.MaxRetries = 2
	}
	if e.Retry.Interval == 0 {
		e.Retry.Interval = 200 * time.Millisecond
	}
	if e.Breaker.Threshold == 0 {
		e.Breaker.Threshold = 5
	}
	if e.Breaker.Cooldown == 0 {
		e.Breaker.Cooldown = 30 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 2_000_000
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	e := &cfg.Ebay
	if (e.ClientID == "") != (e.ClientSecret == "") {
		errs = append(errs, errors.New("ebay.client_id and ebay.client_secret must be set together"))
	}
	if e.Configured() && e.RedirectURI == "" {
		errs = append(errs, errors.New("ebay.redirect_uri is required when credentials are set"))
	}
	switch e.ConditionTable {
	case "listing", "resolver":
	default:
		errs = append(errs, fmt.Errorf(
			"ebay.condition_table must be one of: listing, resolver (got %q)", e.ConditionTable,
		))
	}
	if e.RateLimit.PerSecond < 0 || e.RateLimit.Burst < 0 || e.RateLimit.DailyLimit < 0 {
		errs = append(errs, errors.New("ebay.rate_limit values must not be negative"))
	}
	if e.Breaker.Threshold < 0 {
		errs = append(errs, errors.New("ebay.breaker.threshold must not be negative"))
	}
	if e.RefreshSkew < 0 {
		errs = append(errs, errors.New("ebay.refresh_skew must not be negative"))
	}

	if cfg.Schedule.TokenRefreshInterval < 0 {
		errs = append(errs, errors.New("schedule.token_refresh_interval must not be negative"))
	}

	if r := cfg.Tracing.SampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1 (got %g)", r))
	}

	if d := cfg.Notifications.Discord; d.Enabled && d.WebhookURL == "" {
		errs = append(errs, errors.New("notifications.discord.webhook_url is required when discord is enabled"))
	}

	return errors.Join(errs...)
}
