package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Mode                 string `mapstructure:"mode"`
	Port                 int    `mapstructure:"port"`
	Name                 string `mapstructure:"name"`
	Version              string `mapstructure:"version"`
	TimeZone             string `mapstructure:"time_zone"`
	*LogConfig           `mapstructure:"log"`
	*MongodbConfig       `mapstructure:"mongodb"`
	*ChangeCaptureConfig `mapstructure:"change_capture"`
	*RabbitMQConfig      `mapstructure:"rabbitmq"`
	*RedisConfig         `mapstructure:"redis"`
	*RateLimiterConfig   `mapstructure:"rate_limiter"`
}

// MongodbConfig holds the MongoDB configuration. URI wins over the host/port parts when set.
type MongodbConfig struct {
	URI        string `mapstructure:"uri"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	DB         string `mapstructure:"db"`
	ReplicaSet string `mapstructure:"replica_set"`
}

// ConnectionURI builds the connection string for the driver.
func (c *MongodbConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	auth := ""
	if c.User != "" {
		auth = fmt.Sprintf("%s:%s@", c.User, c.Password)
	}
	uri := fmt.Sprintf("mongodb://%s%s:%d/", auth, c.Host, c.Port)
	if c.ReplicaSet != "" {
		uri += "?replicaSet=" + c.ReplicaSet
	}
	return uri
}

// LogConfig holds the logger configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// ChangeCaptureConfig controls the audit change-stream pipeline.
type ChangeCaptureConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// WatchedCollections replaces the built-in allow-list when non-empty.
	WatchedCollections []string `mapstructure:"watched_collections"`
	// ErrorBackoff is the pause after the feed errors or closes.
	ErrorBackoff string `mapstructure:"error_backoff"`
	// StartBackoff is the pause after the subscription itself could not be opened.
	StartBackoff string `mapstructure:"start_backoff"`
	// FullDocumentBeforeChange is one of off, whenAvailable, required.
	FullDocumentBeforeChange string `mapstructure:"full_document_before_change"`
}

// RabbitMQConfig holds the RabbitMQ configuration used for audit fan-out.
type RabbitMQConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	AuditExchange string `mapstructure:"audit_exchange"`
}

// RedisConfig holds the Redis client configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimiterPolicy defines the limit and interval for a policy.
type RateLimiterPolicy struct {
	Interval string `mapstructure:"interval"` // e.g., "1s", "1m", "1h"
	Limit    int    `mapstructure:"limit"`
}

// RateLimiterConfig holds all rate limiting policies.
type RateLimiterConfig struct {
	Default  RateLimiterPolicy            `mapstructure:"default"`
	Policies map[string]RateLimiterPolicy `mapstructure:"policies"`
}

const (
	defaultErrorBackoff = 5 * time.Second
	defaultStartBackoff = 10 * time.Second
)

// Backoffs parses the configured pipeline delays, falling back to 5s/10s.
func (c *ChangeCaptureConfig) Backoffs() (errorBackoff, startBackoff time.Duration, err error) {
	errorBackoff, err = parseDurationOr(c.ErrorBackoff, defaultErrorBackoff)
	if err != nil {
		return 0, 0, fmt.Errorf("change_capture.error_backoff: %w", err)
	}
	startBackoff, err = parseDurationOr(c.StartBackoff, defaultStartBackoff)
	if err != nil {
		return 0, 0, fmt.Errorf("change_capture.start_backoff: %w", err)
	}
	return errorBackoff, startBackoff, nil
}

func parseDurationOr(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", s)
	}
	return d, nil
}

// NewConfig loads the application configuration from a file.
func NewConfig(confFile string) (*AppConfig, error) {
	// A missing .env is fine outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(confFile)

	// `mongodb.host` -> `MONGODB_HOST`
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", "dev")
	v.SetDefault("time_zone", "UTC")
	v.SetDefault("change_capture.enabled", true)
	v.SetDefault("change_capture.full_document_before_change", "whenAvailable")
	v.SetDefault("rabbitmq.audit_exchange", "audit")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if conf.ChangeCaptureConfig == nil {
		conf.ChangeCaptureConfig = &ChangeCaptureConfig{Enabled: true, FullDocumentBeforeChange: "whenAvailable"}
	}
	if _, _, err := conf.ChangeCaptureConfig.Backoffs(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(conf.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}
	time.Local = loc

	return &conf, nil
}
