package provider

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"estate_erp/internal/conf"
	"estate_erp/internal/dao/mongodb"
	"estate_erp/internal/limiter"
	"estate_erp/internal/metrics"
	"estate_erp/internal/mq"
	"estate_erp/internal/mq/noop"
	"estate_erp/internal/mq/rabbitmq"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// --- Type-safe configuration values for dependency injection ---

type AppMode string

func ProvideAppMode(c *conf.AppConfig) AppMode {
	return AppMode(c.Mode)
}

// --- Providers for application components ---

// ProvideDatabase creates a new database instance from a client and config.
func ProvideDatabase(client *mongo.Client, cfg *conf.MongodbConfig) *mongo.Database {
	return client.Database(cfg.DB)
}

// ProvideMachineID attempts to parse a numeric id from the hostname (e.g., for StatefulSets).
// It defaults to 1 if parsing fails, which is safe for single-instance/dev environments.
func ProvideMachineID() uint16 {
	hostname, err := os.Hostname()
	if err != nil {
		fmt.Printf("WARN: Cannot get hostname, defaulting machine id to 1: %v\n", err)
		return 1
	}
	return machineIDFromHostname(hostname)
}

func machineIDFromHostname(hostname string) uint16 {
	parts := strings.Split(hostname, "-")
	if len(parts) < 2 {
		return 1
	}
	id, err := strconv.ParseUint(parts[len(parts)-1], 10, 16)
	if err != nil {
		return 1
	}
	return uint16(id)
}

// ProvideMetrics registers the service collectors on the default Prometheus registry.
func ProvideMetrics() *metrics.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

// ProvideChangeFeed opens change streams on the application database.
func ProvideChangeFeed(db *mongo.Database, cfg *conf.ChangeCaptureConfig, logger *zap.Logger) *mongodb.ChangeFeedDAO {
	return mongodb.NewChangeFeedDAO(db, cfg.FullDocumentBeforeChange, logger)
}

// ProvideWatchedCollections returns the configured allow-list, or the built-in one.
func ProvideWatchedCollections(cfg *conf.ChangeCaptureConfig) []string {
	if cfg != nil && len(cfg.WatchedCollections) > 0 {
		return cfg.WatchedCollections
	}
	return mongodb.WatchedCollections
}

// ProvidePublisher picks the RabbitMQ publisher when enabled, and a no-op one otherwise.
func ProvidePublisher(cfg *conf.RabbitMQConfig, logger *zap.Logger) (mq.Publisher, func(), error) {
	if cfg == nil || !cfg.Enabled {
		logger.Info("audit fan-out disabled, using no-op publisher")
		return noop.NewPublisher(), func() {}, nil
	}
	p, cleanup, err := rabbitmq.NewPublisher(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return p, cleanup, nil
}

// ProvideRedisNamespace creates a namespace string for Redis keys.
func ProvideRedisNamespace(cfg *conf.AppConfig) limiter.Namespace {
	return limiter.Namespace(fmt.Sprintf("%s:%s:", cfg.Name, cfg.Mode))
}

// ProvideRedisClient creates and returns a new Redis client based on the application configuration.
// It also returns a cleanup function to close the connection.
func ProvideRedisClient(cfg *conf.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}
