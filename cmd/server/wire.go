//go:build wireinject
// +build wireinject

package main

import (
	"estate_erp/internal/app"
	"estate_erp/internal/conf"
	"estate_erp/internal/dao/mongodb"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/limiter"
	"estate_erp/internal/logger"
	"estate_erp/internal/logic"
	"estate_erp/internal/middleware/http"
	"estate_erp/internal/provider"
	"estate_erp/internal/service"
	"estate_erp/internal/worker"
	"estate_erp/pkg/snowflake"

	"github.com/google/wire"
)

// storeProviders opens the database and everything shared by serve and migrate.
var storeProviders = wire.NewSet(
	wire.FieldsOf(new(*conf.AppConfig), "LogConfig", "MongodbConfig", "ChangeCaptureConfig"),
	provider.ProvideAppMode,
	logger.NewLogger,
	mongodb.NewMongoDB,
	provider.ProvideDatabase,
	provider.ProvideWatchedCollections,
)

var daoProviders = wire.NewSet(
	mongodb.NewBuildingsDAO,
	wire.Bind(new(repository.BuildingRepository), new(*mongodb.BuildingsDAO)),
	mongodb.NewFloorUnitsDAO,
	wire.Bind(new(repository.FloorUnitRepository), new(*mongodb.FloorUnitsDAO)),
	mongodb.NewPropertyUnitsDAO,
	wire.Bind(new(repository.PropertyUnitRepository), new(*mongodb.PropertyUnitsDAO)),
	mongodb.NewAuditLogDAO,
	wire.Bind(new(repository.AuditLogRepository), new(*mongodb.AuditLogDAO)),
	provider.ProvideChangeFeed,
	wire.Bind(new(repository.ChangeFeed), new(*mongodb.ChangeFeedDAO)),
)

// auditProviders builds the change-capture pipeline and its fan-out.
var auditProviders = wire.NewSet(
	wire.FieldsOf(new(*conf.AppConfig), "RabbitMQConfig"),
	provider.ProvidePublisher,
	provider.ProvideMachineID,
	snowflake.NewSequencer,
	wire.Bind(new(worker.Sequencer), new(*snowflake.Sequencer)),
	worker.NewChangeCapture,
)

var httpProviders = wire.NewSet(
	wire.FieldsOf(new(*conf.AppConfig), "Port", "RedisConfig", "RateLimiterConfig"),
	provider.ProvideRedisNamespace,
	provider.ProvideRedisClient,
	limiter.NewManager,
	service.NewHierarchyHandler,
	service.NewEntityHandler,
	service.NewAuditHandler,
	http.NewActorMiddleware,
	app.NewHttpHandlerRegister,
)

// provideWorkers runs the change capture only when it is enabled.
func provideWorkers(cfg *conf.ChangeCaptureConfig, cc *worker.ChangeCapture) []worker.Worker {
	if cfg == nil || !cfg.Enabled {
		return []worker.Worker{}
	}
	return []worker.Worker{cc}
}

func InitializeServerApp(appConfig *conf.AppConfig) (*app.App, func(), error) {
	wire.Build(
		storeProviders,
		daoProviders,
		auditProviders,
		httpProviders,
		provider.ProvideMetrics,
		logic.EntityLogicProviderSet,
		logic.HierarchyLogicProviderSet,
		logic.AuditLogicProviderSet,
		provideWorkers,
		conf.NewUnaryInterceptors,
		app.NewApp,
	)
	return nil, nil, nil
}

func InitializeMigrator(appConfig *conf.AppConfig) (*Migrator, func(), error) {
	wire.Build(
		storeProviders,
		newMigrator,
	)
	return nil, nil, nil
}
