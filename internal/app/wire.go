//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"parceldesk/internal/handlers/kafka-consumer/package_scanned"
	"parceldesk/internal/handlers/rest/package_checkin_post"
	"parceldesk/internal/handlers/rest/package_checkout_post"
	"parceldesk/internal/handlers/rest/package_get"
	"parceldesk/internal/handlers/rest/packages_list_get"
	"parceldesk/internal/handlers/rest/packages_search_get"
	"parceldesk/internal/handlers/tasks/backlog_metrics"
	"parceldesk/internal/pkg/config"
	metrics_system "parceldesk/internal/pkg/metrics"
	parcelRepo "parceldesk/internal/repository/parcel"
	parcelService "parceldesk/internal/service/parcel"
	"parceldesk/pkg/background"
	"parceldesk/pkg/logger"
	"parceldesk/pkg/querier"
	"parceldesk/pkg/tx"
)

type (
	BacklogMetricsInterval time.Duration
)

type Application struct {
	Lifecycle         ServiceLifecycle
	Query             ServiceQuery
	BackgroundWorkers *background.Worker
}

type ServiceLifecycle interface {
	package_checkin_post.Service
	package_checkout_post.Service
}

type ServiceQuery interface {
	packages_search_get.Service
	packages_list_get.Service
	package_get.Service
	backlog_metrics.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBacklogMetricsInterval,

		provideParcelRepository,

		provideLifecycleService,
		provideQueryService,

		provideBacklogMetricsTask,
		metrics_system.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*parcelService.Lifecycle)),
		wire.Bind(new(ServiceQuery), new(*parcelService.Query)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(parcelRepo.Querier), new(*querier.Querier)),

		wire.Bind(new(backlog_metrics.Service), new(*parcelService.Query)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	Lifecycle package_scanned.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-package-scanned)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		provideLifecycleService,

		wire.Bind(new(package_scanned.Service), new(*parcelService.Lifecycle)),
		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(parcelRepo.Querier), new(*querier.Querier)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier parcelRepo.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideLifecycleService(
	repository parcelService.Repository,
	txManager parcelService.TxManager,
) *parcelService.Lifecycle {
	return parcelService.NewLifecycle(repository, txManager)
}

func provideQueryService(repository parcelService.Repository) *parcelService.Query {
	return parcelService.NewQuery(repository)
}

func provideBacklogMetricsInterval(cfg *config.Config) BacklogMetricsInterval {
	return BacklogMetricsInterval(cfg.Tasks.BacklogMetricsInterval)
}

func provideBacklogMetricsTask(
	log logger.Logger,
	service backlog_metrics.Service,
	interval BacklogMetricsInterval,
) *backlog_metrics.BacklogMetrics {
	return backlog_metrics.NewBacklogMetrics(log, service, time.Duration(interval))
}

func provideTaskList(
	backlogMetricsTask *backlog_metrics.BacklogMetrics,
	systemCollector *metrics_system.SystemCollector,
) []background.Task {
	return []background.Task{
		backlogMetricsTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
