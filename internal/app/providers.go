package app

import (
	"context"
	"net/http"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service/internal/gateway/bluedart"
	"service/internal/gateway/kafka/notification"
	"service/internal/handlers/rest/admin_address_put"
	"service/internal/handlers/rest/admin_error_get"
	"service/internal/handlers/rest/admin_pending_get"
	"service/internal/handlers/rest/shipment_cancel_post"
	"service/internal/handlers/rest/shipment_generate_post"
	"service/internal/handlers/rest/shipment_get"
	"service/internal/handlers/rest/shipment_history_get"
	"service/internal/handlers/rest/shipment_retry_post"
	"service/internal/handlers/rest/shipment_sync_post"
	"service/internal/handlers/rest/shipment_track_get"
	"service/internal/handlers/tasks/tracking_sync"
	"service/internal/pkg/config"
	"service/internal/pkg/kafka"
	orderRepo "service/internal/repository/order"
	trackingRepo "service/internal/repository/tracking"
	shipmentService "service/internal/service/shipment"
	trackingService "service/internal/service/tracking"
	"service/pkg/background"
	"service/pkg/kvstore"
	"service/pkg/kvstore/memory_adapter"
	"service/pkg/kvstore/redis_adapter"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceTracking   ServiceTracking
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_generate_post.Service
	shipment_retry_post.Service
	shipment_get.Service
	shipment_cancel_post.Service
	admin_pending_get.Service
	admin_address_put.Service
	admin_error_get.Service
}

type ServiceTracking interface {
	shipment_track_get.Service
	shipment_sync_post.Service
	shipment_history_get.Service
	tracking_sync.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

// provideTokenStore выбирает бекенд кеша токена: in-memory для одного
// инстанса, redis — когда инстансов несколько и токен должен быть общим.
func provideTokenStore(cfg *config.Config) kvstore.Store {
	if cfg.TokenStore.Backend == config.TokenStoreRedis {
		return redis_adapter.New(cfg.TokenStore.RedisAddr)
	}
	return memory_adapter.New()
}

func provideCarrierHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.BlueDart.RequestTimeout,
	}
}

func provideCarrierGateway(cfg *config.Config, client *http.Client, tokens kvstore.Store) *bluedart.Gateway {
	return bluedart.New(bluedart.Config{
		BaseURL:    cfg.BlueDart.BaseURL,
		LicenseKey: cfg.BlueDart.LicenseKey,
		LoginID:    cfg.BlueDart.LoginID,
		TokenTTL:   cfg.BlueDart.TokenTTL,
		Shipper: bluedart.ShipperProfile{
			Name:         cfg.BlueDart.Shipper.Name,
			Address:      cfg.BlueDart.Shipper.Address,
			City:         cfg.BlueDart.Shipper.City,
			State:        cfg.BlueDart.Shipper.State,
			PostalCode:   cfg.BlueDart.Shipper.PostalCode,
			CustomerCode: cfg.BlueDart.Shipper.CustomerCode,
		},
	}, client, tokens)
}

func provideEventPublisher(producer *kafka.Producer, cfg *config.Config) *notification.Publisher {
	return notification.New(producer, cfg.Kafka.ShipmentEventsTopic)
}

func provideServiceShipment(
	log logger.Logger,
	repository shipmentService.Repository,
	carrier shipmentService.CarrierGateway,
	events shipmentService.EventPublisher,
) *shipmentService.Shipment {
	return shipmentService.New(log, repository, carrier, events)
}

func provideServiceTracking(
	log logger.Logger,
	orders trackingService.OrderRepository,
	repository trackingService.Repository,
	carrier trackingService.CarrierGateway,
	txManager trackingService.TxManager,
	events trackingService.EventPublisher,
	cfg *config.Config,
) *trackingService.Tracking {
	return trackingService.New(log, orders, repository, carrier, txManager, events, trackingService.Config{
		SweepBatchSize: cfg.Tasks.SweepBatchSize,
		SweepCallDelay: cfg.Tasks.SweepCallDelay,
	})
}

func provideTrackingSyncTask(
	log logger.Logger,
	trackingService *trackingService.Tracking,
	cfg *config.Config,
) *tracking_sync.TrackingSync {
	return tracking_sync.NewTrackingSync(log, trackingService, cfg.Tasks.TrackingSyncInterval)
}

func provideTaskList(
	trackingSyncTask *tracking_sync.TrackingSync,
) []background.Task {
	return []background.Task{
		trackingSyncTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
