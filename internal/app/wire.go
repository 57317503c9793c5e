//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"service/internal/gateway/bluedart"
	"service/internal/gateway/kafka/notification"
	"service/internal/pkg/config"
	"service/internal/pkg/kafka"
	orderRepo "service/internal/repository/order"
	trackingRepo "service/internal/repository/tracking"
	shipmentService "service/internal/service/shipment"
	trackingService "service/internal/service/tracking"
	"service/pkg/logger"
	"service/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideTrackingRepository,

		provideTokenStore,
		provideCarrierHTTPClient,
		provideCarrierGateway,
		provideEventPublisher,

		provideServiceShipment,
		provideServiceTracking,

		provideTrackingSyncTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),

		wire.Bind(new(shipmentService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(shipmentService.CarrierGateway), new(*bluedart.Gateway)),
		wire.Bind(new(shipmentService.EventPublisher), new(*notification.Publisher)),

		wire.Bind(new(trackingService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(trackingService.CarrierGateway), new(*bluedart.Gateway)),
		wire.Bind(new(trackingService.EventPublisher), new(*notification.Publisher)),
		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}
