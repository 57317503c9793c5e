//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"
	"time"

	"service/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// ListInTransit возвращает заказы в пути: status=shipped,
	// shipping_status in (in_transit, pending), awb присвоен.
	ListInTransit(ctx context.Context, limit int) ([]entities.Order, error)

	MarkDelivered(ctx context.Context, orderID string, deliveredAt time.Time) error
}

type Repository interface {
	// SupersedeLatest снимает флаг is_latest со всех записей пары
	// (orderID, awbNo).
	SupersedeLatest(ctx context.Context, orderID, awbNo string) error

	Insert(ctx context.Context, record *entities.TrackingRecord) (*entities.TrackingRecord, error)
	GetLatest(ctx context.Context, orderID, awbNo string) (*entities.TrackingRecord, error)
	ListHistory(ctx context.Context, orderID string, limit int) ([]entities.TrackingRecord, error)
}

type CarrierGateway interface {
	QueryTracking(ctx context.Context, awbNo string) (*entities.TrackingSnapshot, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.ShipmentEvent) error
}
