//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// ClaimAWB присваивает заказу накладную атомарно, только если AWB
	// еще не присвоен. Возвращает false, если заказ уже занят
	// конкурентным запросом.
	ClaimAWB(ctx context.Context, orderID string, waybill entities.Waybill, consignee entities.Consignee, generatedAt time.Time) (bool, error)

	SetShippingFailure(ctx context.Context, orderID string, status entities.ShippingStatusType, message string) error

	// MarkCancelled переводит заказ в cancelled, кроме доставленных:
	// в гонке с промоутом в delivered возвращает ErrOrderDelivered.
	MarkCancelled(ctx context.Context, orderID string) (*entities.Order, error)

	UpdateShippingAddress(ctx context.Context, orderID string, modify entities.ShippingAddressModify) (*entities.ShippingAddress, error)
	ListPending(ctx context.Context, filter entities.PendingShipmentsFilter) (*entities.OrderPage, error)
}

type CarrierGateway interface {
	CreateWaybill(ctx context.Context, req entities.WaybillRequest) (*entities.Waybill, error)
	CancelWaybill(ctx context.Context, awbNo string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.ShipmentEvent) error
}
