package entities

import "time"

type ShipmentEventType string

const (
	ShipmentShipped          ShipmentEventType = "shipment.shipped"
	ShipmentDelivered        ShipmentEventType = "shipment.delivered"
	ShipmentCancelled        ShipmentEventType = "shipment.cancelled"
	ShipmentGenerationFailed ShipmentEventType = "shipment.generation_failed"
)

// ShipmentEvent — событие жизненного цикла отправления для внешних
// подписчиков (нотификации). Публикация best-effort.
type ShipmentEvent struct {
	Type           ShipmentEventType
	OrderID        string
	AWBNo          string
	Status         OrderStatusType
	ShippingStatus ShippingStatusType
	Error          string
	OccurredAt     time.Time
}
