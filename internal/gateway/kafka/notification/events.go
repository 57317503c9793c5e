package notification

import "time"

// shipmentEventPayload — wire-формат события для подписчиков
// нотификаций.
type shipmentEventPayload struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	AWBNo          string    `json:"awbNo,omitempty"`
	Status         string    `json:"status"`
	ShippingStatus string    `json:"shippingStatus"`
	Error          string    `json:"error,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
