package tracking

import (
	"errors"

	"service/internal/service/shipment"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrNotShipped     = errors.New("order not yet shipped")
	ErrNoTrackingData = errors.New("no tracking data")

	// ErrOrderNotFound разделяется с shipment: оба сервиса читают заказы
	// через один репозиторий.
	ErrOrderNotFound = shipment.ErrOrderNotFound
)
