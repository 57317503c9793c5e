//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_history_get_test
package shipment_history_get

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetTrackingHistory(ctx context.Context, orderID string, limit int) ([]entities.TrackingRecord, error)
}
