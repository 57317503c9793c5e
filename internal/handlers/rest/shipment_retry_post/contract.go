//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_retry_post_test
package shipment_retry_post

import (
	"context"

	"service/internal/entities"
	"service/internal/service/shipment"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RetryWaybill(ctx context.Context, input shipment.GenerateInput) (*entities.WaybillAssignment, error)
}
