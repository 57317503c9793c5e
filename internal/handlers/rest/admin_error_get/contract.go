//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_error_get_test
package admin_error_get

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
	GetShippingError(ctx context.Context, orderID string) (*entities.ShippingErrorDetail, error)
}
