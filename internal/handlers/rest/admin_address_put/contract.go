//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_address_put_test
package admin_address_put

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
	UpdateShippingAddress(ctx context.Context, orderID string, modify entities.ShippingAddressModify) (*entities.ShippingAddress, error)
}
