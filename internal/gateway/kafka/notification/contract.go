//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import "context"

type sender interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}
