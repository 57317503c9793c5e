//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bluedart_test
package bluedart

import (
	"context"
	"net/http"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type tokenStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type circuitBreaker interface {
	Execute(fn func() error) error
}
