package kvstore

import (
	"context"
	"time"
)

// Store — key-value хранилище с TTL-семантикой. Внедряется как
// зависимость, чтобы single-instance деплой работал на memory_adapter,
// а multi-instance мог подключить redis_adapter без правки call sites.
type Store interface {
	// Get возвращает значение и признак его наличия. Просроченные
	// записи считаются отсутствующими.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set сохраняет значение с временем жизни ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
}
