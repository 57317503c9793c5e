package breaker

import (
	"errors"
	"time"
)

// ErrOpen возвращается, когда breaker разомкнут и вызов не выполнялся.
var ErrOpen = errors.New("circuit breaker is open")

type Breaker interface {
	Execute(fn func() error) error
}

type Config struct {
	Name string

	// MaxRequests — сколько запросов пропускать в half-open состоянии.
	MaxRequests uint32

	// Interval — период сброса счетчиков в closed состоянии.
	Interval time.Duration

	// Timeout — пауза перед переходом из open в half-open.
	Timeout time.Duration

	// ConsecutiveFailures — число подряд идущих ошибок для размыкания.
	ConsecutiveFailures uint32
}
