package gobreaker_adapter

import (
	"errors"

	"github.com/sony/gobreaker"
	"service/pkg/breaker"
)

type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

func New(config breaker.Config) *Breaker {
	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.ConsecutiveFailures
		},
	}

	return &Breaker{
		cb: gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *Breaker) Execute(fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return breaker.ErrOpen
	}
	return err
}
