package bluedart

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"service/internal/entities"
)

var (
	CarrierRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_retries_total",
			Help: "Total number of carrier call retry attempts",
		},
		[]string{"service", "method", "outcome"},
	)

	CarrierRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_request_duration_seconds",
			Help:    "Duration of carrier requests including retries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"service", "method", "outcome"},
	)
)

func errOutcome(err error) string {
	if err == nil {
		return "ok"
	}

	var (
		balanceErr     *entities.CarrierBalanceError
		authErr        *entities.CarrierAuthError
		unavailableErr *entities.CarrierUnavailableError
	)
	switch {
	case errors.As(err, &balanceErr):
		return "balance_error"
	case errors.As(err, &authErr):
		return "auth_error"
	case errors.As(err, &unavailableErr):
		return "unavailable"
	default:
		return "carrier_error"
	}
}
