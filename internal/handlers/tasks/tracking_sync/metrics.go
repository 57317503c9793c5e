package tracking_sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"

	resultSynced    = "synced"
	resultDelivered = "delivered"
	resultFailed    = "failed"
)

var (
	SweepRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_sweep_runs_total",
			Help: "Total number of tracking sweep runs",
		},
		[]string{"outcome"},
	)

	SweepOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_sweep_orders_total",
			Help: "Total number of orders processed by tracking sweeps",
		},
		[]string{"result"},
	)
)
