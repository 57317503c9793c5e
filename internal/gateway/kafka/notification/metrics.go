package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shipment_events_published_total",
		Help: "Total number of shipment lifecycle events published",
	},
	[]string{"event_type", "outcome"},
)
