// Package metrics registers the Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered prometheus.Counter
	LoginsSucceeded prometheus.Counter
	LoginsFailed    prometheus.Counter
	EventsCreated   prometheus.Counter
	EventsDeleted   prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codingevents_users_registered_total",
			Help: "Total number of accounts created through registration",
		}),
		LoginsSucceeded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codingevents_logins_succeeded_total",
			Help: "Total number of successful logins",
		}),
		LoginsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codingevents_logins_failed_total",
			Help: "Total number of rejected login attempts",
		}),
		EventsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codingevents_events_created_total",
			Help: "Total number of events created",
		}),
		EventsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "codingevents_events_deleted_total",
			Help: "Total number of events deleted",
		}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "codingevents_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "status"}),
	}
}
