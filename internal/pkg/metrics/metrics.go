package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics exposed by the application.
type Metrics struct {
	OrganizationsCreated prometheus.Counter
	RequestsRegistered   prometheus.Counter
	RequestsProcessed    *prometheus.CounterVec
	BookingsCreated      prometheus.Counter
	VotesCast            prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		OrganizationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bde_organizations_created_total",
			Help: "Total number of organizations created",
		}),
		RequestsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bde_user_requests_registered_total",
			Help: "Total number of join requests registered",
		}),
		RequestsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bde_user_requests_processed_total",
			Help: "Total number of join requests processed, by outcome",
		}, []string{"outcome"}),
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bde_bookings_created_total",
			Help: "Total number of bookings created",
		}),
		VotesCast: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bde_votes_cast_total",
			Help: "Total number of votes cast",
		}),
	}
}
