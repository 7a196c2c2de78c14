package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackmatch_applications_submitted_total", Help: "Total applications submitted"},
	)
	ApplicationsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackmatch_applications_accepted_total", Help: "Total applications accepted"},
	)
	ApplicationsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackmatch_applications_rejected_total", Help: "Total applications rejected"},
	)
	TeamsProvisioned = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hackmatch_teams_provisioned_total", Help: "Total teams provisioned"},
	)
)

func Register() {
	prometheus.MustRegister(
		ApplicationsSubmitted,
		ApplicationsAccepted,
		ApplicationsRejected,
		TeamsProvisioned,
	)
}
