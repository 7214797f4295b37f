package services

import "github.com/prometheus/client_golang/prometheus"

// Submission results recorded by submissionsTotal.
const (
	resultAccepted = "accepted"
	resultInvalid  = "invalid"
	resultError    = "error"
)

var submissionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aquablue_submissions_total",
		Help: "Form submissions received by the backend, by form and result.",
	},
	[]string{"form", "result"},
)

func init() {
	prometheus.MustRegister(submissionsTotal)
}
