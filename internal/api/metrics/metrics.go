// Package metrics defines and registers all custom Prometheus metrics for
// the studio dashboard API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful self-service registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations.",
	},
)

// RegisterDirectorySize registers a gauge that samples the directory size
// on every scrape. Call once at startup with the store's Len.
func RegisterDirectorySize(size func() int) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "directory_size",
			Help:      "Current number of users in the directory.",
		},
		func() float64 { return float64(size()) },
	))
}

// EmployeeMutationsTotal counts directory mutations through the admin API.
// Label:
//   - op: "add", "update" or "delete"
var EmployeeMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_mutations_total",
		Help:      "Total number of employee mutations, by operation.",
	},
	[]string{"op"},
)

// ProjectTransitionsTotal counts project stage changes.
// Label:
//   - status: the stage the project moved to (e.g. "review")
var ProjectTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_transitions_total",
		Help:      "Total number of project status transitions, by target status.",
	},
	[]string{"status"},
)
