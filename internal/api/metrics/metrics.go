// Package metrics defines and registers all custom Prometheus metrics for the
// client portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init time; the router exposes
// them on /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// MessagesSentTotal counts persisted direct messages.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of direct messages sent.",
	},
)

// ProjectUpdatesTotal counts project save attempts.
// Label:
//   - result: "success" or "conflict" (version compare-and-swap failed)
var ProjectUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_updates_total",
		Help:      "Total number of project updates, labelled by result.",
	},
	[]string{"result"},
)

// SeedsTotal counts database seed runs.
var SeedsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seeds_total",
		Help:      "Total number of database seed runs.",
	},
)
