// Package metrics defines and registers all custom Prometheus metrics for the
// gym dashboard gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register against the default Prometheus registry at package init;
// the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymdash"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts identity resolutions.
// Labels:
//   - result: "staff" (stage-1 success), "cliente" (roster fallback matched),
//     "invalid" (neither stage matched), "unreachable" (gym api down)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by resolution result.",
	},
	[]string{"result"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts requests to the gym API gateway.
// Labels:
//   - service: upstream service name ("users", "clientes", "inventario", "rrhh", "health")
//   - outcome: "ok", "error" (non-2xx), or "unreachable" (transport failure)
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests made to the gym API gateway.",
	},
	[]string{"service", "outcome"},
)

// UpstreamRequestDuration measures gym API round-trip times.
// Label:
//   - service: upstream service name
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the gym API gateway.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"service"},
)

// ── Visit metrics ─────────────────────────────────────────────────────────────

// VisitsRecordedTotal counts visits successfully recorded upstream.
var VisitsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visits_recorded_total",
		Help:      "Total number of client visits successfully recorded.",
	},
)

// VisitsErrorsTotal counts visit records that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "record_failed")
var VisitsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visits_errors_total",
		Help:      "Total number of client visits that failed processing.",
	},
	[]string{"reason"},
)

// VisitsQueueDepth tracks the current number of visits waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var VisitsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "visits_queue_depth",
		Help:      "Current number of visits pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// CheckoutsTotal counts simulated checkouts.
// Label:
//   - result: "completed" or "empty_cart"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of simulated store checkouts, by result.",
	},
	[]string{"result"},
)
