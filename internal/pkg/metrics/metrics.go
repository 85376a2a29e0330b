// Package metrics defines and registers all custom Prometheus metrics for the
// Unifit API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "unifit"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - actor_type: "usuario" or "admin"
//   - result: "success", "invalid_credentials", "blocked" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by actor type and result.",
	},
	[]string{"actor_type", "result"},
)

// TokenValidationsTotal counts bearer token checks done by the auth middleware.
// Label:
//   - result: "valid", "missing" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditAppendErrorsTotal counts activity records that could not be written.
// The triggering request still succeeds; this is the only trace besides the log.
// Label:
//   - action: the action code of the lost record (e.g. "LOGIN")
var AuditAppendErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_append_errors_total",
		Help:      "Total number of activity log appends that failed.",
	},
	[]string{"action"},
)

// AuditQueryDuration measures reads against the activity log.
// Label:
//   - op: "list", "count" or "stats"
var AuditQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_query_duration_seconds",
		Help:      "Duration of activity log queries.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Stats metrics ─────────────────────────────────────────────────────────────

// StatsCacheTotal counts dashboard cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of dashboard cache lookups, labelled by result.",
	},
	[]string{"result"},
)
