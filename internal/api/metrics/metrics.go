// Package metrics defines and registers all custom Prometheus metrics for the
// back-office API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts authentication attempts by outcome.
// Label:
//   - result: "success", "invalid" (unknown user or bad password), or "locked"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountLockoutsTotal counts accounts crossing the failed-attempt threshold.
var AccountLockoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_lockouts_total",
		Help:      "Total number of accounts locked after repeated login failures.",
	},
)

// ── Housekeeping metrics ──────────────────────────────────────────────────────

// TasksCreatedTotal counts newly created housekeeping tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "housekeeping_tasks_created_total",
		Help:      "Total number of housekeeping tasks created.",
	},
)

// TransitionsTotal counts successful housekeeping status transitions.
// Labels:
//   - from: the status before the transition (e.g. "DIRTY")
//   - to: the status after the transition (e.g. "CLEANING")
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "housekeeping_transitions_total",
		Help:      "Total number of housekeeping status transitions applied.",
	},
	[]string{"from", "to"},
)

// TransitionsRejectedTotal counts transitions rejected by the lifecycle engine.
var TransitionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "housekeeping_transitions_rejected_total",
		Help:      "Total number of housekeeping status transitions rejected as illegal.",
	},
	[]string{"from", "to"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of entries waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// AuditWriteDuration measures how long persisting a single audit entry takes.
var AuditWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_write_duration_seconds",
		Help:      "Duration of a single audit entry write, from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)
