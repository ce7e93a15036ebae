// Package metrics defines and registers the custom Prometheus metrics of the
// rental core. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ── Repository metrics ───────────────────────────────────────────────────────

// CacheLookupsTotal counts local cache lookups made by repositories.
// Labels:
//   - entity: "account", "renter" or "membership"
//   - result: "hit", "miss" or "fault"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of local cache lookups, by entity and result.",
	},
	[]string{"entity", "result"},
)

// CacheFaultsTotal counts cache-layer faults that were degraded to the remote path.
// Labels:
//   - entity: entity name
//   - op: "get", "cache" or "clear"
var CacheFaultsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_faults_total",
		Help:      "Total number of local cache faults absorbed by repositories.",
	},
	[]string{"entity", "op"},
)

// RemoteCallsTotal counts calls to the remote data source.
// Labels:
//   - entity: entity name
//   - op: "get", "create" or "update"
//   - outcome: "ok" or "error"
var RemoteCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_calls_total",
		Help:      "Total number of remote data source calls, by entity, operation and outcome.",
	},
	[]string{"entity", "op", "outcome"},
)

// RemoteCallDuration measures remote data source latency.
var RemoteCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_call_duration_seconds",
		Help:      "Duration of remote data source calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity", "op"},
)

// ── Wire metrics ─────────────────────────────────────────────────────────────

// WireDefaultedFieldsTotal counts wire fields replaced by a default on decode.
var WireDefaultedFieldsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wire_defaulted_fields_total",
		Help:      "Total number of wire fields that were missing or invalid and defaulted.",
	},
	[]string{"entity", "field"},
)

// ── Write queue metrics ──────────────────────────────────────────────────────

// WriteQueueDepth tracks pending writes per sequencer worker.
// Label:
//   - worker_id: numeric worker index
var WriteQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "write_queue_depth",
		Help:      "Current number of writes pending in each sequencer worker channel.",
	},
	[]string{"worker_id"},
)

// ── Rental metrics ───────────────────────────────────────────────────────────

// RentalQuotesTotal counts quotes, by discount tier, or "rejected" when the
// duration failed validation.
var RentalQuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rental_quotes_total",
		Help:      "Total number of rental quotes, by discount tier.",
	},
	[]string{"tier"},
)
