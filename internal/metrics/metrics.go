// Package metrics exposes Prometheus instruments for sync activity.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/wardrobe-backend/internal/domain"
)

const (
	namespace = "wardrobe"
	subsystem = "sync"
)

// Metrics holds the sync instruments registered on one registerer.
type Metrics struct {
	syncRuns        *prometheus.CounterVec
	syncDuration    *prometheus.HistogramVec
	uploadedRecords *prometheus.CounterVec
	uploadBatches   *prometheus.CounterVec
	remoteChanges   *prometheus.CounterVec
	localWrites     *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
}

// New registers the instruments on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		syncRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total number of collection syncs by final state",
			},
			[]string{"collection", "state"},
		),
		syncDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_duration_seconds",
				Help:      "Duration of a full collection sync in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"collection"},
		),
		uploadedRecords: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "uploaded_records_total",
				Help:      "Total number of records accepted by the remote store",
			},
			[]string{"collection"},
		),
		uploadBatches: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "upload_batches_total",
				Help:      "Total number of upload batches by outcome",
			},
			[]string{"collection", "outcome"},
		),
		remoteChanges: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "remote_changes_total",
				Help:      "Total number of remote change notifications applied locally",
			},
			[]string{"collection", "op"},
		),
		localWrites: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "local_writes_total",
				Help:      "Total number of local snapshot writes",
			},
			[]string{"collection"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of local API requests by method and status",
			},
			[]string{"method", "status"},
		),
	}
}

func (m *Metrics) SyncCompleted(c domain.Collection, state domain.SyncState, d time.Duration) {
	m.syncRuns.WithLabelValues(c.String(), state.String()).Inc()
	m.syncDuration.WithLabelValues(c.String()).Observe(d.Seconds())
}

func (m *Metrics) UploadBatch(c domain.Collection, records int, err error) {
	if err != nil {
		m.uploadBatches.WithLabelValues(c.String(), "failed").Inc()
		return
	}
	m.uploadBatches.WithLabelValues(c.String(), "ok").Inc()
	m.uploadedRecords.WithLabelValues(c.String()).Add(float64(records))
}

func (m *Metrics) RemoteChangeApplied(c domain.Collection, op domain.ChangeType) {
	m.remoteChanges.WithLabelValues(c.String(), op.String()).Inc()
}

func (m *Metrics) LocalWrite(c domain.Collection) {
	m.localWrites.WithLabelValues(c.String()).Inc()
}

// HTTPRequest counts one served API request.
func (m *Metrics) HTTPRequest(method string, status int) {
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
