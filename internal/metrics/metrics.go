package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Draw Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelResult},
	)

	DrawWinnersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrawWinnersTotal,
			Help: HelpTextDrawWinnersTotal,
		},
	)

	DrawDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameDrawDuration,
			Help:    HelpTextDrawDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelResult},
	)

	DrawCandidatePool = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDrawCandidatePool,
			Help:    HelpTextDrawCandidatePool,
			Buckets: PoolSizeBuckets,
		},
	)
)

// Roster Metrics
var (
	ParticipantsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameParticipantsImported,
			Help: HelpTextParticipantsImported,
		},
	)

	ImportRejectedRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameImportRejectedRows,
			Help: HelpTextImportRejectedRows,
		},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExportsTotal,
			Help: HelpTextExportsTotal,
		},
		[]string{LabelType},
	)
)
