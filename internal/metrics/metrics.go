package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every catalog metric. It is separate from the default registry so a
// batch run can dump exactly these series to a textfile.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Resolution Metrics
var (
	RecordsResolved = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecordsResolved,
			Help: HelpTextRecordsResolved,
		},
	)

	RecordsSkipped = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsSkipped,
			Help: HelpTextRecordsSkipped,
		},
		[]string{LabelReason},
	)

	SubtreesDowngraded = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSubtreesDowngraded,
			Help: HelpTextSubtreesDowngraded,
		},
		[]string{LabelComponent},
	)

	ResolveDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameResolveDuration,
			Help:    HelpTextResolveDuration,
			Buckets: ResolveDurationBuckets,
		},
	)
)

// Export Metrics
var (
	ItemsExported = factory.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsExported,
			Help: HelpTextItemsExported,
		},
	)

	TextureJobs = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTextureJobs,
			Help: HelpTextTextureJobs,
		},
		[]string{LabelKind},
	)

	ExportFailures = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExportFailures,
			Help: HelpTextExportFailures,
		},
		[]string{LabelStage},
	)
)

// WriteTextfile dumps the catalog registry in the Prometheus text format, for the
// node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
