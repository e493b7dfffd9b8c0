// Package metrics provides Prometheus metrics for the mastery tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the tracker.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Collection metrics
	skillsTracked prometheus.Gauge
	skillsAdded   *prometheus.CounterVec

	// Mutation metrics
	progressUpdates prometheus.Counter
	practiceHours   prometheus.Counter
	applications    prometheus.Counter

	// Persistence metrics
	saves        prometheus.Counter
	loads        prometheus.Counter
	loadFailures prometheus.Counter
	saveDuration prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go runtime metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mastery",
		subsystem:        "tracker",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.skillsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skills_tracked",
		Help:      "Current number of skills in the collection",
	})

	m.skillsAdded = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "skills_added_total",
			Help:      "Total number of skills added, by kind",
		},
		[]string{"kind"},
	)

	m.progressUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "progress_updates_total",
		Help:      "Total number of progress updates",
	})

	m.practiceHours = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "practice_hours_total",
		Help:      "Total practice hours logged across all skills",
	})

	m.applications = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "applications_total",
		Help:      "Total real-world applications logged for soft skills",
	})

	m.saves = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "saves_total",
		Help:      "Total number of successful saves to the storage file",
	})

	m.loads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "loads_total",
		Help:      "Total number of successful loads from the storage file",
	})

	m.loadFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_failures_total",
		Help:      "Total number of failed loads (corrupt data or I/O)",
	})

	m.saveDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "save_duration_seconds",
		Help:      "Histogram of save durations in seconds",
		Buckets:   m.histogramBuckets,
	})
}

// GetRegistry returns the registry backing the global manager, for serving
// via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers on the global manager.

// UpdateSkillsTracked sets the collection size gauge.
func UpdateSkillsTracked(count int) {
	if globalManager.enabled {
		globalManager.skillsTracked.Set(float64(count))
	}
}

// RecordSkillAdded counts a newly added skill by kind.
func RecordSkillAdded(kind string) {
	if globalManager.enabled {
		globalManager.skillsAdded.WithLabelValues(kind).Inc()
	}
}

// RecordProgressUpdate counts one progress update.
func RecordProgressUpdate() {
	if globalManager.enabled {
		globalManager.progressUpdates.Inc()
	}
}

// RecordPracticeHours accumulates logged practice hours.
func RecordPracticeHours(hours float64) {
	if globalManager.enabled {
		globalManager.practiceHours.Add(hours)
	}
}

// RecordApplication counts one real-world application.
func RecordApplication() {
	if globalManager.enabled {
		globalManager.applications.Inc()
	}
}

// RecordSave counts one successful save.
func RecordSave() {
	if globalManager.enabled {
		globalManager.saves.Inc()
	}
}

// RecordLoad counts one successful load.
func RecordLoad() {
	if globalManager.enabled {
		globalManager.loads.Inc()
	}
}

// RecordLoadFailure counts one failed load.
func RecordLoadFailure() {
	if globalManager.enabled {
		globalManager.loadFailures.Inc()
	}
}

// ObserveSaveDuration records the duration of one save in seconds.
func ObserveSaveDuration(seconds float64) {
	if globalManager.enabled {
		globalManager.saveDuration.Observe(seconds)
	}
}
