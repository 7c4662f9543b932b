package scene

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/forge3d/forge/pkg/signal"
)

// CollectorConfig configures the Prometheus scene collector.
type CollectorConfig struct {
	// Namespace is the metrics namespace (default: "forge").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels
}

// CollectorOption configures the Prometheus scene collector.
type CollectorOption func(*CollectorConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) CollectorOption {
	return func(c *CollectorConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) CollectorOption {
	return func(c *CollectorConfig) {
		c.ConstLabels = labels
	}
}

// Collector is a prometheus.Collector exposing scene gauges: the number of
// live entities in the scene and the engine-wide count of attached
// subscriptions. Register it with a prometheus.Registerer to scrape.
type Collector struct {
	scene *Scene

	entities      *prometheus.Desc
	subscriptions *prometheus.Desc
}

// NewCollector creates a collector over the given scene.
func NewCollector(s *Scene, opts ...CollectorOption) *Collector {
	cfg := CollectorConfig{Namespace: "forge"}
	for _, opt := range opts {
		opt(&cfg)
	}

	labels := prometheus.Labels{"scene": s.Name()}
	for k, v := range cfg.ConstLabels {
		labels[k] = v
	}

	return &Collector{
		scene: s,
		entities: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, "scene", "entities"),
			"Number of live entities in the scene.",
			nil, labels,
		),
		subscriptions: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, "scene", "subscriptions"),
			"Number of attached signal subscriptions across the engine.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entities
	ch <- c.subscriptions
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.entities, prometheus.GaugeValue,
		float64(c.scene.Len()))
	ch <- prometheus.MustNewConstMetric(c.subscriptions, prometheus.GaugeValue,
		float64(signal.LiveSubscriptions()))
}

var _ prometheus.Collector = (*Collector)(nil)
