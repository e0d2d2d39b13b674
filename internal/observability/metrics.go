// Package observability holds the Prometheus metrics recorded while
// assembling and querying wing trees.
package observability

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexiusacademia/golift/internal/wing"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles golift's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	SegmentsAttached   *prometheus.CounterVec
	AttachFailures     *prometheus.CounterVec
	CoefficientQueries *prometheus.CounterVec
	BuildDuration      prometheus.Histogram
	TreeSegments       prometheus.Gauge
}

// NewCollector registers golift metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	attached, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "golift_segments_attached_total",
		Help: "Wing segments attached to a tree, labeled by side.",
	}, []string{"side"}), "golift_segments_attached_total")
	if err != nil {
		return nil, err
	}

	failures, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "golift_attach_failures_total",
		Help: "Rejected segment attachments, labeled by reason.",
	}, []string{"reason"}), "golift_attach_failures_total")
	if err != nil {
		return nil, err
	}

	queries, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "golift_coefficient_queries_total",
		Help: "Section coefficient evaluations, labeled by coefficient.",
	}, []string{"kind"}), "golift_coefficient_queries_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "golift_build_duration_seconds",
		Help:    "Time to assemble a wing tree from its definition.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}), "golift_build_duration_seconds")
	if err != nil {
		return nil, err
	}

	segments, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "golift_tree_segments",
		Help: "Segments in the most recently built tree, origin excluded.",
	}), "golift_tree_segments")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:           gatherer,
		SegmentsAttached:   attached,
		AttachFailures:     failures,
		CoefficientQueries: queries,
		BuildDuration:      duration,
		TreeSegments:       segments,
	}, nil
}

// ObserveAttach records the outcome of one attach call.
func (c *Collector) ObserveAttach(side wing.Side, err error) {
	if c == nil {
		return
	}
	if err == nil {
		c.SegmentsAttached.WithLabelValues(side.String()).Inc()
		return
	}
	c.AttachFailures.WithLabelValues(FailureReason(err)).Inc()
}

// ObserveCoefficient counts one coefficient query.
func (c *Collector) ObserveCoefficient(kind wing.CoefficientKind) {
	if c == nil {
		return
	}
	c.CoefficientQueries.WithLabelValues(kind.String()).Inc()
}

// ObserveBuild records the build time and resulting tree size.
func (c *Collector) ObserveBuild(d time.Duration, segments int) {
	if c == nil {
		return
	}
	c.BuildDuration.Observe(d.Seconds())
	c.TreeSegments.Set(float64(segments))
}

// WriteTextfile writes every gathered metric to path in the Prometheus text
// exposition format, for pickup by a node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	g, ok := c.gatherer.(*prometheus.Registry)
	if !ok {
		return fmt.Errorf("metrics textfile needs a dedicated registry")
	}
	return prometheus.WriteToTextfile(path, g)
}

// FailureReason maps an attach error to a metric label.
func FailureReason(err error) string {
	var ie *wing.IntegrationError
	switch {
	case errors.Is(err, wing.ErrAttachment):
		return "parent_not_found"
	case errors.Is(err, wing.ErrConfiguration):
		return "configuration"
	case errors.As(err, &ie):
		return "integration"
	default:
		return "other"
	}
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
