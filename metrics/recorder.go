// Package metrics exports the events of a persistent object cache
// as Prometheus metrics.
package metrics

import (
	"github.com/djdv/go-persistent"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts cache events. It is a [persistent.Stats]
// to be passed to [persistent.WithStats], and a
// [prometheus.Collector] to be registered.
// Unlike the cache itself, a Recorder is safe for concurrent use.
type Recorder struct {
	live, bytes prometheus.Gauge
	activated,
	activationFailed,
	registered,
	evicted,
	invalidated prometheus.Counter
}

const subsystem = "persistent_cache"

var (
	_ persistent.Stats     = (*Recorder)(nil)
	_ prometheus.Collector = (*Recorder)(nil)
)

// NewRecorder creates a Recorder whose metrics are named
// namespace_persistent_cache_* and carry labels.
func NewRecorder(namespace string, labels prometheus.Labels) *Recorder {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}
	return &Recorder{
		activated:        counter("activations_total", "Ghosts whose state was loaded."),
		activationFailed: counter("activation_failures_total", "Ghosts whose state failed to load."),
		registered:       counter("registrations_total", "Objects registered with their jar as changed."),
		evicted:          counter("evictions_total", "Objects ghosted by sweeps."),
		invalidated:      counter("invalidations_total", "Objects and classes invalidated."),
		live:             gauge("live_objects", "Objects in the ring."),
		bytes:            gauge("estimated_bytes", "Estimated size of the cached objects."),
	}
}

func (r *Recorder) Activated()        { r.activated.Inc() }
func (r *Recorder) ActivationFailed() { r.activationFailed.Inc() }
func (r *Recorder) Registered()       { r.registered.Inc() }
func (r *Recorder) Evicted(n int)     { r.evicted.Add(float64(n)) }
func (r *Recorder) Invalidated()      { r.invalidated.Inc() }

func (r *Recorder) Resized(nonGhost int, bytes int64) {
	r.live.Set(float64(nonGhost))
	r.bytes.Set(float64(bytes))
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.activated, r.activationFailed, r.registered,
		r.evicted, r.invalidated, r.live, r.bytes,
	}
}

// Describe implements [prometheus.Collector].
func (r *Recorder) Describe(descs chan<- *prometheus.Desc) {
	for _, collector := range r.collectors() {
		collector.Describe(descs)
	}
}

// Collect implements [prometheus.Collector].
func (r *Recorder) Collect(metrics chan<- prometheus.Metric) {
	for _, collector := range r.collectors() {
		collector.Collect(metrics)
	}
}
