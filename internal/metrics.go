package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "sig"

// Metrics counts runtime activity. A nil *Metrics records nothing.
type Metrics struct {
	signalsCreated prometheus.Counter
	effectsCreated prometheus.Counter
	effectRuns     prometheus.Counter
	signalReads    prometheus.Counter
	signalWrites   prometheus.Counter
	propagations   prometheus.Counter
	subscriptions  prometheus.Gauge
}

// NewMetrics registers the runtime metrics on reg.
// It panics if reg already holds them, so give each runtime its own registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		})
	}

	return &Metrics{
		signalsCreated: counter("signals_created_total", "Signals created."),
		effectsCreated: counter("effects_created_total", "Effects created."),
		effectRuns:     counter("effect_runs_total", "Effect runs, initial runs included."),
		signalReads:    counter("signal_reads_total", "Signal reads (Get, WithRef, WithMut)."),
		signalWrites:   counter("signal_writes_total", "Signal writes (Set, WithMut)."),
		propagations:   counter("propagations_total", "Writes to signals with at least one subscriber."),
		subscriptions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "subscriptions",
			Help:      "Signal to effect subscriptions currently recorded.",
		}),
	}
}

func (m *Metrics) SignalCreated() {
	if m != nil {
		m.signalsCreated.Inc()
	}
}

func (m *Metrics) EffectCreated() {
	if m != nil {
		m.effectsCreated.Inc()
	}
}

func (m *Metrics) EffectRun() {
	if m != nil {
		m.effectRuns.Inc()
	}
}

func (m *Metrics) SignalRead() {
	if m != nil {
		m.signalReads.Inc()
	}
}

func (m *Metrics) SignalWrite() {
	if m != nil {
		m.signalWrites.Inc()
	}
}

func (m *Metrics) Propagated() {
	if m != nil {
		m.propagations.Inc()
	}
}

func (m *Metrics) Subscribed() {
	if m != nil {
		m.subscriptions.Inc()
	}
}
