package internal

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type Config struct {
	Logger *slog.Logger

	// Registerer receives the runtime metrics. Nil disables metrics.
	Registerer prometheus.Registerer

	Tracer trace.Tracer

	// DisableAffinity turns off the owning-goroutine check.
	// The caller is then responsible for serializing every access.
	DisableAffinity bool
}

func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
		Tracer: noop.NewTracerProvider().Tracer(tracerName),
	}
}

// Runtime owns every signal value, effect closure and subscription.
// It is not safe for concurrent use: all calls must come from the goroutine that created it.
type Runtime struct {
	values  *ValueStore
	effects *EffectStore
	graph   *SubscriptionGraph
	tracker *Tracker
	spans   *SpanContext

	logger  *slog.Logger
	metrics *Metrics

	owner    int64
	affinity bool
}

func NewRuntime(cfg Config) *Runtime {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = noop.NewTracerProvider().Tracer(tracerName)
	}

	var metrics *Metrics
	if cfg.Registerer != nil {
		metrics = NewMetrics(cfg.Registerer)
	}

	return &Runtime{
		values:  NewValueStore(),
		effects: NewEffectStore(),
		graph:   NewSubscriptionGraph(),
		tracker: NewTracker(),
		spans:   NewSpanContext(cfg.Tracer),

		logger:  cfg.Logger.With("component", "sig"),
		metrics: metrics,

		owner:    goroutineID(),
		affinity: !cfg.DisableAffinity,
	}
}

// Running returns the effect currently executing, if any.
func (r *Runtime) Running() (EffectID, bool) {
	r.checkAffinity()
	return r.tracker.Running()
}

func (r *Runtime) Untrack(fn func()) {
	r.checkAffinity()
	r.tracker.RunUntracked(fn)
}

// Subscribers returns the effects re-run when signal is written.
func (r *Runtime) Subscribers(signal SignalID) []EffectID {
	r.checkAffinity()
	return r.graph.Subscribers(signal)
}

func (r *Runtime) Signals() int {
	return r.values.Len()
}

func (r *Runtime) Effects() int {
	return r.effects.Len()
}

func (r *Runtime) Subscriptions() int {
	return r.graph.Edges()
}

func (r *Runtime) String() string {
	return fmt.Sprintf("Runtime{signals: %d, effects: %d, subscriptions: %d}", r.Signals(), r.Effects(), r.Subscriptions())
}

func (r *Runtime) checkAffinity() {
	if !r.affinity {
		return
	}

	if gid := goroutineID(); gid != r.owner {
		panic(fmt.Errorf("%w: created on goroutine %d, called from goroutine %d", ErrWrongGoroutine, r.owner, gid))
	}
}
