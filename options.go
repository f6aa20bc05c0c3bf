package sig

import (
	"log/slog"

	"github.com/AnatoleLucet/hellmut/internal"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a runtime created with New.
type Option func(*internal.Config)

// WithLogger sets the logger. Every runtime operation is logged at debug level.
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *internal.Config) {
		c.Logger = logger
	}
}

// WithMetrics registers the runtime's Prometheus metrics on registry.
// Each runtime needs its own registry.
func WithMetrics(registry prometheus.Registerer) Option {
	return func(c *internal.Config) {
		c.Registerer = registry
	}
}

// WithTracer records a span for every effect run and every propagation.
// Default: a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *internal.Config) {
		c.Tracer = tracer
	}
}

// WithoutAffinityCheck allows calls from any goroutine.
// The runtime is still not safe for concurrent use, callers must serialize access themselves.
func WithoutAffinityCheck() Option {
	return func(c *internal.Config) {
		c.DisableAffinity = true
	}
}
