package internal

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/AnatoleLucet/hellmut"

// SpanContext keeps the context of the innermost traced operation so nested
// effect runs and propagations become child spans of whatever triggered them.
type SpanContext struct {
	tracer trace.Tracer

	current context.Context
}

func NewSpanContext(tracer trace.Tracer) *SpanContext {
	return &SpanContext{
		tracer:  tracer,
		current: context.Background(),
	}
}

// Run wraps fn in a span. A panic in fn marks the span as failed and keeps unwinding.
func (c *SpanContext) Run(name string, attrs []attribute.KeyValue, fn func()) {
	prev := c.current
	ctx, span := c.tracer.Start(prev, name, trace.WithAttributes(attrs...))
	c.current = ctx

	defer func() {
		c.current = prev

		if r := recover(); r != nil {
			span.SetStatus(codes.Error, fmt.Sprint(r))
			span.End()
			panic(r)
		}

		span.End()
	}()

	fn()
}

func (c *SpanContext) Context() context.Context {
	return c.current
}
