package forge

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this module's spans in whatever exporter an
// embedding application wires up; xylium-core is the only pack repo
// with an otel dependency, so request tracing is grounded there.
const tracerName = "github.com/watt-toolkit/forge"

// tracer returns the module's otel Tracer from the global
// TracerProvider. With no provider configured, otel's default is a
// no-op implementation, so spans cost nothing when tracing is unused.
func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// startRequestSpan opens a span around a single request's handler
// invocation (route lookup has already happened), annotated with the method, path, and connection
// correlation ID.
func startRequestSpan(ctx context.Context, req *RequestView) (context.Context, trace.Span) {
	return tracer().Start(ctx, "forge.request",
		trace.WithAttributes(
			attribute.String("http.method", req.Method.String()),
			attribute.String("http.path", req.Path),
			attribute.String("forge.conn_id", req.ConnID),
		),
	)
}

// endRequestSpan records the resolved status and closes the span.
func endRequestSpan(span trace.Span, status Status) {
	span.SetAttributes(attribute.Int("http.status_code", int(status.Code())))
	span.End()
}
