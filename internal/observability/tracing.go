package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationPrefix namespaces every tracer created by this module.
const instrumentationPrefix = "nexus/"

// Tracer returns a tracer for component from the global provider. Until a
// provider is installed with otel.SetTracerProvider the tracer is a no-op.
func Tracer(component string) trace.Tracer {
	return otel.Tracer(instrumentationPrefix + component)
}
