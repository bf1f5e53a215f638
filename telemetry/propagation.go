package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Event payloads carry trace context in a plain string map so that a
// receiver can parent its spans to the sender's trace across the event
// channel, the same way traceparent headers work over HTTP.

// Inject writes the current span's trace context into carrier. Call it
// before emitting an event.
func Inject(ctx context.Context, carrier map[string]string) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(carrier))
}

// Extract returns a context parented to the trace found in carrier, or ctx
// unchanged when the carrier holds none. Call it when handling an incoming
// event.
func Extract(ctx context.Context, carrier map[string]string) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(carrier))
}
