package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/ai-evo-agents/evo-common/telemetry"
)

func TestInjectExtractRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, err := trace.TraceIDFromHex("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("0123456789abcdef")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	carrier := map[string]string{}
	telemetry.Inject(ctx, carrier)
	require.Contains(t, carrier, "traceparent")

	extracted := trace.SpanContextFromContext(telemetry.Extract(context.Background(), carrier))
	assert.Equal(t, traceID, extracted.TraceID())
	assert.Equal(t, spanID, extracted.SpanID())
	assert.True(t, extracted.IsRemote())
}

func TestExtractEmptyCarrierIsNoop(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	ctx := telemetry.Extract(context.Background(), map[string]string{})
	assert.False(t, trace.SpanContextFromContext(ctx).IsValid())
}

func TestInitDisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := telemetry.Init(context.Background(), "", "test-agent", "0.0.0", false)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestMeterUsableWhenDisabled(t *testing.T) {
	shutdown, err := telemetry.Init(context.Background(), "", "test-agent", "0.0.0", false)
	require.NoError(t, err)
	defer shutdown(context.Background())

	counter, err := telemetry.Meter("test-agent").Int64Counter("tasks_created")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)
}
