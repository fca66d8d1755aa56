package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracer(t *testing.T) {
	// Given: an in-memory span recorder installed as the global provider
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	// When: a span is started from a component tracer
	_, span := Tracer("test").Start(context.Background(), "unit")
	span.End()

	// Then: the span is recorded under the component's scope
	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "unit", ended[0].Name())
	assert.Equal(t, "tictactoe/test", ended[0].InstrumentationScope().Name)
}

func TestSetup(t *testing.T) {
	// Given: the global provider before setup
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	// When: setup runs against a local endpoint (the exporter connects lazily)
	shutdown, err := Setup(context.Background(), "http://127.0.0.1:4318")

	// Then: a shutdown function is returned and the global provider is replaced
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	assert.NotSame(t, previous, otel.GetTracerProvider())
}
