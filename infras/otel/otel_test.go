package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tasknest/config"
	"tasknest/infras/otel"
	"tasknest/shared/failure"
)

func TestNewScopeRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	tracer := otel.NewWithProvider(provider)

	_, scope := tracer.NewScope(context.Background(), "service", "service.ProjectCreate")
	scope.SetAttributes(map[string]any{
		"owner":  "user-1",
		"done":   true,
		"count":  2,
		"titles": []string{"Home"},
		"ratio":  0.5,
	})
	scope.AddEvent("checked duplicate")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.ProjectCreate", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "boom", span.Status().Description)
	assert.Len(t, span.Attributes(), 5)
	assert.Len(t, span.Events(), 2)
}

func TestTraceErrorClientFailure(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, scope := otel.NewWithProvider(provider).NewScope(context.Background(), "service", "service.project.Get")
	scope.TraceError(failure.NotFound("Project not found."))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "client failure", spans[0].Events()[0].Name)
}

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "tasknest"

	tracer, cleanup, err := otel.New(cfg)
	require.NoError(t, err)
	require.NotNil(t, tracer)

	defer cleanup()

	_, scope := tracer.NewScope(context.Background(), "handler", "handler.Health")
	scope.End()
}
