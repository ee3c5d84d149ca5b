package observes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSentryDisabled(t *testing.T) {
	flush, err := NewSentry(&SentryOptions{})
	require.NoError(t, err)
	require.NotNil(t, flush)
	flush()

	// no client: must not panic
	CaptureError(context.Background(), errors.New("boom"), "trace-1")
}

func TestNewTracerDisabled(t *testing.T) {
	shutdown, err := NewTracer(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer().Start(context.Background(), "noop")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())
}
