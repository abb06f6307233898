package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triqui/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	ctx := context.Background()

	// When: telemetry is disabled
	shutdown, err := Setup(ctx, config.Telemetry{Enabled: false})

	// Then: the shutdown func is a no-op and spans are not recorded
	require.NoError(t, err)
	require.NoError(t, shutdown(ctx))

	_, span := Tracer("test").Start(ctx, "noop")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.False(t, span.IsRecording())
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	defer span.End()

	assert.False(t, span.IsRecording())
}
