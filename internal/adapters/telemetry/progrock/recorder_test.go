package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/telemetry/progrock"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
)

func TestRecorder_RecordsVertices(t *testing.T) {
	recorder := progrock.New()

	ctx, build := recorder.Record(context.Background(), "build")
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, build, fromCtx)

	_, product := recorder.Record(ctx, "demo@default/app", ports.WithInternal())
	_, err := product.Stdout().Write([]byte("compiling main.cpp\n"))
	require.NoError(t, err)
	product.Log(domain.LogLevelWarn, "unused variable")
	product.Log(domain.LogLevelDebug, "dropped")
	product.Complete(errors.New("link failed"))

	_, again := recorder.Record(ctx, "demo@default/app")
	again.Cached()
	again.Complete(nil)

	build.Complete(nil)
	assert.NoError(t, recorder.Close())
}
