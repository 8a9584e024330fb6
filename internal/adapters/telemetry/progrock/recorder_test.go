package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/deparse/internal/adapters/telemetry/progrock"
	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Phases(t *testing.T) {
	recorder := progrock.NewRecorder(vprogrock.NewTape())

	ctx, load := recorder.Record(context.Background(), string(domain.PhaseLoad))
	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, load, fromCtx)

	load.Log(domain.LogLevelDebug, "read package.json")
	load.Complete(nil)

	_, tree := recorder.Record(ctx, string(domain.PhaseTree))
	tree.Cached()
	tree.Complete(nil)

	_, graph := recorder.Record(ctx, string(domain.PhaseGraph))
	graph.Complete(errors.New("boom"))

	assert.NoError(t, recorder.Close())
}

func TestRecorder_SetOutput(t *testing.T) {
	var out bytes.Buffer
	recorder := progrock.New()

	_, hidden := recorder.Record(context.Background(), "before output")
	hidden.Complete(nil)
	assert.Empty(t, out.String())

	recorder.SetOutput(&out)

	_, vertex := recorder.Record(context.Background(), "export out/tree.json")
	vertex.Cached()
	vertex.Log(domain.LogLevelInfo, "inputs unchanged")
	vertex.Complete(nil)
	require.NoError(t, recorder.Close())

	rendered := out.String()
	assert.Contains(t, rendered, "export out/tree.json")
	assert.Contains(t, rendered, "CACHED")
	assert.Contains(t, rendered, "[INFO] inputs unchanged")
	assert.NotContains(t, rendered, "before output")
}
