package wiring_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/app"
	_ "go.trai.ch/cairn/internal/wiring"
)

// TestGraftDependencies resolves the full graph for both binaries.
// graft.AssertDepsValid infers dependency IDs from the package of Dep[T], which
// does not fit nodes that share interfaces from the ports package.
func TestGraftDependencies(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CAIRN_BUILD_DIR", "")
	t.Setenv("CAIRN_STATE_DIR", "")
	graft.ResetDefaultCache()
	t.Cleanup(graft.ResetDefaultCache)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	assert.NotNil(t, components.Telemetry)
	assert.NotNil(t, components.Launcher)
	require.NotNil(t, components.Settings)
	assert.Equal(t, filepath.Join(dir, "build"), components.Settings.BuildDir)

	toolchains, _, err := graft.ExecuteFor[*app.ToolchainComponents](context.Background())
	require.NoError(t, err)
	assert.NotNil(t, toolchains.Prober)
	assert.NotNil(t, toolchains.Store)
	assert.NoError(t, components.Telemetry.Close())
}
