package environment_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/environment"
	"go.trai.ch/cairn/internal/core/domain"
)

func join(parts ...string) string {
	return strings.Join(parts, string(os.PathListSeparator))
}

func TestFactory_RunEnvironment(t *testing.T) {
	buildDir := t.TempDir()
	exeDir := filepath.Join(buildDir, "bin")
	require.NoError(t, os.MkdirAll(exeDir, 0o750))

	factory := environment.NewFactoryWithBase([]string{"PATH=/usr/bin", "HOME=/home/me", "MODE=base"})
	product := &domain.ResolvedProduct{
		Name:           "app",
		ExecutablePath: filepath.Join(exeDir, "app"),
		Environment:    map[string]string{"MODE": "product"},
		PathPrepend:    []string{"/opt/lib"},
	}

	env, err := factory.RunEnvironment(product)
	require.NoError(t, err)

	assert.Equal(t, exeDir, env.WorkingDir)
	path, ok := env.Lookup("PATH")
	require.True(t, ok)
	assert.Equal(t, join(exeDir, "/opt/lib", "/usr/bin"), path)
	mode, _ := env.Lookup("MODE")
	assert.Equal(t, "product", mode)
	home, _ := env.Lookup("HOME")
	assert.Equal(t, "/home/me", home)
	assert.IsNonDecreasing(t, env.Env)
}

func TestFactory_RunEnvironment_WorkingDirOverride(t *testing.T) {
	workDir := t.TempDir()
	product := &domain.ResolvedProduct{
		Name:           "app",
		ExecutablePath: filepath.Join(t.TempDir(), "app"),
		WorkingDir:     workDir,
	}

	env, err := environment.NewFactoryWithBase(nil).RunEnvironment(product)
	require.NoError(t, err)
	assert.Equal(t, workDir, env.WorkingDir)
}

func TestFactory_RunEnvironment_MissingWorkingDir(t *testing.T) {
	product := &domain.ResolvedProduct{
		Name:           "app",
		ExecutablePath: filepath.Join(t.TempDir(), "not-built", "app"),
	}

	_, err := environment.NewFactoryWithBase(nil).RunEnvironment(product)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFactory_RunEnvironment_NotRunnable(t *testing.T) {
	product := &domain.ResolvedProduct{Name: "lib"}

	env, err := environment.NewFactoryWithBase([]string{"PATH=/usr/bin"}).RunEnvironment(product)
	require.NoError(t, err)
	assert.Empty(t, env.WorkingDir)
	assert.Equal(t, []string{"PATH=/usr/bin"}, env.Env)
}

func TestFactory_BuildEnvironment(t *testing.T) {
	factory := environment.NewFactoryWithBase([]string{"SECRET=system"})
	product := &domain.ResolvedProduct{
		Name:        "app",
		Environment: map[string]string{"B": "2", "A": "1"},
		PathPrepend: []string{"/x", "/y"},
	}

	assert.Equal(t, []string{"A=1", "B=2", "PATH=" + join("/x", "/y")}, factory.BuildEnvironment(product))
	assert.Empty(t, factory.BuildEnvironment(&domain.ResolvedProduct{Name: "plain"}))
}

func TestMerge(t *testing.T) {
	merged := environment.Merge(
		[]string{"PATH=/usr/bin", "KEEP=1", "OVER=old", "broken"},
		[]string{"PATH=/tools", "OVER=new", "NEW=yes"},
	)

	assert.Equal(t, []string{"KEEP=1", "NEW=yes", "OVER=new", "PATH=" + join("/tools", "/usr/bin")}, merged)
}
