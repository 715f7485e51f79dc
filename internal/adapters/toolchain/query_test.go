package toolchain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/toolchain"
	"go.trai.ch/cairn/internal/core/domain"
)

func writeCompiler(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-gcc")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o700)) //nolint:gosec // test executable
	return path
}

func TestDumpMachineQuery_MachineName(t *testing.T) {
	compiler := writeCompiler(t, "#!/bin/sh\n[ \"$1\" = -dumpmachine ] && echo '  x86_64-w64-mingw32  '\n")

	machine, err := toolchain.DumpMachineQuery{}.MachineName(compiler)
	require.NoError(t, err)
	assert.Equal(t, "x86_64-w64-mingw32", machine)
}

func TestDumpMachineQuery_Failure(t *testing.T) {
	compiler := writeCompiler(t, "#!/bin/sh\necho 'unsupported option' >&2\nexit 1\n")

	_, err := toolchain.DumpMachineQuery{}.MachineName(compiler)
	require.ErrorIs(t, err, domain.ErrCompilerFailed)
	assert.Contains(t, err.Error(), "unsupported option")
}

func TestDumpMachineQuery_Missing(t *testing.T) {
	_, err := toolchain.DumpMachineQuery{}.MachineName(filepath.Join(t.TempDir(), "none"))
	require.ErrorIs(t, err, domain.ErrCompilerFailed)
}

func TestPathFinder(t *testing.T) {
	compiler := writeCompiler(t, "#!/bin/sh\n")
	t.Setenv("PATH", filepath.Dir(compiler))

	finder := toolchain.PathFinder{}
	assert.Equal(t, compiler, finder.FindExecutable("fake-gcc"))
	assert.Empty(t, finder.FindExecutable("not-there"))
	assert.True(t, finder.Exists(compiler))
	assert.False(t, finder.Exists(filepath.Dir(compiler)))
}
