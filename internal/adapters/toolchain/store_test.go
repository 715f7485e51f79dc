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

func TestFileStore_SaveMerges(t *testing.T) {
	store := toolchain.NewFileStore(filepath.Join(t.TempDir(), ".cairn", "profiles.yaml"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	first := domain.NewProfile("mingw")
	first.Toolchain = []string{"mingw", "gcc"}
	first.Set(domain.PropTargetPlatform, "windows")
	other := domain.NewProfile("arm")
	other.Toolchain = []string{"gcc"}
	require.NoError(t, store.Save([]*domain.Profile{first, other}))

	replacement := domain.NewProfile("mingw")
	replacement.Toolchain = []string{"mingw", "gcc"}
	replacement.Set(domain.PropToolchainPrefix, "x86_64-w64-mingw32-")
	require.NoError(t, store.Save([]*domain.Profile{replacement}))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "arm", loaded[0].Name)
	assert.Equal(t, "mingw", loaded[1].Name)
	assert.Equal(t, map[string]string{domain.PropToolchainPrefix: "x86_64-w64-mingw32-"}, loaded[1].Properties)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: {"), 0o600))

	_, err := toolchain.NewFileStore(path).Load()
	require.ErrorIs(t, err, domain.ErrStoreReadFailed)
}
