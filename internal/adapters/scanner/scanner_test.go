package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/cairn/internal/adapters/fs"
	"go.trai.ch/cairn/internal/adapters/scanner"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports/mocks"
	"go.trai.ch/cairn/internal/engine/scancache"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newHasher(t *testing.T) *fs.Hasher {
	t.Helper()
	hasher, err := fs.NewHasher(16)
	require.NoError(t, err)
	return hasher
}

func newScanner(t *testing.T, cache *scancache.Cache) *scanner.IncludeScanner {
	t.Helper()
	return scanner.New(cache, scancache.NewFingerprints(), newHasher(t))
}

func slashed(parts ...string) string {
	return filepath.ToSlash(filepath.Join(parts...))
}

func TestIncludeScanner_Scan(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "main.cpp")
	writeFile(t, src, `#include "local.h"
  #  include "util.h"
#include <vector>
#include "missing.h"
#include "local.h"
// #include is only matched at line start
int main() { return 0; }
`)
	writeFile(t, filepath.Join(dir, "src", "local.h"), "")
	writeFile(t, filepath.Join(dir, "include", "util.h"), "")

	cache := scancache.New()
	result, err := newScanner(t, cache).Scan(context.Background(), src, []string{filepath.Join(dir, "include")})
	require.NoError(t, err)

	require.True(t, result.Valid)
	require.Len(t, result.Dependencies, 4)
	assert.Equal(t, slashed(dir, "src", "local.h"), result.Dependencies[0].FilePath())
	assert.True(t, result.Dependencies[0].IsLocal())
	assert.Equal(t, slashed(dir, "include", "util.h"), result.Dependencies[1].FilePath())
	assert.True(t, result.Dependencies[1].IsLocal())
	assert.Equal(t, "vector", result.Dependencies[2].FilePath())
	assert.False(t, result.Dependencies[2].IsLocal())
	assert.Equal(t, "missing.h", result.Dependencies[3].FilePath())
	assert.False(t, result.Dependencies[3].IsLocal())

	assert.True(t, cache.Value(src).Equal(domain.NewScanResult([]domain.DependencyEntry{
		domain.NewDependencyEntry("local.h", true),
		domain.NewDependencyEntry("util.h", true),
		domain.NewDependencyEntry("vector", false),
		domain.NewDependencyEntry("missing.h", true),
	})))
}

func TestIncludeScanner_ResolvesPerIncludePaths(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "common.c")
	writeFile(t, src, `#include "config.h"`)
	writeFile(t, filepath.Join(dir, "incA", "config.h"), "")
	writeFile(t, filepath.Join(dir, "incB", "config.h"), "")

	s := newScanner(t, scancache.New())
	productA, err := s.Scan(context.Background(), src, []string{filepath.Join(dir, "incA")})
	require.NoError(t, err)
	productB, err := s.Scan(context.Background(), src, []string{filepath.Join(dir, "incB")})
	require.NoError(t, err)

	require.Len(t, productA.Dependencies, 1)
	require.Len(t, productB.Dependencies, 1)
	assert.Equal(t, slashed(dir, "incA", "config.h"), productA.Dependencies[0].FilePath())
	assert.Equal(t, slashed(dir, "incB", "config.h"), productB.Dependencies[0].FilePath())
}

func TestIncludeScanner_ResolvesHeaderCreatedLater(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.c")
	writeFile(t, src, `#include "gen.h"`)

	s := newScanner(t, scancache.New())
	before, err := s.Scan(context.Background(), src, nil)
	require.NoError(t, err)
	require.Len(t, before.Dependencies, 1)
	assert.False(t, before.Dependencies[0].IsLocal())
	assert.Equal(t, "gen.h", before.Dependencies[0].FilePath())

	writeFile(t, filepath.Join(dir, "gen.h"), "")
	after, err := s.Scan(context.Background(), src, nil)
	require.NoError(t, err)
	require.Len(t, after.Dependencies, 1)
	assert.True(t, after.Dependencies[0].IsLocal())
	assert.Equal(t, slashed(dir, "gen.h"), after.Dependencies[0].FilePath())
}

func TestIncludeScanner_ReusesFingerprintedResult(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.cpp")
	writeFile(t, src, `#include <string>`)

	hasher := newHasher(t)
	hash, err := hasher.ComputeFileHash(src)
	require.NoError(t, err)

	cache := scancache.New()
	fingerprints := scancache.NewFingerprints()
	restored := domain.NewScanResult([]domain.DependencyEntry{domain.NewDependencyEntry("restored.h", false)})
	cache.Insert(src, restored)
	fingerprints.Remember(src, hash)

	result, err := scanner.New(cache, fingerprints, hasher).Scan(context.Background(), src, nil)
	require.NoError(t, err)
	assert.True(t, result.Equal(restored))
}

func TestIncludeScanner_RescansUnfingerprintedResult(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.cpp")
	writeFile(t, src, `#include <string>`)

	cache := scancache.New()
	cache.Insert(src, domain.NewScanResult([]domain.DependencyEntry{domain.NewDependencyEntry("stale.h", false)}))

	result, err := newScanner(t, cache).Scan(context.Background(), src, nil)
	require.NoError(t, err)
	require.Len(t, result.Dependencies, 1)
	assert.Equal(t, "string", result.Dependencies[0].FilePath())
}

func TestIncludeScanner_RescansChangedFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.cpp")
	writeFile(t, src, `#include <string>`)

	s := newScanner(t, scancache.New())
	first, err := s.Scan(context.Background(), src, nil)
	require.NoError(t, err)
	require.Len(t, first.Dependencies, 1)

	writeFile(t, src, "#include <string>\n#include <map>\n")
	second, err := s.Scan(context.Background(), src, nil)
	require.NoError(t, err)
	assert.Len(t, second.Dependencies, 2)
}

func TestIncludeScanner_MissingFile(t *testing.T) {
	cache := scancache.New()
	path := filepath.Join(t.TempDir(), "gone.cpp")

	_, err := newScanner(t, cache).Scan(context.Background(), path, nil)
	require.ErrorIs(t, err, domain.ErrScanFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, cache.Value(path).Valid)
}

func TestIncludeScanner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newScanner(t, scancache.New()).Scan(ctx, "/any.cpp", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestIncludeScanner_UsesCacheInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockScanResultCache(ctrl)
	fingerprints := mocks.NewMockScanFingerprints(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	src := filepath.Join(t.TempDir(), "a.cpp")
	writeFile(t, src, `#include <x>`)

	hasher.EXPECT().ComputeFileHash(src).Return(uint64(1), nil)
	cache.EXPECT().Value(src).Return(domain.ScanResult{})
	fingerprints.EXPECT().Fingerprint(src).Return(uint64(0), false)
	cache.EXPECT().Insert(src, gomock.Any()).Do(func(_ string, result domain.ScanResult) {
		assert.True(t, result.Valid)
		assert.Len(t, result.Dependencies, 1)
	})
	fingerprints.EXPECT().Remember(src, uint64(1))

	_, err := scanner.New(cache, fingerprints, hasher).Scan(context.Background(), src, nil)
	require.NoError(t, err)
}
