package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/adapters/fs"
)

func TestResolver_ResolveInputs(t *testing.T) {
	tmpDir := t.TempDir()
	for _, f := range []string{"b.cpp", "a.cpp", "c.h", "sub/d.cpp"} {
		writeFile(t, filepath.Join(tmpDir, f), "content")
	}

	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{
			name:   "glob matches are sorted",
			inputs: []string{"*.cpp"},
			want:   []string{"a.cpp", "b.cpp"},
		},
		{
			name:   "declared order is kept",
			inputs: []string{"c.h", "*.cpp"},
			want:   []string{"c.h", "a.cpp", "b.cpp"},
		},
		{
			name:   "duplicates are dropped",
			inputs: []string{"a.cpp", "*.cpp", "a.cpp"},
			want:   []string{"a.cpp", "b.cpp"},
		},
		{
			name:   "missing literal is kept",
			inputs: []string{"sub/d.cpp", "sub/missing.cpp"},
			want:   []string{"sub/d.cpp", "sub/missing.cpp"},
		},
		{
			name:   "glob without matches",
			inputs: []string{"*.nonexistent"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := fs.NewResolver().ResolveInputs(tt.inputs, tmpDir)
			require.NoError(t, err)

			want := make([]string, 0, len(tt.want))
			for _, w := range tt.want {
				want = append(want, filepath.Join(tmpDir, w))
			}
			assert.Equal(t, want, resolved)
		})
	}
}

func TestResolver_ResolveInputs_AbsolutePath(t *testing.T) {
	other := filepath.Join(t.TempDir(), "x.cpp")

	resolved, err := fs.NewResolver().ResolveInputs([]string{other}, "/somewhere/else")
	require.NoError(t, err)
	assert.Equal(t, []string{other}, resolved)
}

func TestResolver_ResolveInputs_GlobError(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"["}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}
