package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cairn/internal/core/domain"
)

func TestIsValidMinGWMachine(t *testing.T) {
	assert.True(t, domain.IsValidMinGWMachine("x86_64-w64-mingw32"))
	assert.True(t, domain.IsValidMinGWMachine("amd64-mingw32msvc"))
	assert.False(t, domain.IsValidMinGWMachine("x86_64-pc-linux-gnu"))
	assert.False(t, domain.IsValidMinGWMachine(""))
}

func TestToolchainPrefix(t *testing.T) {
	assert.Equal(t, "x86_64-w64-mingw32-", domain.ToolchainPrefix("x86_64-w64-mingw32-gcc"))
	assert.Equal(t, "arm-none-eabi-", domain.ToolchainPrefix("arm-none-eabi-g++"))
	assert.Empty(t, domain.ToolchainPrefix("gcc"))
}

func TestToolchainTypeFromCompilerName(t *testing.T) {
	tests := []struct {
		compiler string
		want     []string
	}{
		{compiler: "gcc", want: []string{"gcc"}},
		{compiler: "g++", want: []string{"gcc"}},
		{compiler: "clang++", want: []string{"clang", "llvm", "gcc"}},
		{compiler: "x86_64-w64-mingw32-gcc", want: []string{"mingw", "gcc"}},
		{compiler: "cc", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.compiler, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ToolchainTypeFromCompilerName(tt.compiler))
		})
	}
}

func TestProfile(t *testing.T) {
	p := domain.NewProfile("x86_64-w64-mingw32")
	p.Set(domain.PropToolchainPrefix, "x86_64-w64-mingw32-")
	p.Set(domain.PropTargetPlatform, "windows")

	v, ok := p.Value(domain.PropTargetPlatform)
	assert.True(t, ok)
	assert.Equal(t, "windows", v)
	assert.Equal(t, []string{"cairn.targetPlatform", "cpp.toolchainPrefix"}, p.Keys())

	var empty domain.Profile
	empty.Set("k", "v")
	assert.Equal(t, []string{"k"}, empty.Keys())
}
