package domain

import (
	"maps"
	"slices"
	"strings"
)

// Toolchain type names.
const (
	ToolchainGCC   = "gcc"
	ToolchainClang = "clang"
	ToolchainLLVM  = "llvm"
	ToolchainMinGW = "mingw"
)

// Profile property keys written by the toolchain probe.
const (
	PropTargetPlatform   = "cairn.targetPlatform"
	PropToolchain        = "cairn.toolchain"
	PropToolchainPrefix  = "cpp.toolchainPrefix"
	PropToolchainInstall = "cpp.toolchainInstallPath"
	PropArchiverPath     = "cpp.archiverPath"
	PropAssemblerPath    = "cpp.assemblerPath"
	PropNMPath           = "cpp.nmPath"
	PropObjcopyPath      = "cpp.objcopyPath"
	PropDsymutilPath     = "cpp.dsymutilPath"
	PropStripPath        = "cpp.stripPath"
)

// Profile is a named set of toolchain properties.
type Profile struct {
	Name       string            `yaml:"name"`
	Toolchain  []string          `yaml:"toolchain"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// NewProfile returns an empty profile.
func NewProfile(name string) *Profile {
	return &Profile{Name: name, Properties: make(map[string]string)}
}

// Set stores a property value.
func (p *Profile) Set(key, value string) {
	if p.Properties == nil {
		p.Properties = make(map[string]string)
	}
	p.Properties[key] = value
}

// Value returns a property value.
func (p *Profile) Value(key string) (string, bool) {
	v, ok := p.Properties[key]
	return v, ok
}

// Keys returns the property keys in sorted order.
func (p *Profile) Keys() []string {
	return slices.Sorted(maps.Keys(p.Properties))
}

// ValidMinGWMachines lists the `gcc -dumpmachine` outputs accepted for MinGW toolchains.
func ValidMinGWMachines() []string {
	return []string{
		"mingw32",
		"mingw64",
		"i686-w64-mingw32",
		"x86_64-w64-mingw32",
		"i686-w64-mingw32.shared",
		"x86_64-w64-mingw32.shared",
		"i686-w64-mingw32.static",
		"x86_64-w64-mingw32.static",
		"i586-mingw32msvc",
		"amd64-mingw32msvc",
	}
}

// IsValidMinGWMachine reports whether machine names a recognized MinGW target.
func IsValidMinGWMachine(machine string) bool {
	return slices.Contains(ValidMinGWMachines(), machine)
}

// StandardCompilerFileNames lists compiler file names that need no extra profile setup.
func StandardCompilerFileNames() []string {
	return []string{"gcc", "g++", "clang", "clang++"}
}

// CanonicalToolchain expands a toolchain name into the list of types it implies.
func CanonicalToolchain(name string) []string {
	switch name {
	case ToolchainClang:
		return []string{ToolchainClang, ToolchainLLVM, ToolchainGCC}
	case ToolchainLLVM:
		return []string{ToolchainLLVM, ToolchainGCC}
	case ToolchainMinGW:
		return []string{ToolchainMinGW, ToolchainGCC}
	default:
		return []string{name}
	}
}

// ToolchainTypeFromCompilerName guesses the toolchain types of a compiler executable name.
func ToolchainTypeFromCompilerName(compilerName string) []string {
	for _, name := range []string{ToolchainClang, ToolchainLLVM, ToolchainMinGW, ToolchainGCC} {
		if strings.Contains(compilerName, name) {
			return CanonicalToolchain(name)
		}
	}
	if strings.HasSuffix(compilerName, "g++") {
		return CanonicalToolchain(ToolchainGCC)
	}
	return nil
}

// ToolchainPrefix returns the part of compilerName up to and including its last '-'.
func ToolchainPrefix(compilerName string) string {
	return compilerName[:strings.LastIndexByte(compilerName, '-')+1]
}
