package toolchain

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

// CrossCompileKey names the variable holding a cross compiler prefix.
const CrossCompileKey = "CROSS_COMPILE"

// Prober creates gcc-like toolchain profiles.
type Prober struct {
	query  ports.CompilerQuery
	finder ports.ExecutableFinder
	logger ports.Logger
	goos   string
}

// NewProber creates a Prober for the host operating system.
func NewProber(query ports.CompilerQuery, finder ports.ExecutableFinder, logger ports.Logger) *Prober {
	return NewProberForOS(query, finder, logger, runtime.GOOS)
}

// NewProberForOS creates a Prober that treats goos as the host operating system.
func NewProberForOS(query ports.CompilerQuery, finder ports.ExecutableFinder, logger ports.Logger, goos string) *Prober {
	return &Prober{query: query, finder: finder, logger: logger, goos: goos}
}

// CreateGccProfile asks the compiler for its target machine and derives a profile from it.
// MinGW toolchains must report one of the recognized MinGW machines.
// An empty profileName selects the machine name.
func (p *Prober) CreateGccProfile(
	ctx context.Context,
	compilerPath string,
	toolchainTypes []string,
	profileName string,
) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	compilerPath, err := filepath.Abs(compilerPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve compiler path"), "compiler", compilerPath)
	}
	machine, err := p.query.MachineName(compilerPath)
	if err != nil {
		return nil, err
	}

	if slices.Contains(toolchainTypes, domain.ToolchainMinGW) && !domain.IsValidMinGWMachine(machine) {
		err := zerr.Wrap(domain.ErrUnsupportedPlatform, fmt.Sprintf("Detected gcc platform '%s'", machine))
		return nil, zerr.With(err, "machine", machine)
	}

	if profileName == "" {
		profileName = machine
	}
	profile := domain.NewProfile(profileName)
	prefix := p.setCommonProperties(profile, compilerPath, toolchainTypes)

	// Auxiliary tools may live outside the install path, e.g. behind a compiler wrapper.
	compilerDir := filepath.Dir(compilerPath)
	p.setToolPath(profile, compilerDir, prefix, "ar", domain.PropArchiverPath)
	p.setToolPath(profile, compilerDir, prefix, "as", domain.PropAssemblerPath)
	p.setToolPath(profile, compilerDir, prefix, "nm", domain.PropNMPath)
	if p.targetsOS(profile, "darwin") {
		p.setToolPath(profile, compilerDir, prefix, "dsymutil", domain.PropDsymutilPath)
	} else {
		p.setToolPath(profile, compilerDir, prefix, "objcopy", domain.PropObjcopyPath)
	}
	p.setToolPath(profile, compilerDir, prefix, "strip", domain.PropStripPath)

	p.logger.Info(fmt.Sprintf("Profile '%s' created for '%s'.", profile.Name, compilerPath))
	return profile, nil
}

func (p *Prober) setCommonProperties(profile *domain.Profile, compilerPath string, toolchainTypes []string) string {
	compilerName := filepath.Base(compilerPath)

	if slices.Contains(toolchainTypes, domain.ToolchainMinGW) {
		profile.Set(domain.PropTargetPlatform, "windows")
	}

	prefix := domain.ToolchainPrefix(compilerName)
	if prefix != "" {
		profile.Set(domain.PropToolchainPrefix, prefix)
	}
	profile.Set(domain.PropToolchainInstall, filepath.Dir(compilerPath))
	profile.Toolchain = slices.Clone(toolchainTypes)

	suffix := strings.TrimPrefix(compilerName, prefix)
	if !slices.Contains(p.standardCompilerFileNames(), suffix) {
		p.logger.Warn(fmt.Sprintf("'%s' is not a standard compiler file name; "+
			"you must set the cpp.cCompilerName and cpp.cxxCompilerName properties of this profile manually",
			compilerName))
	}
	return prefix
}

// setToolPath records where tool lives unless it sits next to the compiler.
func (p *Prober) setToolPath(profile *domain.Profile, compilerDir, prefix, tool, key string) {
	fileName := prefix + p.executableName(tool)
	if p.finder.Exists(filepath.Join(compilerDir, fileName)) {
		return
	}

	path := p.finder.FindExecutable(fileName)
	if path == "" {
		p.logger.Warn(fmt.Sprintf("'%s' exists neither in '%s' nor in PATH.", fileName, compilerDir))
		return
	}
	profile.Set(key, path)
}

func (p *Prober) targetsOS(profile *domain.Profile, goos string) bool {
	if target, ok := profile.Value(domain.PropTargetPlatform); ok {
		return target == goos || (goos == "darwin" && (target == "macos" || target == "ios"))
	}
	return p.goos == goos
}

func (p *Prober) standardCompilerFileNames() []string {
	names := domain.StandardCompilerFileNames()
	for i, name := range names {
		names[i] = p.executableName(name)
	}
	return names
}

func (p *Prober) executableName(name string) string {
	if p.goos == "windows" {
		return name + ".exe"
	}
	return name
}

// GccProbe looks up compilerName in PATH, honoring a cross compiler prefix, and
// creates a profile named after the compiler file.
func (p *Prober) GccProbe(ctx context.Context, compilerName, crossCompile string) (*domain.Profile, error) {
	p.logger.Info(fmt.Sprintf("Trying to detect %s...", compilerName))

	compilerPath := p.finder.FindExecutable(crossCompile + compilerName)
	if compilerPath == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrCompilerNotFound, compilerName+" not found."), "compiler", compilerName)
	}

	base := filepath.Base(compilerPath)
	profileName := strings.TrimSuffix(base, filepath.Ext(base))
	return p.CreateGccProfile(ctx, compilerPath, domain.ToolchainTypeFromCompilerName(compilerName), profileName)
}

// MingwProbe creates a profile for every MinGW compiler found in PATH.
func (p *Prober) MingwProbe(ctx context.Context) ([]*domain.Profile, error) {
	var compilerNames []string
	if p.goos == "windows" {
		compilerNames = []string{"gcc"}
	} else {
		for _, machine := range domain.ValidMinGWMachines() {
			compilerNames = append(compilerNames, machine+"-gcc")
		}
	}

	var profiles []*domain.Profile
	for _, name := range compilerNames {
		path := p.finder.FindExecutable(p.executableName(name))
		if path == "" {
			continue
		}
		profile, err := p.CreateGccProfile(ctx, path, domain.CanonicalToolchain(domain.ToolchainMinGW), "")
		if err != nil {
			return profiles, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
