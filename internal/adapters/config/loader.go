// Package config loads cairn project files and tool settings.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader for YAML project files.
type Loader struct {
	resolver  ports.InputResolver
	buildRoot string
}

// NewLoader creates a Loader placing build directories below buildRoot.
func NewLoader(resolver ports.InputResolver, buildRoot string) *Loader {
	return &Loader{resolver: resolver, buildRoot: buildRoot}
}

// Load resolves projectFile once per configuration.
// Every failure is classified as domain.ErrProjectResolution.
func (l *Loader) Load(_ context.Context, projectFile string, configurations []string) (domain.Forest, error) {
	file, err := l.read(projectFile)
	if err != nil {
		return nil, resolutionError(err, projectFile)
	}
	if len(configurations) == 0 {
		configurations = []string{domain.DefaultConfiguration}
	}

	forest := make(domain.Forest, 0, len(configurations))
	seen := make(map[string]bool, len(configurations))
	for _, configuration := range configurations {
		if seen[configuration] {
			continue
		}
		seen[configuration] = true

		project, err := l.resolve(file, projectFile, configuration)
		if err != nil {
			return nil, resolutionError(err, projectFile)
		}
		forest = append(forest, project)
	}
	return forest, nil
}

func (l *Loader) read(projectFile string) (*ProjectFile, error) {
	data, err := os.ReadFile(projectFile) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", domain.ErrProjectFileNotFound, err)
		}
		return nil, zerr.Wrap(err, "failed to read project file")
	}

	var file ProjectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project file")
	}
	if file.Project == "" {
		file.Project = strings.TrimSuffix(filepath.Base(projectFile), filepath.Ext(projectFile))
	}
	return &file, nil
}

func (l *Loader) resolve(file *ProjectFile, projectFile, configuration string) (*domain.ResolvedProject, error) {
	absFile, err := filepath.Abs(projectFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project file path")
	}
	override := file.Configurations[configuration]

	project := &domain.ResolvedProject{
		Name:           file.Project,
		ProjectFile:    absFile,
		Configuration:  configuration,
		SourceDir:      filepath.Dir(absFile),
		BuildDirectory: filepath.Join(l.buildRoot, configuration),
		Properties:     merge(file.Properties, override.Properties),
	}

	byName := make(map[string]*domain.ResolvedProduct, len(file.Products))
	for i := range file.Products {
		dto := &file.Products[i]
		if dto.Name == "" {
			return nil, zerr.With(zerr.New("product without name"), "index", i)
		}
		if _, exists := byName[dto.Name]; exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateProduct, "invalid project"), "product", dto.Name)
		}

		product, err := l.resolveProduct(project, dto, override)
		if err != nil {
			return nil, zerr.With(err, "product", dto.Name)
		}
		byName[dto.Name] = product
		project.Products = append(project.Products, product)
	}

	g := domain.NewProductGraph()
	for i, product := range project.Products {
		for _, dep := range file.Products[i].DependsOn {
			target, ok := byName[dep]
			if !ok {
				err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, "invalid project"), "dependency", dep)
				return nil, zerr.With(err, "product", product.Name)
			}
			product.Dependencies = append(product.Dependencies, target)
		}
		if err := g.Add(product); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return project, nil
}

func (l *Loader) resolveProduct(
	project *domain.ResolvedProject,
	dto *ProductDTO,
	override ConfigurationDTO,
) (*domain.ResolvedProduct, error) {
	productType := domain.ProductType(dto.Type)
	if dto.Type == "" {
		productType = domain.ProductTypeGeneric
		if dto.Executable != "" {
			productType = domain.ProductTypeApplication
		}
	}

	vars := map[string]string{
		"sourceDir":     project.SourceDir,
		"buildDir":      project.BuildDirectory,
		"configuration": project.Configuration,
		"product":       dto.Name,
	}
	expand := func(s string) string {
		return os.Expand(s, func(key string) string {
			if v, ok := vars[key]; ok {
				return v
			}
			return "$" + key
		})
	}

	sources, err := l.resolver.ResolveInputs(dto.Files, project.SourceDir)
	if err != nil {
		return nil, err
	}

	product := &domain.ResolvedProduct{
		Name:        dto.Name,
		Type:        productType,
		ProjectID:   project.ID(),
		SourceDir:   project.SourceDir,
		Sources:     sources,
		IncludePath: absPaths(project.SourceDir, dto.IncludePaths),
		Environment: merge(override.Environment, dto.Environment),
		PathPrepend: absPaths(project.BuildDirectory, dto.PathPrepend),
		Properties:  merge(project.Properties, dto.Properties),
	}
	for _, arg := range dto.Command {
		product.Command = append(product.Command, expand(arg))
	}
	if dto.Executable != "" {
		product.ExecutablePath = absPath(project.BuildDirectory, expand(dto.Executable))
	}
	if dto.WorkingDir != "" {
		product.WorkingDir = absPath(project.SourceDir, expand(dto.WorkingDir))
	}
	return product, nil
}

func resolutionError(err error, projectFile string) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrProjectResolution, err), "path", projectFile)
}

func merge(base, overrides map[string]string) map[string]string {
	if len(base) == 0 && len(overrides) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overrides))
	maps.Copy(out, base)
	maps.Copy(out, overrides)
	return out
}

func absPath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func absPaths(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, absPath(root, p))
	}
	return out
}
