package domain

// ProductType classifies what a product produces.
type ProductType string

const (
	// ProductTypeApplication produces a runnable executable.
	ProductTypeApplication ProductType = "application"
	// ProductTypeStaticLibrary produces a static library.
	ProductTypeStaticLibrary ProductType = "staticlibrary"
	// ProductTypeDynamicLibrary produces a shared library.
	ProductTypeDynamicLibrary ProductType = "dynamiclibrary"
	// ProductTypeGeneric produces whatever its command produces.
	ProductTypeGeneric ProductType = "generic"
)

// ResolvedProduct is a product of a resolved project.
// Products are shared by pointer and must not be modified once resolution is done.
type ResolvedProduct struct {
	Name      string
	Type      ProductType
	ProjectID string
	// SourceDir is the directory of the declaring project file. Build commands run there.
	SourceDir   string
	Sources     []string
	IncludePath []string
	Command     []string
	// Dependencies are products of the same project that must be built first.
	Dependencies []*ResolvedProduct
	// ExecutablePath is empty when the product does not produce an executable.
	ExecutablePath string
	WorkingDir     string
	Environment    map[string]string
	PathPrepend    []string
	Properties     map[string]string
}

// Key returns an identifier that is unique across all projects of a forest.
func (p *ResolvedProduct) Key() string {
	return p.ProjectID + "/" + p.Name
}

// DependencyNames returns the names of the direct dependencies.
func (p *ResolvedProduct) DependencyNames() []string {
	names := make([]string, 0, len(p.Dependencies))
	for _, dep := range p.Dependencies {
		names = append(names, dep.Name)
	}
	return names
}

// IsRunnable reports whether the product produces an executable.
func (p *ResolvedProduct) IsRunnable() bool {
	return p.ExecutablePath != ""
}

// ResolvedProject is a project file evaluated for one build configuration.
type ResolvedProject struct {
	Name           string
	ProjectFile    string
	Configuration  string
	SourceDir      string
	BuildDirectory string
	Products       []*ResolvedProduct
	Properties     map[string]string
}

// ID returns the identifier shared by all products of the project.
func (p *ResolvedProject) ID() string {
	return p.Name + "@" + p.Configuration
}

// Product returns the product with the given name, or nil.
func (p *ResolvedProject) Product(name string) *ResolvedProduct {
	for _, product := range p.Products {
		if product.Name == name {
			return product
		}
	}
	return nil
}

// Forest is the ordered set of resolved projects of one invocation.
type Forest []*ResolvedProject

// Products returns every product of every project in declaration order.
func (f Forest) Products() []*ResolvedProduct {
	var products []*ResolvedProduct
	for _, project := range f {
		products = append(products, project.Products...)
	}
	return products
}

// Project returns the project the product belongs to, or nil.
func (f Forest) Project(product *ResolvedProduct) *ResolvedProject {
	for _, project := range f {
		if project.ID() == product.ProjectID {
			return project
		}
	}
	return nil
}
