package config

// ProjectFile is the structure of a cairn.yaml project file.
type ProjectFile struct {
	Project        string                      `yaml:"project"`
	Properties     map[string]string           `yaml:"properties"`
	Configurations map[string]ConfigurationDTO `yaml:"configurations"`
	Products       []ProductDTO                `yaml:"products"`
}

// ConfigurationDTO overrides project values for one build configuration.
type ConfigurationDTO struct {
	Properties  map[string]string `yaml:"properties"`
	Environment map[string]string `yaml:"environment"`
}

// ProductDTO is a product definition in the project file.
type ProductDTO struct {
	Name         string            `yaml:"name"`
	Type         string            `yaml:"type"`
	Files        []string          `yaml:"files"`
	IncludePaths []string          `yaml:"includePaths"`
	Command      []string          `yaml:"command"`
	DependsOn    []string          `yaml:"dependsOn"`
	Executable   string            `yaml:"executable"`
	WorkingDir   string            `yaml:"workingDir"`
	Environment  map[string]string `yaml:"environment"`
	PathPrepend  []string          `yaml:"pathPrepend"`
	Properties   map[string]string `yaml:"properties"`
}
