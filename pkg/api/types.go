package api

import "io/fs"

const (
	// ManifestFilename is the optional template description file at the root of a template tree.
	ManifestFilename = ".kickstart.yaml"

	TemplateJEMN   = "jemn"
	TemplateBasic  = "basic"
	TemplateCustom = "custom"

	PackageManagerNPM  = "npm"
	PackageManagerYarn = "yarn"
	PackageManagerPNPM = "pnpm"

	GitStrategyCLI      = "cli"
	GitStrategyEmbedded = "embedded"
)

// PackageManagers lists the allowed package managers in prompt order.
var PackageManagers = []string{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM}

// Selection holds the choices made by the user, either interactively or via flags.
type Selection struct {
	ProjectName         string
	Template            string
	TemplatePath        string // only used with TemplateCustom
	InitGit             bool
	UsePackageManager   bool
	PackageManager      string
	InstallDependencies bool
}

// Configuration is the context every project step reads. It is built once
// before the pipeline starts and never replaced.
type Configuration struct {
	ProjectName string
	Template    string

	// TemplateDirectory describes where the template tree came from, for messages.
	TemplateDirectory string
	TemplateFS        fs.FS
	// TemplateSourceDir is the directory on disk the template is read from,
	// empty for bundled templates.
	TemplateSourceDir string

	TargetDirectory string

	PackageManager      string
	InitGit             bool
	UsePackageManager   bool
	InstallDependencies bool
}

// Defaults seeds the prompt answers and the non-interactive selection.
type Defaults struct {
	Template            string `yaml:"template" toml:"template" json:"template"`
	PackageManager      string `yaml:"packageManager" toml:"packageManager" json:"packageManager"`
	InitGit             bool   `yaml:"initGit" toml:"initGit" json:"initGit"`
	UsePackageManager   bool   `yaml:"usePackageManager" toml:"usePackageManager" json:"usePackageManager"`
	InstallDependencies bool   `yaml:"installDependencies" toml:"installDependencies" json:"installDependencies"`
	GitStrategy         string `yaml:"gitStrategy" toml:"gitStrategy" json:"gitStrategy"`
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Template:       TemplateJEMN,
		PackageManager: PackageManagerNPM,
		GitStrategy:    GitStrategyCLI,
	}
}

// FileFilter defines include/exclude glob patterns.
type FileFilter struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// TemplateManifest is the .kickstart.yaml format.
type TemplateManifest struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Exclude     []string   `yaml:"exclude"`
	Render      FileFilter `yaml:"render"`
}
