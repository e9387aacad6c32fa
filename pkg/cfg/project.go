package cfg

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

const (
	minSearchDepth = 0
	maxSearchDepth = 10
	// Version identifies the format of the configuration files that the
	// package can parse. Whenever an incompatible change is made, the
	// Version number is increased.
	Version int = 1
)

// Project contains the project configuration.
type Project struct {
	ConfigVersion int `toml:"config_version" comment:"Internal field, version of the konvent configuration format"`

	Discover Discover
	Catalog  Catalog

	filePath string
}

// Discover stores the [Discover] section of the project configuration.
type Discover struct {
	Dirs        []string `toml:"module_dirs" comment:"Directories in which consumer modules (.module.toml files) are discovered"`
	SearchDepth int      `toml:"search_depth" comment:"Descend at most search_depth levels to find module configs"`
	Globs       []string `toml:"module_globs" comment:"Additional glob patterns resolving to module config files.\n '**' matches directories recursively. Paths are relative to the project root."`
}

// Catalog stores the location of a version catalog file.
type Catalog struct {
	File string `toml:"file" comment:"Path of the version catalog file, relative to the project root"`
}

// ProjectFromFile reads the project config from a file and returns it.
func ProjectFromFile(cfgPath string) (*Project, error) {
	config := Project{}

	content, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}

	err = toml.Unmarshal(content, &config)
	if err != nil {
		return nil, err
	}

	config.filePath = cfgPath

	return &config, err
}

// ExampleProject returns an exemplary project config.
func ExampleProject() *Project {
	return &Project{
		ConfigVersion: Version,

		Discover: Discover{
			Dirs:        []string{"."},
			SearchDepth: 1,
		},

		Catalog: Catalog{
			File: "versions.catalog",
		},
	}
}

// ToFile writes a project configuration file to filepath.
func (p *Project) ToFile(filepath string, opts ...toFileOpt) error {
	return toFile(p, filepath, opts...)
}

// FilePath returns the path of the project configuration file.
func (p *Project) FilePath() string {
	return p.filePath
}

// Validate validates a project configuration.
func (p *Project) Validate() error {
	if p.ConfigVersion == 0 {
		return newFieldError("can not be unset or 0", "config_version")
	}
	if p.ConfigVersion != Version {
		return fmt.Errorf("incompatible configuration files\n"+
			"config_version value is %d, expecting version: %d\n"+
			"Update your konvent configuration files or downgrade konvent.", p.ConfigVersion, Version)
	}

	if err := p.Discover.validate(); err != nil {
		return fieldErrorWrap(err, "Discover")
	}

	if p.Catalog.File == "" {
		return newFieldError("can not be empty", "Catalog", "file")
	}

	return nil
}

// validate validates the Discover section.
func (d *Discover) validate() error {
	if len(d.Dirs) == 0 && len(d.Globs) == 0 {
		return newFieldError("module_dirs and module_globs can not both be empty", "module_dirs")
	}

	if d.SearchDepth < minSearchDepth || d.SearchDepth > maxSearchDepth {
		return newFieldError(fmt.Sprintf("search_depth parameter must be in range (%d, %d]",
			minSearchDepth, maxSearchDepth),
			"search_depth",
		)
	}

	return nil
}
