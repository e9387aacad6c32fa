package konvent

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/konvent-build/konvent/pkg/cfg"
)

// Module represents a consumer module of a konvent project.
// Its Config is the effective build configuration, composed from the
// conventions the module config lists.
type Module struct {
	Name    string
	Path    string
	RelPath string

	Config BuildConfig

	// OutputPath is the absolute path of the module's generated constants
	// file.
	OutputPath string
	Dialect    string
	Namespace  string

	// CatalogPath is the absolute path of the version catalog the module
	// consumes.
	CatalogPath string

	BuildCommand []string

	projectRootPath string

	cfg *cfg.Module
}

// NewModule creates a Module from its configuration.
// defaultCatalogPath is used when the module config does not override the
// catalog location, a module override is resolved relative to the project
// root.
func NewModule(moduleCfg *cfg.Module, projectRootPath, defaultCatalogPath string) (*Module, error) {
	moduleDir := filepath.Dir(moduleCfg.FilePath())

	relPath, err := filepath.Rel(projectRootPath, moduleDir)
	if err != nil {
		return nil, fmt.Errorf("%s: resolving project relative module path failed: %w", moduleCfg.Name, err)
	}

	buildCfg, err := ComposeConfig(moduleCfg.Conventions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", moduleCfg.Name, err)
	}

	catalogPath := defaultCatalogPath
	if moduleCfg.Catalog.File != "" {
		catalogPath = filepath.Join(projectRootPath, moduleCfg.Catalog.File)
	}

	module := Module{
		Name:            moduleCfg.Name,
		Path:            moduleDir,
		RelPath:         relPath,
		Config:          buildCfg,
		OutputPath:      filepath.Join(moduleDir, moduleCfg.Generate.Output),
		Dialect:         moduleCfg.Generate.Dialect,
		Namespace:       moduleCfg.Generate.Namespace,
		CatalogPath:     catalogPath,
		BuildCommand:    moduleCfg.Build.Command,
		projectRootPath: projectRootPath,
		cfg:             moduleCfg,
	}

	return &module, nil
}

// String returns the string representation of a module.
func (m *Module) String() string {
	return m.Name
}

// SortModulesByName sorts the modules in the slice by Name.
func SortModulesByName(modules []*Module) {
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})
}
