package konvent

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/konvent-build/konvent/internal/fs"
	"github.com/konvent-build/konvent/internal/set"
	"github.com/konvent-build/konvent/pkg/catalog"
	"github.com/konvent-build/konvent/pkg/cfg"
)

// Logger is the logging interface of the Loader.
type Logger interface {
	Debugf(format string, v ...any)
}

// Loader discovers and instantiates the modules of a project.
type Loader struct {
	logger             Logger
	projectRoot        string
	defaultCatalogPath string
	moduleCfgPaths     []string
	catalogs           *catalogCache
}

// NewLoader instantiates a Loader for the project repository.
// Module config files are discovered in the configured module directories up
// to the configured search depth and via the configured glob patterns.
func NewLoader(repo *Repository, logger Logger) (*Loader, error) {
	moduleCfgPaths, err := findModuleCfgs(repo)
	if err != nil {
		return nil, fmt.Errorf("discovering module config files failed: %w", err)
	}

	logger.Debugf("loader: found the following module configs:\n%s",
		strings.Join(moduleCfgPaths, "\n"))

	return &Loader{
		logger:             logger,
		projectRoot:        repo.Path,
		defaultCatalogPath: repo.CatalogPath,
		moduleCfgPaths:     moduleCfgPaths,
		catalogs:           newCatalogCache(),
	}, nil
}

// findModuleCfgs locates the module config files of the repository.
// Duplicates are removed, the result is sorted to make discovery
// deterministic.
func findModuleCfgs(repo *Repository) ([]string, error) {
	found := set.Set[string]{}

	for _, dir := range fs.AbsPaths(repo.Path, repo.Cfg.Discover.Dirs) {
		paths, err := fs.FindFilesInSubDir(dir, ModuleCfgFile, repo.Cfg.Discover.SearchDepth)
		if err != nil {
			return nil, err
		}

		for _, p := range paths {
			found.Add(p)
		}
	}

	for _, pattern := range repo.Cfg.Discover.Globs {
		paths, err := fs.FileGlob(filepath.Join(repo.Path, pattern))
		if err != nil {
			return nil, fmt.Errorf("resolving module glob %q failed: %w", pattern, err)
		}

		for _, p := range paths {
			if filepath.Base(p) != ModuleCfgFile {
				continue
			}

			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, err
			}

			found.Add(abs)
		}
	}

	res := found.Slice()
	sort.Strings(res)

	return res, nil
}

// LoadModules loads the modules that match the passed specifiers.
// Valid specifiers are:
//   - module name
//   - module directory path
//   - '*'
//
// If no specifier is passed all modules are returned.
// If multiple specifiers match the same module, it is only returned once.
func (l *Loader) LoadModules(specifier ...string) ([]*Module, error) {
	modules, err := l.allModules()
	if err != nil {
		return nil, err
	}

	if len(specifier) == 0 || set.From(specifier).Contains("*") {
		SortModulesByName(modules)
		return modules, nil
	}

	byName := make(map[string]*Module, len(modules))
	for _, m := range modules {
		byName[m.Name] = m
	}

	resultSet := set.Set[*Module]{}

	for _, spec := range specifier {
		m, err := l.resolveSpecifier(byName, modules, spec)
		if err != nil {
			return nil, err
		}

		resultSet.Add(m)
	}

	result := resultSet.Slice()
	SortModulesByName(result)

	return result, nil
}

func (l *Loader) resolveSpecifier(byName map[string]*Module, modules []*Module, spec string) (*Module, error) {
	if m, exist := byName[spec]; exist {
		return m, nil
	}

	abs, err := filepath.Abs(spec)
	if err != nil {
		return nil, err
	}

	for _, m := range modules {
		if m.Path == abs {
			return m, nil
		}
	}

	return nil, fmt.Errorf("could not find module %q", spec)
}

// allModules loads all discovered module configs.
func (l *Loader) allModules() ([]*Module, error) {
	result := make([]*Module, 0, len(l.moduleCfgPaths))
	cfgPathsByName := make(map[string]string, len(l.moduleCfgPaths))

	for _, path := range l.moduleCfgPaths {
		moduleCfg, err := cfg.ModuleFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if err := moduleCfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if otherPath, exist := cfgPathsByName[moduleCfg.Name]; exist {
			return nil, &ErrDuplicateModuleNames{
				ModuleName:  moduleCfg.Name,
				ModulePath1: otherPath,
				ModulePath2: path,
			}
		}
		cfgPathsByName[moduleCfg.Name] = path

		module, err := NewModule(moduleCfg, l.projectRoot, l.defaultCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		result = append(result, module)
	}

	return result, nil
}

// InvalidateCatalogs drops all cached catalogs, they are re-read from disk on
// the next CatalogFor call.
func (l *Loader) InvalidateCatalogs() {
	l.catalogs.clear()
	l.logger.Debugf("loader: catalog cache invalidated")
}

// CatalogFor returns the version catalog that the module consumes.
// Parsed catalogs are cached, modules sharing a catalog share the parsed
// representation.
func (l *Loader) CatalogFor(m *Module) (*catalog.Catalog, error) {
	if cat := l.catalogs.get(m.CatalogPath); cat != nil {
		return cat, nil
	}

	cat, err := catalog.FromFile(m.CatalogPath)
	if err != nil {
		return nil, err
	}

	l.catalogs.add(m.CatalogPath, cat)

	stats := l.catalogs.statistics()
	l.logger.Debugf("loader: catalog cache: %d entries, %d hits, %d misses",
		stats.Entries, stats.Hits, stats.Miss)

	return cat, nil
}
