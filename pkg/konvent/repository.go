package konvent

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/konvent-build/konvent/internal/fs"
	"github.com/konvent-build/konvent/pkg/cfg"
)

// Repository represents a konvent project repository.
type Repository struct {
	Path        string
	CfgPath     string
	Cfg         *cfg.Project
	CatalogPath string
}

// FindProjectCfg searches for a project config file. The search starts in dir
// and traverses the parent directories down to the root.
// It returns the path to the first found project configuration file.
func FindProjectCfg(dir string) (string, error) {
	return fs.FindFileInParentDirs(dir, ProjectCfgFile)
}

// FindProjectCfgCwd searches for a project config file, starting in the
// current working directory.
func FindProjectCfgCwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return FindProjectCfg(cwd)
}

// NewRepository parses the project configuration file cfgPath and returns a
// Repository.
func NewRepository(cfgPath string) (*Repository, error) {
	realCfgPath, err := fs.RealPath(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing project config path %q failed: %w", cfgPath, err)
	}

	projectCfg, err := cfg.ProjectFromFile(realCfgPath)
	if err != nil {
		return nil, fmt.Errorf(
			"reading project config %q failed: %w", realCfgPath, err)
	}

	err = projectCfg.Validate()
	if err != nil {
		return nil, fmt.Errorf(
			"validating project config %q failed: %w", realCfgPath, err)
	}

	repoPath := filepath.Dir(realCfgPath)

	r := Repository{
		Cfg:         projectCfg,
		CfgPath:     realCfgPath,
		Path:        repoPath,
		CatalogPath: filepath.Join(repoPath, projectCfg.Catalog.File),
	}

	return &r, nil
}
