// Package repotest provides test utilities to scaffold konvent project
// repositories.
package repotest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/konvent-build/konvent/internal/testutils/fstest"
	"github.com/konvent-build/konvent/pkg/cfg"
	"github.com/konvent-build/konvent/pkg/konvent"
)

// DefaultCatalog is the version catalog content that CreateProject writes.
// It contains an entry for every catalog key that the built-in conventions
// reference.
const DefaultCatalog = `[versions]
lombok = "1.18.42"
spotless = "8.1.0"
palantir-java-format = "2.50.0"
jacoco = "0.8.12"
junit = "5.11.3"
assertj = "3.26.3"
kotlin = "2.1.0"
spring-boot = "3.4.1"
spring-dependency-management = "1.1.7"

[libraries]
lombok = "org.projectlombok:lombok"
`

// Repo is a konvent project repository created for a testcase.
type Repo struct {
	Dir         string
	CfgPath     string
	CatalogPath string
	ModuleCfgs  []*cfg.Module
}

// CreateProject creates a project repository with a project config and the
// DefaultCatalog in a temporary directory.
func CreateProject(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()

	projectCfg := cfg.ExampleProject()
	projectCfg.Discover.SearchDepth = 2

	cfgPath := filepath.Join(dir, konvent.ProjectCfgFile)
	if err := projectCfg.ToFile(cfgPath); err != nil {
		t.Fatalf("writing project cfg file failed: %s", err)
	}

	catalogPath := filepath.Join(dir, projectCfg.Catalog.File)
	fstest.WriteToFile(t, []byte(DefaultCatalog), catalogPath)

	return &Repo{
		Dir:         dir,
		CfgPath:     cfgPath,
		CatalogPath: catalogPath,
	}
}

// CreateModule creates a module directory with a module config file in the
// repository and returns the config.
func (r *Repo) CreateModule(t *testing.T, name string, conventions ...string) *cfg.Module {
	t.Helper()

	if len(conventions) == 0 {
		conventions = []string{"java"}
	}

	module := cfg.Module{
		Name:        name,
		Conventions: conventions,
		Generate: cfg.Generate{
			Output:    "src/generated/java/Versions.java",
			Dialect:   cfg.DialectJava,
			Namespace: "com.example." + name,
		},
	}

	moduleDir := filepath.Join(r.Dir, name)

	if err := os.Mkdir(moduleDir, 0o775); err != nil {
		t.Fatal(err)
	}

	if err := module.ToFile(filepath.Join(moduleDir, konvent.ModuleCfgFile)); err != nil {
		t.Fatalf("writing module cfg file failed: %s", err)
	}

	r.ModuleCfgs = append(r.ModuleCfgs, &module)

	return &module
}
