package cfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleProjectIsValid(t *testing.T) {
	require.NoError(t, ExampleProject().Validate())
}

func TestProjectToFileFromFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".konvent.toml")

	project := ExampleProject()
	require.NoError(t, project.ToFile(path))

	loaded, err := ProjectFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, project.ConfigVersion, loaded.ConfigVersion)
	assert.Equal(t, project.Discover.Dirs, loaded.Discover.Dirs)
	assert.Equal(t, project.Discover.SearchDepth, loaded.Discover.SearchDepth)
	// an unset string array is marshalled as an empty toml array
	assert.Empty(t, loaded.Discover.Globs)
	assert.Equal(t, project.Catalog, loaded.Catalog)
	assert.Equal(t, path, loaded.FilePath())
}

func TestProjectToFileRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".konvent.toml")

	require.NoError(t, ExampleProject().ToFile(path))

	err := ExampleProject().ToFile(path)
	require.Error(t, err)
	assert.True(t, os.IsExist(err))

	require.NoError(t, ExampleProject().ToFile(path, ToFileOptOverwrite()))
}

func TestProjectToFileCommented(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".konvent.toml")

	require.NoError(t, ExampleProject().ToFile(path, ToFileOptCommented()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		assert.True(t, strings.HasPrefix(line, "#"), "line is not commented: %q", line)
	}
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Project)
		errContains string
	}{
		{
			name:        "config version unset",
			mutate:      func(p *Project) { p.ConfigVersion = 0 },
			errContains: "config_version",
		},

		{
			name:        "config version incompatible",
			mutate:      func(p *Project) { p.ConfigVersion = Version + 1 },
			errContains: "incompatible",
		},

		{
			name: "no discovery settings",
			mutate: func(p *Project) {
				p.Discover.Dirs = nil
				p.Discover.Globs = nil
			},
			errContains: "module_dirs",
		},

		{
			name:        "search depth out of range",
			mutate:      func(p *Project) { p.Discover.SearchDepth = 11 },
			errContains: "search_depth",
		},

		{
			name:        "catalog file unset",
			mutate:      func(p *Project) { p.Catalog.File = "" },
			errContains: "Catalog.file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := ExampleProject()
			tt.mutate(project)

			err := project.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestProjectValidateOnlyGlobsIsSufficient(t *testing.T) {
	project := ExampleProject()
	project.Discover.Dirs = nil
	project.Discover.Globs = []string{"services/**"}

	require.NoError(t, project.Validate())
}
