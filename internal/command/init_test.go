package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konvent-build/konvent/internal/testutils/fstest"
	"github.com/konvent-build/konvent/pkg/cfg"
	"github.com/konvent-build/konvent/pkg/konvent"
)

func TestInitProjectCreatesConfig(t *testing.T) {
	initTest(t)

	dir := t.TempDir()
	fstest.Chdir(t, dir)

	initProjectCmd := newInitProjectCmd()
	initProjectCmd.SetArgs([]string{})
	interceptCmdOutput(t)
	require.NoError(t, initProjectCmd.Execute())

	_, err := os.Stat(filepath.Join(dir, konvent.ProjectCfgFile))
	require.NoError(t, err)
}

func TestInitProjectRefusesOverwrite(t *testing.T) {
	initTest(t)

	dir := t.TempDir()
	fstest.Chdir(t, dir)

	require.NoError(t, cfg.ExampleProject().ToFile(filepath.Join(dir, konvent.ProjectCfgFile)))

	initProjectCmd := newInitProjectCmd()
	initProjectCmd.SetArgs([]string{})
	_, stderrBuf := interceptCmdOutput(t)
	execCheck(t, initProjectCmd, exitCodeError)

	assert.Contains(t, stderrBuf.String(), "already exists")
}

func TestInitModuleCreatesConfigWithDirName(t *testing.T) {
	initTest(t)

	dir := t.TempDir()
	require.NoError(t, cfg.ExampleProject().ToFile(filepath.Join(dir, konvent.ProjectCfgFile)))

	moduleDir := filepath.Join(dir, "billing")
	require.NoError(t, os.Mkdir(moduleDir, 0o775))
	fstest.Chdir(t, moduleDir)

	initModuleCmd := newInitModuleCmd()
	initModuleCmd.SetArgs([]string{})
	interceptCmdOutput(t)
	require.NoError(t, initModuleCmd.Execute())

	moduleCfg, err := cfg.ModuleFromFile(filepath.Join(moduleDir, konvent.ModuleCfgFile))
	require.NoError(t, err)
	assert.Equal(t, "billing", moduleCfg.Name)
	require.NoError(t, moduleCfg.Validate())
}

func TestInitModuleOutsideProjectFails(t *testing.T) {
	initTest(t)

	fstest.Chdir(t, t.TempDir())

	initModuleCmd := newInitModuleCmd()
	initModuleCmd.SetArgs([]string{})
	interceptCmdOutput(t)
	execCheck(t, initModuleCmd, exitCodeError)
}
