package command

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konvent-build/konvent/internal/testutils/fstest"
	"github.com/konvent-build/konvent/internal/testutils/repotest"
	"github.com/konvent-build/konvent/pkg/cfg"
	"github.com/konvent-build/konvent/pkg/konvent"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("test requires a unix shell")
	}
}

// setBuildCommand rewrites the module config with the given build command.
func setBuildCommand(t *testing.T, r *repotest.Repo, moduleCfg *cfg.Module, command ...string) {
	t.Helper()

	moduleCfg.Build.Command = command

	cfgPath := filepath.Join(r.Dir, moduleCfg.Name, konvent.ModuleCfgFile)
	require.NoError(t, moduleCfg.ToFile(cfgPath, cfg.ToFileOptOverwrite()))
}

func TestRunExecutesGenerateBeforeBuild(t *testing.T) {
	skipOnWindows(t)
	initTest(t)

	r := repotest.CreateProject(t)
	billingCfg := r.CreateModule(t, "billing")
	// the build command fails when the constants file does not exist yet
	setBuildCommand(t, r, billingCfg, "sh", "-c", "test -f src/generated/java/Versions.java")
	fstest.Chdir(t, r.Dir)

	runCmd := newRunCmd()
	runCmd.SetArgs([]string{})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, runCmd.Execute())

	out := stdoutBuf.String()
	assert.Contains(t, out, "generate step finished")
	assert.Contains(t, out, "build step finished")
	assert.Contains(t, out, "run finished")
}

func TestRunWithoutBuildCommandOnlyGenerates(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	billingCfg := r.CreateModule(t, "billing")
	fstest.Chdir(t, r.Dir)

	runCmd := newRunCmd()
	runCmd.SetArgs([]string{})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, runCmd.Execute())

	out := stdoutBuf.String()
	assert.Contains(t, out, "generate step finished")
	assert.NotContains(t, out, "build step finished")

	_, err := os.Stat(filepath.Join(r.Dir, "billing", billingCfg.Generate.Output))
	assert.NoError(t, err)
}

func TestRunFailingBuildCommandFails(t *testing.T) {
	skipOnWindows(t)
	initTest(t)

	r := repotest.CreateProject(t)
	billingCfg := r.CreateModule(t, "billing")
	setBuildCommand(t, r, billingCfg, "sh", "-c", "exit 1")
	fstest.Chdir(t, r.Dir)

	runCmd := newRunCmd()
	runCmd.SetArgs([]string{})
	_, stderrBuf := interceptCmdOutput(t)
	execCheck(t, runCmd, exitCodeError)

	assert.Contains(t, stderrBuf.String(), "build step failed")
}

func TestRunOnlyNamedModule(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	billingCfg := r.CreateModule(t, "billing")
	checkoutCfg := r.CreateModule(t, "checkout")
	fstest.Chdir(t, r.Dir)

	runCmd := newRunCmd()
	runCmd.SetArgs([]string{"billing"})
	interceptCmdOutput(t)
	require.NoError(t, runCmd.Execute())

	_, err := os.Stat(filepath.Join(r.Dir, "billing", billingCfg.Generate.Output))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(r.Dir, "checkout", checkoutCfg.Generate.Output))
	assert.True(t, os.IsNotExist(err))
}
