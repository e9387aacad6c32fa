package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konvent-build/konvent/internal/testutils/fstest"
	"github.com/konvent-build/konvent/internal/testutils/repotest"
)

func TestVerifySucceedsAfterGenerate(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	r.CreateModule(t, "billing")
	fstest.Chdir(t, r.Dir)

	generateCmd := newGenerateCmd()
	generateCmd.SetArgs([]string{})
	require.NoError(t, generateCmd.Execute())

	verifyCmd := newVerifyCmd()
	verifyCmd.SetArgs([]string{})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, verifyCmd.Execute())

	assert.Contains(t, stdoutBuf.String(), "up to date")
}

func TestVerifyDetectsStaleFile(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	billingCfg := r.CreateModule(t, "billing")
	fstest.Chdir(t, r.Dir)

	generateCmd := newGenerateCmd()
	generateCmd.SetArgs([]string{})
	require.NoError(t, generateCmd.Execute())

	outputPath := filepath.Join(r.Dir, "billing", billingCfg.Generate.Output)
	fstest.WriteToFile(t, []byte("// manually edited\n"), outputPath)

	verifyCmd := newVerifyCmd()
	verifyCmd.SetArgs([]string{})
	stdoutBuf, _ := interceptCmdOutput(t)
	execCheck(t, verifyCmd, exitCodeStale)

	assert.Contains(t, stdoutBuf.String(), "stale")
}

func TestVerifyDetectsMissingFile(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	billingCfg := r.CreateModule(t, "billing")
	fstest.Chdir(t, r.Dir)

	generateCmd := newGenerateCmd()
	generateCmd.SetArgs([]string{})
	require.NoError(t, generateCmd.Execute())

	outputPath := filepath.Join(r.Dir, "billing", billingCfg.Generate.Output)
	require.NoError(t, os.Remove(outputPath))

	verifyCmd := newVerifyCmd()
	verifyCmd.SetArgs([]string{})
	stdoutBuf, _ := interceptCmdOutput(t)
	execCheck(t, verifyCmd, exitCodeStale)

	assert.Contains(t, stdoutBuf.String(), "missing")
}

func TestVerifyDetectsCatalogChange(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	r.CreateModule(t, "billing")
	fstest.Chdir(t, r.Dir)

	generateCmd := newGenerateCmd()
	generateCmd.SetArgs([]string{})
	require.NoError(t, generateCmd.Execute())

	// bump a version in the catalog, the constants file on disk is now stale
	fstest.WriteToFile(t, []byte("[versions]\nlombok = \"9.9.9\"\n"), r.CatalogPath)

	verifyCmd := newVerifyCmd()
	verifyCmd.SetArgs([]string{})
	interceptCmdOutput(t)
	execCheck(t, verifyCmd, exitCodeStale)
}
