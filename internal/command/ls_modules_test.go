package command

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konvent-build/konvent/internal/testutils/fstest"
	"github.com/konvent-build/konvent/internal/testutils/repotest"
)

func TestLsModulesCSV(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	r.CreateModule(t, "billing")
	r.CreateModule(t, "checkout", "java", "spotless")
	fstest.Chdir(t, r.Dir)

	lsModulesCmd := newLsModulesCmd()
	lsModulesCmd.SetArgs([]string{"--csv"})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, lsModulesCmd.Execute())

	records, err := csv.NewReader(stdoutBuf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"billing", "billing", "java", "java"}, records[0])
	assert.Equal(t, []string{"checkout", "checkout", "java, spotless", "java"}, records[1])
}

func TestLsModulesFields(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	r.CreateModule(t, "billing")
	fstest.Chdir(t, r.Dir)

	lsModulesCmd := newLsModulesCmd()
	lsModulesCmd.SetArgs([]string{"--csv", "-f", "name"})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, lsModulesCmd.Execute())

	assert.Equal(t, "billing", strings.TrimSpace(stdoutBuf.String()))
}

func TestLsModulesFiltersBySpecifier(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	r.CreateModule(t, "billing")
	r.CreateModule(t, "checkout")
	fstest.Chdir(t, r.Dir)

	lsModulesCmd := newLsModulesCmd()
	lsModulesCmd.SetArgs([]string{"--csv", "-f", "name", "checkout"})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, lsModulesCmd.Execute())

	assert.Equal(t, "checkout", strings.TrimSpace(stdoutBuf.String()))
}

func TestLsModulesHeaderContainsFieldNames(t *testing.T) {
	initTest(t)

	r := repotest.CreateProject(t)
	r.CreateModule(t, "billing")
	fstest.Chdir(t, r.Dir)

	lsModulesCmd := newLsModulesCmd()
	lsModulesCmd.SetArgs([]string{})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, lsModulesCmd.Execute())

	out := stdoutBuf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Conventions")
}

func TestLsConventionsListsAllBuiltins(t *testing.T) {
	initTest(t)

	lsConventionsCmd := newLsConventionsCmd()
	lsConventionsCmd.SetArgs([]string{"--csv"})
	stdoutBuf, _ := interceptCmdOutput(t)
	require.NoError(t, lsConventionsCmd.Execute())

	records, err := csv.NewReader(stdoutBuf).ReadAll()
	require.NoError(t, err)

	var names []string
	for _, record := range records {
		names = append(names, record[0])
	}

	assert.Equal(t,
		[]string{"jacoco", "java", "junit", "kotlin", "spotless", "spring-boot"},
		names)
}
