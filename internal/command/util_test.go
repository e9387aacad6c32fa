package command

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/konvent-build/konvent/internal/command/term"
	"github.com/konvent-build/konvent/internal/exec"
	"github.com/konvent-build/konvent/internal/log"
	"github.com/konvent-build/konvent/internal/testutils/logwriter"
)

// interceptCmdOutput changes the stdout and stderr streams so that the
// commands write to the returned buffers, all output is additionally still
// logged via the test logger
func interceptCmdOutput(t *testing.T) (stdoutBuf, stderrBuf *bytes.Buffer) {
	var bufStdout bytes.Buffer
	var bufStderr bytes.Buffer

	oldStdout := stdout
	stdout = term.NewStream(logwriter.New(t, &bufStdout))
	oldStderr := stderr
	stderr = term.NewStream(logwriter.New(t, &bufStderr))

	t.Cleanup(func() {
		stdout = oldStdout
		stderr = oldStderr
	})

	return &bufStdout, &bufStderr
}

type exitInfo struct {
	Code int
}

func (e *exitInfo) String() string {
	return fmt.Sprintf("program terminated with exit code: %d", e.Code)
}

// initTest does the following:
// - changes the exitFunc to panic instead of calling os.Exit(),
// - redirects the stdout and stderr streams of the commands to the test logger,
// - changes the exec debug function to the test logger
func initTest(t *testing.T) {
	t.Helper()

	exitFunc = func(code int) {
		panic(&exitInfo{Code: code})
	}

	redirectOutputToLogger(t)
}

func redirectOutputToLogger(t *testing.T) {
	log.RedirectToTestingLog(t)

	oldExecDebugfFn := exec.DefaultDebugfFn
	exec.DefaultDebugfFn = t.Logf

	oldStdout := stdout
	stdout = term.NewStream(logwriter.New(t, io.Discard))
	oldStderr := stderr
	stderr = term.NewStream(logwriter.New(t, io.Discard))

	t.Cleanup(func() {
		exec.DefaultDebugfFn = oldExecDebugfFn
		stdout = oldStdout
		stderr = oldStderr
	})
}

type cmdExecuter interface {
	Execute() error
}

// execCheck runs the command and asserts that it terminates with the expected
// exit code. An expected exit code of 0 means the command must succeed.
func execCheck(t *testing.T, cmd cmdExecuter, expectedExitCode int) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			return
		}

		if info, ok := r.(*exitInfo); ok {
			if info.Code != expectedExitCode {
				t.Fatalf("command exited with code %d, expected: %d", info.Code, expectedExitCode)
			}

			return
		}

		panic(r)
	}()

	err := cmd.Execute()
	require.NoError(t, err)

	require.Equalf(
		t,
		0, expectedExitCode,
		"command did not panic, expecting it to panic and fail with exitCode: %d", expectedExitCode,
	)
}
