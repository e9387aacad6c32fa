package exec

import "fmt"

// Result describes the result of a run Cmd.
type Result struct {
	Command  string
	Dir      string
	ExitCode int
	Output   []byte
}

// StrOutput returns the combined output of the command as string.
func (r *Result) StrOutput() string {
	return string(r.Output)
}

// ExpectSuccess returns an ExitCodeError if the command exited with a code
// != 0.
func (r *Result) ExpectSuccess() error {
	if r.ExitCode != 0 {
		return &ExitCodeError{Result: r}
	}

	return nil
}

// ExitCodeError is returned from Run() when a command exited with a code != 0.
type ExitCodeError struct {
	*Result
}

// Error returns the error description.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exec: running '%s' in directory '%s' exited with code %d, expected 0, output: '%s'",
		e.Command, e.Dir, e.ExitCode, e.Output)
}
