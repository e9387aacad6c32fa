package konvent

import (
	"time"

	"github.com/konvent-build/konvent/internal/exec"
)

// Step names of a module build.
const (
	StepGenerate = "generate"
	StepBuild    = "build"
)

// StepResult represents the result of a single executed build step.
type StepResult struct {
	Module    *Module
	Step      string
	StartTime time.Time
	StopTime  time.Time

	// ExecResult is only set for the build step.
	ExecResult *exec.Result
}
