package konvent

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/konvent-build/konvent/internal/exec"
	"github.com/konvent-build/konvent/pkg/catalog"
)

// StepRunner executes the build steps of a module in order.
//
// The constants generation step always runs strictly before the build command
// step, the dependent compilation must only ever see a freshly generated
// constants file. The ordering is explicit, it is not inferred from the
// build command.
type StepRunner struct{}

func NewStepRunner() *StepRunner {
	return &StepRunner{}
}

// Run executes the steps of the module and returns one result per executed
// step. When a step fails the following steps are not run.
// The build step is skipped when the module config does not declare a build
// command.
func (r *StepRunner) Run(m *Module, cat *catalog.Catalog) ([]*StepResult, error) {
	var results []*StepResult

	res, err := r.runGenerate(m, cat)
	if err != nil {
		return results, fmt.Errorf("%s: %s step failed: %w", m, StepGenerate, err)
	}
	results = append(results, res)

	if len(m.BuildCommand) == 0 {
		return results, nil
	}

	res, err = r.runBuild(m)
	if err != nil {
		return results, fmt.Errorf("%s: %s step failed: %w", m, StepBuild, err)
	}
	results = append(results, res)

	return results, nil
}

func (r *StepRunner) runGenerate(m *Module, cat *catalog.Catalog) (*StepResult, error) {
	startTime := time.Now()

	if err := NewGenerator(m, cat).Generate(); err != nil {
		return nil, err
	}

	return &StepResult{
		Module:    m,
		Step:      StepGenerate,
		StartTime: startTime,
		StopTime:  time.Now(),
	}, nil
}

// runBuild executes the build command of the module.
// The output of the command is logged with debug log level.
func (r *StepRunner) runBuild(m *Module) (*StepResult, error) {
	startTime := time.Now()

	execResult, err := exec.Command(m.BuildCommand[0], m.BuildCommand[1:]...).
		Directory(m.Path).
		DebugfPrefix(color.YellowString(fmt.Sprintf("%s: ", m))).
		ExpectSuccess().
		Run()
	if err != nil {
		return nil, err
	}

	return &StepResult{
		Module:     m,
		Step:       StepBuild,
		StartTime:  startTime,
		StopTime:   time.Now(),
		ExecResult: execResult,
	}, nil
}
