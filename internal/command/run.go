package command

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/konvent-build/konvent/internal/command/term"
	"github.com/konvent-build/konvent/pkg/konvent"
)

const runLongHelp = `
Execute the build steps of modules.

For every module the version constants file is generated first, afterwards the
build command of the module is run in the module directory. The build command
only ever sees a freshly generated constants file.
Modules without a build command only run the generate step.

Exit Codes:
  0 - Success
  1 - Error
`

const runExample = `
konvent run                 run the build steps of all modules
konvent run billing         run the build steps of the billing module
konvent run shop/checkout   run the build steps of the module in the shop/checkout directory`

func init() {
	rootCmd.AddCommand(&newRunCmd().Command)
}

type runCmd struct {
	cobra.Command
}

func newRunCmd() *runCmd {
	cmd := runCmd{
		Command: cobra.Command{
			Use:     "run [<MODULE-NAME>|<PATH>]...",
			Short:   "generate constants files and run module build commands",
			Long:    strings.TrimSpace(runLongHelp),
			Example: strings.TrimSpace(runExample),
			Args:    cobra.ArbitraryArgs,
		},
	}
	cmd.Run = cmd.run

	return &cmd
}

func (c *runCmd) run(_ *cobra.Command, args []string) {
	repo := mustFindRepository()
	loader := mustNewLoader(repo)
	modules := mustLoadModules(loader, args)

	konvent.SortModulesByName(modules)

	startTime := time.Now()
	runner := konvent.NewStepRunner()

	var stepCnt int

	for _, module := range modules {
		cat, err := loader.CatalogFor(module)
		exitOnErr(err)

		results, err := runner.Run(module, cat)
		for _, result := range results {
			stdout.ModulePrintf(module, "%s step finished (%s s)\n",
				result.Step, term.StrDurationSec(result.StartTime, result.StopTime))
		}

		exitOnErr(err)

		stepCnt += len(results)
	}

	stdout.PrintSep()
	stdout.Printf("%s: executed %d steps of %d modules in %s s\n",
		greenHighlight("run finished"), stepCnt, len(modules),
		term.DurationToStrSeconds(time.Since(startTime)))
}
