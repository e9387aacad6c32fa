package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/konvent-build/konvent/pkg/cfg"
	"github.com/konvent-build/konvent/pkg/konvent"
)

func init() {
	initCmd.AddCommand(&newInitModuleCmd().Command)
}

const initModuleLongHelp = `
Create a module config file in the current directory.
If no name is passed, the module name will be the name of the current
directory.`

const initModuleExample = `
konvent init module billing	create a module config with the module name set to billing`

type initModuleCmd struct {
	cobra.Command
}

func newInitModuleCmd() *initModuleCmd {
	cmd := initModuleCmd{
		Command: cobra.Command{
			Use:     "module [MODULE-NAME]",
			Short:   "create a module config file in the current directory",
			Long:    strings.TrimSpace(initModuleLongHelp),
			Example: strings.TrimSpace(initModuleExample),
			Args:    cobra.MaximumNArgs(1),
		},
	}
	cmd.Run = cmd.run

	return &cmd
}

func (c *initModuleCmd) run(_ *cobra.Command, args []string) {
	var moduleName string

	mustFindRepository()

	cwd, err := os.Getwd()
	exitOnErr(err)

	if len(args) > 0 {
		moduleName = args[0]
	} else {
		moduleName = filepath.Base(cwd)
	}

	moduleCfg := cfg.ExampleModule(moduleName)

	err = moduleCfg.ToFile(filepath.Join(cwd, konvent.ModuleCfgFile))
	if err != nil {
		if os.IsExist(err) {
			stderr.PrintErrf("%s already exists\n", konvent.ModuleCfgFile)
			exitFunc(exitCodeError)
		}

		exitOnErr(err)
	}

	stdout.Printf("Module configuration file was written to %s\n",
		highlight(konvent.ModuleCfgFile))
}
