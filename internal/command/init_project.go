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
	initCmd.AddCommand(&newInitProjectCmd().Command)
}

const initProjectLongHelp = `
Create a project configuration file.
This is the first command that should be run when setting up konvent for a new
repository. If no argument is passed, the file is created in the current
directory.
`

type initProjectCmd struct {
	cobra.Command
}

func newInitProjectCmd() *initProjectCmd {
	cmd := initProjectCmd{
		Command: cobra.Command{
			Use:   "project [DIR]",
			Short: "create a project config file",
			Long:  strings.TrimSpace(initProjectLongHelp),
			Args:  cobra.MaximumNArgs(1),
		},
	}
	cmd.Run = cmd.run

	return &cmd
}

func (c *initProjectCmd) run(_ *cobra.Command, args []string) {
	var projectDir string
	var err error

	if len(args) == 1 {
		projectDir = args[0]
	} else {
		projectDir, err = os.Getwd()
		exitOnErr(err)
	}

	projectCfg := cfg.ExampleProject()
	projectCfgPath := filepath.Join(projectDir, konvent.ProjectCfgFile)

	err = projectCfg.ToFile(projectCfgPath)
	if err != nil {
		if os.IsExist(err) {
			stderr.PrintErrf("%s already exists\n", projectCfgPath)
			exitFunc(exitCodeError)
		}

		exitOnErr(err)
	}

	stdout.Printf("Project configuration was written to %s\n",
		highlight(projectCfgPath))
	stdout.Printf("\n%s\n"+
		"1. Adapt the '%s' configuration file, ensure the '%s' parameter points to your version catalog\n"+
		"2. Run '%s' in a module directory to create module configuration files\n",
		underline("Next Steps:"),
		highlight(konvent.ProjectCfgFile),
		highlight("file"),
		highlight(cmdInitModule))
}
