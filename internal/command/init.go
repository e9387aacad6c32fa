package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/konvent-build/konvent/internal/command/term"
)

const (
	cmdInitProject = "konvent init project"
	cmdInitModule  = "konvent init module"
)

var initLongHelp = fmt.Sprintf(`
The init commands create konvent configuration files.

To setup konvent for a new repository, run %s in the repository
root directory.
Afterwards module configuration files can be created with the
'%s' command.
`, term.Highlight(cmdInitProject),
	term.Highlight(cmdInitModule))

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "create configuration files",
	Long:  strings.TrimSpace(initLongHelp),
}

func init() {
	rootCmd.AddCommand(initCmd)
}
